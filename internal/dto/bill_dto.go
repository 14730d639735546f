package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BillLineItemRequest is a transient line item; nothing here is persisted.
type BillLineItemRequest struct {
	Name      string          `json:"name"       validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
}

type GenerateBillRequest struct {
	Items []BillLineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BillLineResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type BillResponse struct {
	Lines []BillLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}
