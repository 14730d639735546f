package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateProductRequest carries the add-product form. Price and stock arrive as
// JSON numbers; anything non-numeric fails binding before it can reach the store.
type CreateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	Category      string          `json:"category"       validate:"required,min=1,max=60"`
	Price         decimal.Decimal `json:"price"          validate:"min=0"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
}

type UpdateStockRequest struct {
	StockQuantity int `json:"stock_quantity" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
}

// StockCheckResponse is returned by the public stock check endpoint (no auth required).
type StockCheckResponse struct {
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	StockAvailable int             `json:"stock_available"`
}
