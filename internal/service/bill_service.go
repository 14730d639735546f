package service

import (
	"github.com/ahmadraza103/IMS/internal/dto"

	"github.com/shopspring/decimal"
)

// BillService computes itemized bills. Pure display logic: nothing is
// persisted and no store is touched.
type BillService interface {
	Generate(items []dto.BillLineItemRequest) *dto.BillResponse
}

type billService struct{}

func NewBillService() BillService { return &billService{} }

// Generate computes subtotal = unit price × quantity per line and the grand
// total as the sum over all lines. No tax, discount, or rounding beyond the
// two-decimal representation that decimal arithmetic preserves exactly.
func (s *billService) Generate(items []dto.BillLineItemRequest) *dto.BillResponse {
	resp := &dto.BillResponse{
		Lines: make([]dto.BillLineResponse, len(items)),
		Total: decimal.Zero,
	}
	for i, item := range items {
		subtotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		resp.Lines[i] = dto.BillLineResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  subtotal,
		}
		resp.Total = resp.Total.Add(subtotal)
	}
	return resp
}
