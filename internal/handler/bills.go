package handler

import (
	"net/http"

	"github.com/ahmadraza103/IMS/internal/apierror"
	"github.com/ahmadraza103/IMS/internal/dto"
	"github.com/ahmadraza103/IMS/internal/infra"
	"github.com/ahmadraza103/IMS/internal/service"

	"github.com/gin-gonic/gin"
)

type BillsHandler struct {
	svc        service.BillService
	pdfStorage string
}

func NewBillsHandler(svc service.BillService, pdfStorage string) *BillsHandler {
	return &BillsHandler{svc: svc, pdfStorage: pdfStorage}
}

// Generate computes the itemized breakdown for a set of transient line items.
func (h *BillsHandler) Generate(c *gin.Context) {
	var req dto.GenerateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Generate(req.Items))
}

// GeneratePDF renders the same breakdown as a downloadable PDF receipt.
func (h *BillsHandler) GeneratePDF(c *gin.Context) {
	var req dto.GenerateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	bill := h.svc.Generate(req.Items)

	path, err := infra.GenerateBillPDF(bill, h.pdfStorage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate bill PDF"))
		return
	}
	c.FileAttachment(path, "bill.pdf")
}
