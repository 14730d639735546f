package service

import (
	"context"
	"errors"

	"github.com/ahmadraza103/IMS/internal/audit"
	"github.com/ahmadraza103/IMS/internal/dto"
	"github.com/ahmadraza103/IMS/internal/model"
	"github.com/ahmadraza103/IMS/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned by UpdateStock and Delete for ids that have
// no row — those operations are not silent no-ops.
var ErrProductNotFound = errors.New("product not found")

// ProductService defines the business logic contract for the product catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context) (*dto.ProductListResponse, error)
	UpdateStock(ctx context.Context, id uint, req dto.UpdateStockRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo  repository.ProductRepository
	audit audit.Appender
}

func NewProductService(repo repository.ProductRepository, appender audit.Appender) ProductService {
	return &productService{repo: repo, audit: appender}
}

// Create inserts the product, then mirrors the addition into the audit log.
// The two writes are independent: a failed append is logged and the creation
// still succeeds (best-effort logging, not a transaction).
func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.audit.Append(p.Name, p.Category, p.Price, p.StockQuantity); err != nil {
		log.Warn().Err(err).Uint("product_id", p.ID).Msg("audit append failed")
	}

	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, total, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Data:  make([]dto.ProductResponse, len(products)),
		Total: total,
	}
	for i := range products {
		resp.Data[i] = *productToResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) UpdateStock(ctx context.Context, id uint, req dto.UpdateStockRequest) (*dto.ProductResponse, error) {
	if err := s.repo.UpdateStock(ctx, id, req.StockQuantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
	}
}
