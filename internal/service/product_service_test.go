package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/ahmadraza103/IMS/internal/dto"
	"github.com/ahmadraza103/IMS/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, int64, error) {
	ids := make([]int, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	result := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		result = append(result, *r.products[uint(id)])
	}
	return result, int64(len(result)), nil
}

func (r *stubProductRepo) UpdateStock(_ context.Context, id uint, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockQuantity = stock
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.products, id)
	return nil
}

// ── Audit appender stub ──────────────────────────────────────────────────────

type stubAppender struct {
	calls int
	fail  bool
}

func (a *stubAppender) Append(string, string, decimal.Decimal, int) error {
	a.calls++
	if a.fail {
		return errors.New("disk full")
	}
	return nil
}

func newProductSvc() (ProductService, *stubProductRepo, *stubAppender) {
	repo := newStubProductRepo()
	app := &stubAppender{}
	return NewProductService(repo, app), repo, app
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCreateProduct_ThenList(t *testing.T) {
	svc, _, app := newProductSvc()

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Widget", Category: "Tools",
		Price: decimal.RequireFromString("9.99"), StockQuantity: 5,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, int64(1), list.Total)

	got := list.Data[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "Tools", got.Category)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 5, got.StockQuantity)

	assert.Equal(t, 1, app.calls, "every add must be mirrored into the audit log")
}

func TestCreateProduct_AssignsUniqueIDs(t *testing.T) {
	svc, _, _ := newProductSvc()

	a, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "A", Category: "X", Price: decimal.NewFromInt(1), StockQuantity: 1,
	})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "B", Category: "X", Price: decimal.NewFromInt(2), StockQuantity: 2,
	})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateProduct_AuditFailureDoesNotFailCreate(t *testing.T) {
	repo := newStubProductRepo()
	app := &stubAppender{fail: true}
	svc := NewProductService(repo, app)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Widget", Category: "Tools",
		Price: decimal.RequireFromString("9.99"), StockQuantity: 5,
	})
	require.NoError(t, err, "best-effort logging must not fail the store write")
	assert.NotZero(t, created.ID)
	assert.Equal(t, 1, app.calls)
}

func TestUpdateStock_ThenList(t *testing.T) {
	svc, _, _ := newProductSvc()

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Widget", Category: "Tools",
		Price: decimal.RequireFromString("9.99"), StockQuantity: 5,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStock(context.Background(), created.ID, dto.UpdateStockRequest{StockQuantity: 42})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.StockQuantity)

	// Every other field is untouched
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Category, updated.Category)
	assert.True(t, created.Price.Equal(updated.Price))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, 42, list.Data[0].StockQuantity)
}

func TestUpdateStock_UnknownID(t *testing.T) {
	svc, _, _ := newProductSvc()

	_, err := svc.UpdateStock(context.Background(), 999, dto.UpdateStockRequest{StockQuantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDelete_ThenList(t *testing.T) {
	svc, _, _ := newProductSvc()

	first, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "A", Category: "X", Price: decimal.NewFromInt(1), StockQuantity: 1,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "B", Category: "X", Price: decimal.NewFromInt(2), StockQuantity: 2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), first.ID))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1, "size must decrease by exactly one")
	assert.NotEqual(t, first.ID, list.Data[0].ID)
}

func TestDelete_UnknownID(t *testing.T) {
	svc, _, _ := newProductSvc()

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDelete_Twice(t *testing.T) {
	svc, _, _ := newProductSvc()

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "A", Category: "X", Price: decimal.NewFromInt(1), StockQuantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrProductNotFound)
}
