package repository

import (
	"context"
	"testing"

	"github.com/ahmadraza103/IMS/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open in-memory db")

	// One connection, or each pooled conn would see its own :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Product{}))
	return db
}

func createProduct(t *testing.T, repo ProductRepository, name, category, price string, stock int) *model.Product {
	t.Helper()
	p := &model.Product{
		Name:          name,
		Category:      category,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProductRepo_CreateAssignsID(t *testing.T) {
	repo := NewProductRepository(initTestDB(t))

	a := createProduct(t, repo, "Widget", "Tools", "9.99", 5)
	b := createProduct(t, repo, "Gadget", "Electronics", "24.50", 3)

	assert.NotZero(t, a.ID)
	assert.NotZero(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestProductRepo_ListIsStorageOrdered(t *testing.T) {
	repo := NewProductRepository(initTestDB(t))

	createProduct(t, repo, "Zebra", "Toys", "3.00", 1)
	createProduct(t, repo, "Apple", "Food", "1.00", 2)
	createProduct(t, repo, "Mango", "Food", "2.00", 3)

	products, total, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, products, 3)
	// Insertion order, not alphabetical
	assert.Equal(t, "Zebra", products[0].Name)
	assert.Equal(t, "Apple", products[1].Name)
	assert.Equal(t, "Mango", products[2].Name)
}

func TestProductRepo_UpdateStock(t *testing.T) {
	repo := NewProductRepository(initTestDB(t))
	p := createProduct(t, repo, "Widget", "Tools", "9.99", 5)

	require.NoError(t, repo.UpdateStock(context.Background(), p.ID, 42))

	got, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.StockQuantity)
	assert.Equal(t, "Widget", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")))
}

func TestProductRepo_UpdateStock_MissingRow(t *testing.T) {
	repo := NewProductRepository(initTestDB(t))

	err := repo.UpdateStock(context.Background(), 12345, 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepo_Delete(t *testing.T) {
	repo := NewProductRepository(initTestDB(t))
	p := createProduct(t, repo, "Widget", "Tools", "9.99", 5)
	createProduct(t, repo, "Gadget", "Electronics", "24.50", 3)

	require.NoError(t, repo.Delete(context.Background(), p.ID))

	_, err := repo.FindByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, total, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestProductRepo_Delete_MissingRow(t *testing.T) {
	repo := NewProductRepository(initTestDB(t))

	err := repo.Delete(context.Background(), 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
