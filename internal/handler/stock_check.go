package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ahmadraza103/IMS/internal/apierror"
	"github.com/ahmadraza103/IMS/internal/dto"
	"github.com/ahmadraza103/IMS/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const stockCacheTTL = 5 * time.Minute

// StockCheckHandler serves the public stock/price check endpoint.
// No authentication required — no side effects whatsoever.
// rdb may be nil, in which case every lookup hits the store directly.
type StockCheckHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewStockCheckHandler(repo repository.ProductRepository, rdb *redis.Client) *StockCheckHandler {
	return &StockCheckHandler{repo: repo, rdb: rdb}
}

func (h *StockCheckHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "stock:" + strconv.FormatUint(uint64(id), 10)

	// 1. Try the cache when configured
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.StockCheckResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	// 2. Cache miss — query the store
	p, err := h.repo.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}

	resp := dto.StockCheckResponse{
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		StockAvailable: p.StockQuantity,
	}

	// 3. Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, stockCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
