package router

import (
	"github.com/ahmadraza103/IMS/internal/audit"
	"github.com/ahmadraza103/IMS/internal/config"
	"github.com/ahmadraza103/IMS/internal/handler"
	"github.com/ahmadraza103/IMS/internal/middleware"
	"github.com/ahmadraza103/IMS/internal/model"
	"github.com/ahmadraza103/IMS/internal/repository"
	"github.com/ahmadraza103/IMS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB.
// The route groups mirror the tool's panels: /v1/auth is the login screen,
// the Admin-gated product routes are the admin panel, and the read routes
// shared with the User role are the user panel.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	appender := audit.NewCSVAppender(cfg.AuditLogPath)
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, appender)
	billSvc := service.NewBillService()

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	billsH := handler.NewBillsHandler(billSvc, cfg.PDFStoragePath)
	stockH := handler.NewStockCheckHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Stock check — no auth required, read-only
	r.GET("/v1/stock/:id", stockH.GetByID)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Read access for both panels
		v1.GET("/products", middleware.RequireRole(model.RoleAdmin, model.RoleUser), productsH.List)
		v1.GET("/products/:id", middleware.RequireRole(model.RoleAdmin, model.RoleUser), productsH.GetByID)

		// Write operations — Admin only
		products := v1.Group("/products", middleware.RequireRole(model.RoleAdmin))
		{
			products.POST("", productsH.Create)
			products.PATCH("/:id/stock", productsH.UpdateStock)
			products.DELETE("/:id", productsH.Delete)
		}

		// Bills — transient computation, both roles
		bills := v1.Group("/bills", middleware.RequireRole(model.RoleAdmin, model.RoleUser))
		{
			bills.POST("", billsH.Generate)
			bills.POST("/pdf", billsH.GeneratePDF)
		}
	}

	return r
}
