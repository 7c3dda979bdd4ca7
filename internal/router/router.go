package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/config"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/handler"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/middleware"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/scanner"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/service"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store
func New(cfg *config.Config, st *store.Store, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	history := scanner.NewHistory(cfg.ScanHistoryLimit)

	authSvc := service.NewAuthService(st, cfg)
	productSvc := service.NewProductService(st)
	inventorySvc := service.NewInventoryService(st, dispatcher)
	scanSvc := service.NewScanService(st, history)
	masterSvc := service.NewMasterService(st)
	reportSvc := service.NewReportService(st, cfg.ReportStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	scanH := handler.NewScanHandler(scanSvc)
	mastersH := handler.NewMastersHandler(masterSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	usersH := handler.NewUsersHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(st))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — staff < manager < admin rank gating per endpoint
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		staff := middleware.RequireRank(model.RoleStaff)
		manager := middleware.RequireRank(model.RoleManager)
		admin := middleware.RequireRank(model.RoleAdmin)

		v1.GET("/products", staff, productsH.List)
		v1.GET("/products/sku/:sku", staff, productsH.GetBySku)
		v1.GET("/products/:id", staff, productsH.GetByID)
		v1.GET("/products/:id/qr", staff, productsH.QRLabel)
		v1.POST("/products", manager, productsH.Create)
		v1.PUT("/products/:id", manager, productsH.Update)
		v1.PATCH("/products/:id/reactivate", manager, productsH.Reactivate)
		v1.DELETE("/products/:id", admin, productsH.Deactivate)

		inv := v1.Group("/inventory", staff)
		{
			inv.POST("/movements", inventoryH.ApplyMovement)
			inv.POST("/movements/batch", inventoryH.ApplyBatch)
			inv.GET("/movements", inventoryH.ListMovements)
			inv.GET("/alerts", inventoryH.Alerts)
		}

		scan := v1.Group("/scan", staff)
		{
			scan.POST("/decode", scanH.DecodeImage)
			scan.POST("/resolve", scanH.ResolvePayload)
			scan.GET("/history", scanH.History)
			scan.DELETE("/history", scanH.ClearHistory)
		}

		v1.GET("/masters/:kind", staff, mastersH.List)
		masters := v1.Group("/masters", manager)
		{
			masters.POST("/:kind", mastersH.Create)
			masters.PUT("/:kind/:id", mastersH.Update)
			masters.DELETE("/:kind/:id", mastersH.Deactivate)
		}

		reports := v1.Group("/reports", manager)
		{
			reports.GET("/summary", reportsH.Summary)
			reports.GET("/movements.pdf", reportsH.MovementsPDF)
		}

		users := v1.Group("/users", admin)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
