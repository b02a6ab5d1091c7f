package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/vendor-ledger-api/internal/config"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/logger"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/handler"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/vendor-ledger-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Vendor    *handler.VendorHandler
	Project   *handler.ProjectHandler
	Ledger    *handler.LedgerHandler
	Analytics *handler.AnalyticsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.OperatorRateLimiter
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	middleware.SetupValidator()

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(logger.Recovery(deps.Logger))
	router.Use(logger.GinMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.GetProfile)

	registerVendorRoutes(protected, h, deps)
	registerAnalyticsRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerVendorRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	vendors := protected.Group("/vendors")

	// Creates replay on a repeated Idempotency-Key
	create := vendors.Group("/create")
	if deps.IdempotencyRepo != nil {
		create.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))
	}
	{
		create.POST("", h.Vendor.Create)
		create.POST("/project", h.Project.Create)
		create.POST("/bill", h.Ledger.CreateBill)
		create.POST("/payment", h.Ledger.CreatePayment)
	}

	vendors.GET("", h.Vendor.List)
	vendors.GET("/:id/summary", h.Vendor.Summary)
	vendors.GET("/projects/:vendorId", h.Project.ListByVendor)
	vendors.GET("/bills/:projectId", h.Ledger.ListBills)
	vendors.GET("/payments/:projectId", h.Ledger.ListPayments)
	vendors.GET("/ledger/:projectId", h.Ledger.ProjectLedger)
	vendors.GET("/single/payment/:id", h.Ledger.GetPayment)
	vendors.GET("/single/payment/:id/voucher", h.Printer.GetVoucher)
	vendors.POST("/print/payment/:id", h.Printer.PrintPayment)

	// Deletes cascade, so only admins may remove vendors and projects
	del := vendors.Group("/delete")
	{
		del.DELETE("/vendor/:id", middleware.RequireRole(entity.RoleAdmin), h.Vendor.Delete)
		del.DELETE("/project/:id", middleware.RequireRole(entity.RoleAdmin), h.Project.Delete)
		del.DELETE("/bill/:id", h.Ledger.DeleteBill)
		del.DELETE("/payment/:id", h.Ledger.DeletePayment)
	}
}

func registerAnalyticsRoutes(protected *gin.RouterGroup, h *Handlers) {
	analytics := protected.Group("/analytics")
	{
		analytics.GET("", h.Analytics.GetStats)
		analytics.GET("/summary", h.Analytics.GetSummary)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
