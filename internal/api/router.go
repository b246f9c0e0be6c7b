package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/flowiq/flowiq/internal/api/handler"
	"github.com/flowiq/flowiq/internal/api/middleware"
	"github.com/flowiq/flowiq/internal/api/session"
	"github.com/flowiq/flowiq/internal/core/rbac"
	"github.com/flowiq/flowiq/internal/core/service"
	"github.com/flowiq/flowiq/internal/core/token"
	mongodb "github.com/flowiq/flowiq/internal/infrastructure/db/mongo"
	"github.com/flowiq/flowiq/internal/infrastructure/db/postgres"
	redisdb "github.com/flowiq/flowiq/internal/infrastructure/db/redis"
	"github.com/flowiq/flowiq/pkg/logger"
)

// Dependencies carries the connected backing stores and the token codec
// into the router.
type Dependencies struct {
	DB           *sql.DB
	Redis        *redis.Client
	Mongo        *mongo.Database
	Codec        *token.Codec
	SecureCookie bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	log := logger.New("api")

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("flowiq"))

	sessions := session.NewManager(deps.Codec, deps.SecureCookie)
	e.Use(middleware.Gate(sessions))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(deps.DB)
	cashflowRepo := postgres.NewCashFlowRepository(deps.DB)
	inventoryRepo := postgres.NewInventoryRepository(deps.DB)
	reportCache := redisdb.NewReportCache(deps.Redis)
	chatRepo := mongodb.NewChatRepository(deps.Mongo)

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.Codec)
	userService := service.NewUserService(userRepo)
	cashflowService := service.NewCashFlowService(cashflowRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	reportService := service.NewReportService(cashflowService, inventoryService, reportCache, logger.New("reports"))
	chatService := service.NewChatService(chatRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessions)
	userHandler := handler.NewUserHandler(userService)
	cashflowHandler := handler.NewCashFlowHandler(cashflowService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	reportHandler := handler.NewReportHandler(reportService)
	chatHandler := handler.NewChatHandler(chatService)
	dashboardHandler := handler.NewDashboardHandler(reportService, cashflowService, inventoryService)

	// --- Auth routes (public; each handler owns its 401s) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.GET("/auth/me", authHandler.Me)

	// --- Cash flow ---
	cashflow := e.Group("/cashflow")
	cashflow.GET("/sales", cashflowHandler.ListSales)
	cashflow.GET("/expenses", cashflowHandler.ListExpenses)
	cashflow.GET("/summary", cashflowHandler.Summary)
	cashflow.POST("/sales", cashflowHandler.AddSale, middleware.RequirePermission(rbac.PermCashFlowManage))
	cashflow.POST("/expenses", cashflowHandler.AddExpense, middleware.RequirePermission(rbac.PermCashFlowManage))

	// --- Inventory ---
	inventory := e.Group("/inventory")
	inventory.GET("/items", inventoryHandler.ListItems)
	inventory.GET("/items/:id", inventoryHandler.GetItem)
	inventory.GET("/low-stock", inventoryHandler.LowStock)
	inventory.GET("/value", inventoryHandler.Value)
	inventory.GET("/summary", inventoryHandler.Summary)
	inventory.POST("/items", inventoryHandler.AddItem, middleware.RequirePermission(rbac.PermInventoryManage))
	inventory.PUT("/items/:id/stock", inventoryHandler.SetStock, middleware.RequirePermission(rbac.PermInventoryManage))

	// --- Reports ---
	reports := e.Group("/reports")
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/export", reportHandler.ExportCSV, middleware.RequirePermission(rbac.PermReportsGenerate))

	// --- User administration ---
	users := e.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/roles", userHandler.Roles)
	users.POST("", userHandler.Create, middleware.RequirePermission(rbac.PermUsersManage))
	users.PUT("/:id", userHandler.Update, middleware.RequirePermission(rbac.PermUsersManage))
	users.DELETE("/:id", userHandler.Delete, middleware.RequirePermission(rbac.PermUsersManage))

	// --- Dashboards ---
	e.GET("/dashboard", dashboardHandler.Main)
	e.GET("/cashflow/dashboard", dashboardHandler.CashFlow)
	e.GET("/inventory/dashboard", dashboardHandler.Inventory)

	// --- Assistant chat ---
	e.POST("/chat", chatHandler.Send)
	e.GET("/chat/history", chatHandler.History)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
