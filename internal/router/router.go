package router

import (
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/config"
	"github.com/BarkaHamza235/store-management-again6/internal/handler"
	"github.com/BarkaHamza235/store-management-again6/internal/infra"
	"github.com/BarkaHamza235/store-management-again6/internal/middleware"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"
	"github.com/BarkaHamza235/store-management-again6/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, media *infra.MediaStore) *gin.Engine {
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

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	tokens := infra.NewRedisTokenStore(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	activitySvc := service.NewActivityService(activityRepo)
	authSvc := service.NewAuthService(userRepo, activitySvc, tokens, mailer, cfg)
	employeeSvc := service.NewEmployeeService(userRepo, saleRepo, activitySvc)
	supplierSvc := service.NewSupplierService(supplierRepo, activitySvc)
	categorySvc := service.NewCategoryService(categoryRepo, activitySvc)
	productSvc := service.NewProductService(productRepo, categoryRepo, media, activitySvc)
	saleSvc := service.NewSaleService(saleRepo, activitySvc)
	reportSvc := service.NewReportService(saleRepo, productRepo, activitySvc)
	exportSvc := service.NewExportService(userRepo, supplierRepo, categoryRepo, productRepo, saleRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(db, rdb)
	authH := handler.NewAuthHandler(authSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	caisseH := handler.NewCaisseHandler(productSvc, saleSvc)
	dashboardH := handler.NewDashboardHandler(reportSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	exportsH := handler.NewExportsHandler(exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)
	r.Static("/media", media.Root())

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
		auth.POST("/password-reset", authH.RequestPasswordReset)
		auth.GET("/password-reset/confirm", authH.ValidateResetToken)
		auth.POST("/password-reset/confirm", authH.ConfirmPasswordReset)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleCashier)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", anyRole, authH.Logout)

		v1.GET("/dashboard", anyRole, dashboardH.Get)

		// Caisse — the one write surface cashiers get
		caisse := v1.Group("/caisse", anyRole)
		{
			caisse.GET("/products", caisseH.Products)
			caisse.POST("/checkout", caisseH.Checkout)
		}

		// Catalog reads for all roles, writes admin only
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		products := v1.Group("/products", adminOnly)
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.POST("/:id/image", productsH.UploadImage)
			products.DELETE("/:id", productsH.Delete)
		}

		v1.GET("/categories", anyRole, categoriesH.List)
		v1.GET("/categories/:id", anyRole, categoriesH.Get)
		categories := v1.Group("/categories", adminOnly)
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		suppliers := v1.Group("/suppliers", adminOnly)
		{
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.POST("", suppliersH.Create)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		employees := v1.Group("/employees", adminOnly)
		{
			employees.GET("", employeesH.List)
			employees.GET("/:id", employeesH.Get)
			employees.POST("", employeesH.Create)
			employees.PUT("/:id", employeesH.Update)
			employees.PATCH("/:id/toggle-status", employeesH.ToggleStatus)
			employees.DELETE("/:id", employeesH.Delete)
		}

		sales := v1.Group("/sales", adminOnly)
		{
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.Get)
			sales.GET("/:id/invoice.pdf", salesH.InvoicePDF)
			sales.POST("", salesH.Create)
			sales.PUT("/:id", salesH.Update)
			sales.POST("/bulk-delete", salesH.BulkDelete)
		}

		reports := v1.Group("/reports", adminOnly)
		{
			reports.GET("/sales", reportsH.Sales)
			reports.GET("/stock", reportsH.Stock)
		}

		export := v1.Group("/export", adminOnly)
		{
			export.GET("/sales/:format", exportsH.Sales)
			export.GET("/employees/:format", exportsH.Employees)
			export.GET("/products/:format", exportsH.Products)
			export.GET("/suppliers/:format", exportsH.Suppliers)
			export.GET("/categories/:format", exportsH.Categories)
			export.GET("/reports/sales/:format", exportsH.SalesReport)
			export.GET("/reports/stock/:format", exportsH.StockReport)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
