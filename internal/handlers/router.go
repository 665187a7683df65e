package handlers

import (
	"time"

	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/inventory"
	"eyetrends-pos/internal/middleware"
	"eyetrends-pos/internal/models"
	"eyetrends-pos/internal/sales"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route with its auth, role and page guards.
func NewRouter(store database.Store, geminiKey string, allowedOrigins []string) *gin.Engine {
	ledger := inventory.NewLedger(store)
	engine := sales.NewEngine(store)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", Login(store))

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(store))
	{
		api.GET("/profile", GetProfile())
		api.PUT("/profile", UpdateProfile(store))
		api.GET("/pages/resolve", ResolveActivePage())
		api.GET("/config", GetConfig(store))
		api.GET("/products", ListProducts(ledger))
		api.GET("/reports/summary", GetSummary(store))
		api.GET("/insights", GetInsights(store, geminiKey))

		billing := api.Group("/")
		billing.Use(middleware.RequirePage("sales"))
		{
			billing.POST("/checkout", ProcessSale(engine))
			billing.GET("/sales", ListSales(engine))
		}

		reports := api.Group("/")
		reports.Use(middleware.RequirePage("reports"))
		{
			reports.GET("/sales/export", ExportSales(engine))
		}

		inv := api.Group("/")
		inv.Use(middleware.RequirePage("inventory"))
		{
			inv.GET("/products/export", ExportProducts(store))

			write := inv.Group("/")
			write.Use(middleware.RequireInventoryWrite())
			{
				write.POST("/products", AddProduct(ledger))
				write.PUT("/products/:id", UpdateProduct(ledger))
				write.POST("/products/import", ImportProducts(ledger))
			}
		}

		admin := api.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.DELETE("/products/:id", DeleteProduct(ledger))
			admin.GET("/users", ListUsers(store))
			admin.POST("/users", CreateUser(store))
			admin.PUT("/users/:id", UpdateUser(store))
			admin.DELETE("/users/:id", DeleteUser(store))
			admin.GET("/audit-logs", ListAuditLogs(store))
			admin.PUT("/config", UpdateConfig(store))
			admin.POST("/system/reset", ResetData(store))
		}
	}

	return r
}
