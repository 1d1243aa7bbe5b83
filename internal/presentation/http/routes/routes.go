package routes

import (
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/config"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/handler"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/middleware"
	"github.com/DonIsaac10/Sistema-POS/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Pos      *handler.PosHandler
	Order    *handler.OrderHandler
	Customer *handler.CustomerHandler
	Stylist  *handler.StylistHandler
	Catalog  *handler.CatalogHandler
	Coupon   *handler.CouponHandler
	Payroll  *handler.PayrollHandler
	Report   *handler.ReportHandler
	Expense  *handler.ExpenseHandler
	Purchase *handler.PurchaseHandler
	Settings *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(g *gin.RouterGroup, h *Handlers) {
	pos := g.Group("/pos")
	{
		pos.GET("/ticket", h.Pos.State)
		pos.POST("/ticket/new", h.Pos.NewTicket)
		pos.POST("/ticket/lines", h.Pos.AddLine)
		pos.DELETE("/ticket/lines/:index", h.Pos.RemoveLine)
		pos.PATCH("/ticket/lines/:index/qty", h.Pos.UpdateQty)
		pos.PATCH("/ticket/lines/:index/discount", h.Pos.SetDiscount)
		pos.PATCH("/ticket/lines/:index/adjust", h.Pos.SetAdjust)
		pos.PATCH("/ticket/lines/:index/stylists", h.Pos.SetLineStylists)
		pos.POST("/ticket/customer", h.Pos.SetCustomer)
		pos.DELETE("/ticket/customer", h.Pos.ClearCustomer)
		pos.POST("/ticket/coupon", h.Pos.ApplyCoupon)
		pos.DELETE("/ticket/coupon", h.Pos.ClearCoupon)
		pos.POST("/ticket/points", h.Pos.SetPoints)
		pos.POST("/ticket/tips", h.Pos.SetTip)
		pos.DELETE("/ticket/tips/:stylistId", h.Pos.RemoveTip)
		pos.POST("/ticket/tips/distribute", h.Pos.DistributeTip)
		pos.POST("/ticket/stylists/:stylistId/toggle", h.Pos.ToggleStylist)
		pos.POST("/ticket/stylists/balance", h.Pos.AutoBalance)
		pos.POST("/ticket/discount", h.Pos.SetGlobalDiscount)
		pos.POST("/ticket/payments", h.Pos.RegisterPayments)
		pos.POST("/ticket/close", h.Pos.Close)
	}

	orders := g.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/print", h.Order.Print)
	}

	customers := g.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
		customers.POST("/:id/points", h.Customer.AdjustPoints)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	stylists := g.Group("/stylists")
	{
		stylists.GET("", h.Stylist.List)
		stylists.POST("", h.Stylist.Create)
		stylists.GET("/:id", h.Stylist.Get)
		stylists.PUT("/:id", h.Stylist.Update)
		stylists.DELETE("/:id", h.Stylist.Delete)
	}

	products := g.Group("/products")
	{
		products.GET("", h.Catalog.List)
		products.POST("", h.Catalog.Create)
		products.GET("/:id", h.Catalog.Get)
		products.PATCH("/:id", h.Catalog.Update)
		products.DELETE("/:id", h.Catalog.Delete)
		products.POST("/:id/variants", h.Catalog.AddVariant)
	}

	variants := g.Group("/variants")
	{
		variants.PUT("/:id", h.Catalog.UpdateVariant)
		variants.DELETE("/:id", h.Catalog.DeleteVariant)
	}

	coupons := g.Group("/coupons")
	{
		coupons.GET("", h.Coupon.List)
		coupons.POST("", h.Coupon.Create)
		coupons.PUT("/:id", h.Coupon.Update)
		coupons.POST("/:id/toggle", h.Coupon.Toggle)
		coupons.DELETE("/:id", h.Coupon.Delete)
	}

	payroll := g.Group("/payroll")
	{
		payroll.GET("/summary", h.Payroll.Summary)
		payroll.GET("/entries", h.Payroll.ListEntries)
		payroll.POST("/entries", h.Payroll.CreateEntry)
		payroll.POST("/entries/pending", h.Payroll.RegisterPending)
		payroll.POST("/entries/:id/pay", h.Payroll.MarkPaid)
		payroll.DELETE("/entries/:id", h.Payroll.DeleteEntry)
	}

	reports := g.Group("/reports")
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/export", h.Report.ExportCSV)
		reports.POST("/import/expenses", h.Report.ImportExpenses)
	}

	expenses := g.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	purchases := g.Group("/purchases")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.PUT("/:id", h.Purchase.Update)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}

	suppliers := g.Group("/suppliers")
	{
		suppliers.GET("", h.Purchase.ListSuppliers)
		suppliers.POST("", h.Purchase.CreateSupplier)
		suppliers.PUT("/:id", h.Purchase.UpdateSupplier)
		suppliers.DELETE("/:id", h.Purchase.DeleteSupplier)
	}

	settings := g.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PATCH("", h.Settings.Update)
	}
}
