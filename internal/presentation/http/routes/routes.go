package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prasety/kasirku-api/internal/config"
	"github.com/prasety/kasirku-api/internal/presentation/http/handler"
	"github.com/prasety/kasirku-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Cart        *handler.CartHandler
	Payment     *handler.PaymentHandler
	Transaction *handler.TransactionHandler
	Item        *handler.ItemHandler
	Earning     *handler.EarningHandler
	Printer     *handler.PrinterHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RegisterMiddleware())

	rateLimiter := middleware.NewRegisterRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Duration)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		registerCartRoutes(v1, h)
		registerTransactionRoutes(v1, h)
		registerItemRoutes(v1, h)
		registerEarningRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerCartRoutes(rg *gin.RouterGroup, h *Handlers) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/lines", h.Cart.AddLine)
		cart.POST("/lines/:id/increase", h.Cart.IncreaseQuantity)
		cart.POST("/lines/:id/decrease", h.Cart.DecreaseQuantity)
		cart.POST("/lines/:id/remove", h.Cart.RequestRemove)
		cart.POST("/clear", h.Cart.RequestClear)
		cart.POST("/confirm", h.Cart.Confirm)
	}

	rg.GET("/payment", h.Payment.Preview)
}

func registerTransactionRoutes(rg *gin.RouterGroup, h *Handlers) {
	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.Transaction.Finalize)
		transactions.GET("", h.Transaction.List)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.POST("/:id/close", h.Transaction.Close)
		transactions.GET("/:id/receipt", h.Printer.Receipt)
		transactions.GET("/:id/receipt.pdf", h.Printer.ReceiptPDF)
		transactions.POST("/:id/print", h.Printer.Print)
	}
}

func registerItemRoutes(rg *gin.RouterGroup, h *Handlers) {
	items := rg.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
		items.POST("/:id/cart", h.Item.AddToCart)
	}
}

func registerEarningRoutes(rg *gin.RouterGroup, h *Handlers) {
	earnings := rg.Group("/earnings")
	{
		earnings.GET("", h.Earning.List)
		earnings.POST("", h.Earning.Add)
		earnings.GET("/summary", h.Earning.Summary)
	}
}

func registerPrinterRoutes(rg *gin.RouterGroup, h *Handlers) {
	printer := rg.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
