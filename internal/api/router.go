package api

import (
	"net/http"

	"logisa-be/internal/metrics"
	"logisa-be/internal/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func NewRouter(env string, handlers *Handlers) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS())
	r.Use(middleware.Auth())
	r.Use(middleware.RateLimit())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", health)

	api := r.Group("/api")
	{
		api.POST("/auth/login", handlers.Auth.Login)

		api.GET("/catalog", handlers.Catalog.List)
		api.GET("/catalog/groups", handlers.Catalog.Groups)
		api.GET("/materials/:id", handlers.Catalog.Get)
		api.GET("/delivery-options", handlers.Catalog.DeliveryOptions)

		authed := api.Group("", middleware.RequireUser())
		{
			authed.GET("/profile", handlers.Auth.Profile)

			authed.GET("/cart", handlers.Cart.Get)
			authed.POST("/cart/items", handlers.Cart.AddItem)
			authed.PUT("/cart/items/:materialId", handlers.Cart.SetQuantity)
			authed.DELETE("/cart/items/:materialId", handlers.Cart.RemoveItem)
			authed.DELETE("/cart", handlers.Cart.Clear)
			authed.PUT("/cart/delivery", handlers.Cart.SetDeliveryMethod)

			authed.GET("/addresses", handlers.Address.List)
			authed.POST("/addresses", handlers.Address.Create)

			authed.GET("/checkout", handlers.Checkout.Session)
			authed.POST("/checkout/address", handlers.Checkout.StartAddress)
			authed.PUT("/checkout/address", handlers.Checkout.SubmitAddress)
			authed.GET("/checkout/review", handlers.Checkout.Review)
			authed.POST("/checkout/payment", handlers.Checkout.Pay)
			authed.GET("/checkout/confirmation", handlers.Checkout.Confirm)

			authed.GET("/orders", handlers.Order.List)
			authed.GET("/orders/:id", handlers.Order.Get)
		}

		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/orders", handlers.Admin.ListOrders)
			admin.POST("/orders/:id/approve", handlers.Admin.ApproveOrder)
			admin.POST("/orders/:id/reject", handlers.Admin.RejectOrder)
			admin.POST("/orders/:id/status", handlers.Admin.AdvanceOrder)

			admin.GET("/ship-notifications", handlers.Admin.ListShipNotifications)
			admin.POST("/ship-notifications", handlers.Admin.CreateShipNotification)
			admin.GET("/ship-notifications/:id", handlers.Admin.GetShipNotification)
			admin.POST("/ship-notifications/:id/items/:itemId/receipts", handlers.Admin.AddGoodsReceipt)
			admin.POST("/ship-notifications/:id/received", handlers.Admin.MarkGoodsReceived)
			admin.POST("/ship-notifications/:id/cancel", handlers.Admin.CancelShipNotification)

			admin.GET("/collections", handlers.Admin.ListCollections)
			admin.POST("/collections", handlers.Admin.CreateCollection)
			admin.POST("/collections/:id/quote", handlers.Admin.SubmitQuote)
			admin.POST("/collections/:id/approve", handlers.Admin.ApproveCollection)
			admin.POST("/collections/:id/reject", handlers.Admin.RejectCollection)
			admin.POST("/collections/:id/collected", handlers.Admin.MarkCollected)
			admin.POST("/collections/:id/complete", handlers.Admin.CompleteCollection)
			admin.POST("/collections/:id/cancel", handlers.Admin.CancelCollection)

			admin.GET("/reports/:type", handlers.Admin.Report)
			admin.GET("/upload-orders/sample", handlers.Admin.SampleOrderFile)
			admin.POST("/upload-orders", handlers.Admin.UploadOrders)
		}
	}

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store": gin.H{
			"reads":           metrics.StoreReads.Load(),
			"writes":          metrics.StoreWrites.Load(),
			"decode_failures": metrics.StoreDecodeFailures.Load(),
		},
	})
}
