package api

import (
	"net/http"

	cartHandler "gepe-server/internal/cart/handler"
	catalogHandler "gepe-server/internal/catalog/handler"
	contactHandler "gepe-server/internal/contact/handler"
	contentHandler "gepe-server/internal/content/handler"
	"gepe-server/internal/health"
	newsletterHandler "gepe-server/internal/newsletter/handler"
	ordersHandler "gepe-server/internal/orders/handler"
	paymentsHandler "gepe-server/internal/payments/handler"
	settingsHandler "gepe-server/internal/settings/handler"
	statsHandler "gepe-server/internal/stats/handler"
	usersHandler "gepe-server/internal/users/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.RouterGroup
	health            *health.Reporter
	catalogHandler    catalogHandler.Handler
	contentHandler    contentHandler.Handler
	settingsHandler   settingsHandler.Handler
	ordersHandler     ordersHandler.Handler
	paymentsHandler   paymentsHandler.Handler
	statsHandler      statsHandler.Handler
	newsletterHandler newsletterHandler.Handler
	cartHandler       cartHandler.Handler
	usersHandler      usersHandler.Handler
	contactHandler    contactHandler.Handler
}

func New(
	router *gin.RouterGroup,
	reporter *health.Reporter,
	catalog catalogHandler.Handler,
	content contentHandler.Handler,
	settings settingsHandler.Handler,
	orders ordersHandler.Handler,
	payments paymentsHandler.Handler,
	stats statsHandler.Handler,
	newsletter newsletterHandler.Handler,
	cart cartHandler.Handler,
	users usersHandler.Handler,
	contact contactHandler.Handler,
) API {
	return API{
		router:            router,
		health:            reporter,
		catalogHandler:    catalog,
		contentHandler:    content,
		settingsHandler:   settings,
		ordersHandler:     orders,
		paymentsHandler:   payments,
		statsHandler:      stats,
		newsletterHandler: newsletter,
		cartHandler:       cart,
		usersHandler:      users,
		contactHandler:    contact,
	}
}

func (a *API) RegisterRoutes() {
	a.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bienvenido al backend de GEPE Web"})
	})

	apiGroup := a.router.Group("/api")
	apiGroup.GET("/health", a.handleHealth)

	productsGroup := apiGroup.Group("/products")
	{
		productsGroup.GET("", a.catalogHandler.HandleListProducts)
		productsGroup.POST("", a.catalogHandler.HandleCreateProduct)
		productsGroup.POST("/upload-image", a.catalogHandler.HandleUploadProductImage)
		productsGroup.POST("/regenerate-slugs", a.catalogHandler.HandleRegenerateSlugs)
		productsGroup.GET("/slug/:slug", a.catalogHandler.HandleGetProductBySlug)
		productsGroup.GET("/:product_id", a.catalogHandler.HandleGetProduct)
		productsGroup.PATCH("/:product_id", a.catalogHandler.HandleUpdateProduct)
		productsGroup.PATCH("/:product_id/stock", a.catalogHandler.HandleUpdateStock)
		productsGroup.PATCH("/:product_id/active", a.catalogHandler.HandleSetActive)
		productsGroup.DELETE("/:product_id", a.catalogHandler.HandleDeleteProduct)
	}

	categoriesGroup := apiGroup.Group("/categories")
	{
		categoriesGroup.GET("", a.catalogHandler.HandleListCategories)
		categoriesGroup.POST("", a.catalogHandler.HandleCreateCategory)
		categoriesGroup.GET("/:category_id", a.catalogHandler.HandleGetCategory)
		categoriesGroup.PUT("/:category_id", a.catalogHandler.HandleUpdateCategory)
		categoriesGroup.DELETE("/:category_id", a.catalogHandler.HandleDeleteCategory)
	}

	clubsGroup := apiGroup.Group("/clubs")
	{
		clubsGroup.GET("", a.catalogHandler.HandleListClubs)
		clubsGroup.POST("", a.catalogHandler.HandleCreateClub)
		clubsGroup.GET("/:club_id", a.catalogHandler.HandleGetClub)
		clubsGroup.PATCH("/:club_id", a.catalogHandler.HandleUpdateClub)
		clubsGroup.POST("/:club_id/crest", a.catalogHandler.HandleUploadClubCrest)
		clubsGroup.DELETE("/:club_id", a.catalogHandler.HandleDeleteClub)
	}

	heroGroup := apiGroup.Group("/hero-media")
	{
		heroGroup.GET("", a.contentHandler.HandleListActiveHeroMedia)
		heroGroup.GET("/admin", a.contentHandler.HandleListAllHeroMedia)
		heroGroup.POST("/admin", a.contentHandler.HandleCreateHeroMedia)
		heroGroup.POST("/admin/upload", a.contentHandler.HandleUploadHeroAsset)
		heroGroup.PUT("/admin/:hero_id", a.contentHandler.HandleUpdateHeroMedia)
		heroGroup.DELETE("/admin/:hero_id", a.contentHandler.HandleDeleteHeroMedia)
	}

	bannersGroup := apiGroup.Group("/promo-banners")
	{
		bannersGroup.GET("", a.contentHandler.HandleListActivePromoBanners)
		bannersGroup.GET("/settings", a.contentHandler.HandleGetBannerSettings)
		bannersGroup.GET("/admin", a.contentHandler.HandleListAllPromoBanners)
		bannersGroup.POST("/admin", a.contentHandler.HandleCreatePromoBanner)
		bannersGroup.PUT("/admin/settings", a.contentHandler.HandleUpdateBannerSettings)
		bannersGroup.PUT("/admin/:banner_id", a.contentHandler.HandleUpdatePromoBanner)
		bannersGroup.DELETE("/admin/:banner_id", a.contentHandler.HandleDeletePromoBanner)
	}

	settingsGroup := apiGroup.Group("/settings")
	{
		settingsGroup.GET("/notification-emails", a.settingsHandler.HandleListNotificationEmails)
		settingsGroup.POST("/notification-emails", a.settingsHandler.HandleAddNotificationEmail)
		settingsGroup.DELETE("/notification-emails/:email_id", a.settingsHandler.HandleDeleteNotificationEmail)
		settingsGroup.GET("/email-config-status", a.settingsHandler.HandleEmailConfigStatus)
		settingsGroup.GET("/product-prices", a.settingsHandler.HandleGetPriceSettings)
		settingsGroup.PUT("/product-prices", a.settingsHandler.HandleUpdatePriceSettings)
	}

	ordersGroup := apiGroup.Group("/orders")
	{
		ordersGroup.POST("", a.ordersHandler.HandleCreateOrder)
		ordersGroup.GET("", a.ordersHandler.HandleListOrders)
		ordersGroup.GET("/production", a.ordersHandler.HandleProductionOrders)
		ordersGroup.GET("/stats/production", a.ordersHandler.HandleProductionStats)
		ordersGroup.GET("/stats/payments", a.ordersHandler.HandlePaymentStats)
		ordersGroup.GET("/user/:user_email", a.ordersHandler.HandleListCustomerOrders)
		ordersGroup.GET("/by-number/:order_number", a.ordersHandler.HandleGetOrderByNumber)
		ordersGroup.POST("/sync-payment-status", a.paymentsHandler.HandleSyncOrderPaymentStatuses)
		ordersGroup.GET("/:order_id", a.ordersHandler.HandleGetOrder)
		ordersGroup.PATCH("/:order_id", a.ordersHandler.HandleUpdateOrder)
		ordersGroup.PATCH("/:order_id/production-status", a.ordersHandler.HandleUpdateProductionStatus)
		ordersGroup.GET("/:order_id/production-history", a.ordersHandler.HandleProductionHistory)
		ordersGroup.POST("/:order_id/finish-production", a.ordersHandler.HandleFinishProduction)
	}

	// Checkout endpoints keep the flat paths the storefront already calls.
	apiGroup.GET("/config-status", a.paymentsHandler.HandleConfigStatus)
	apiGroup.POST("/create_preference", a.paymentsHandler.HandleCreatePreference)
	apiGroup.POST("/webhook", a.paymentsHandler.HandleWebhook)

	paymentsGroup := apiGroup.Group("/payments")
	{
		paymentsGroup.GET("", a.paymentsHandler.HandleListPayments)
		paymentsGroup.POST("/sync", a.paymentsHandler.HandleSyncPayments)
		paymentsGroup.GET("/:payment_id", a.paymentsHandler.HandleGetPayment)
		paymentsGroup.POST("/:payment_id/refund", a.paymentsHandler.HandleRefundPayment)
		paymentsGroup.POST("/:payment_id/recover-order", a.paymentsHandler.HandleRecoverOrder)
	}

	statsGroup := apiGroup.Group("/stats")
	{
		statsGroup.POST("/visit", a.statsHandler.HandleRecordVisit)
		statsGroup.GET("/visits", a.statsHandler.HandleVisitCount)
		statsGroup.GET("/ranking", a.statsHandler.HandleRanking)
		statsGroup.GET("/dashboard", a.statsHandler.HandleDashboard)
	}

	newsletterGroup := apiGroup.Group("/newsletter")
	{
		newsletterGroup.POST("/subscribe", a.newsletterHandler.HandleSubscribe)
		newsletterGroup.POST("/unsubscribe", a.newsletterHandler.HandleUnsubscribe)
		newsletterGroup.GET("/subscribers", a.newsletterHandler.HandleListSubscribers)
		newsletterGroup.GET("/subscribers/count", a.newsletterHandler.HandleSubscriberCount)
	}

	cartGroup := apiGroup.Group("/cart")
	{
		cartGroup.GET("/items", a.cartHandler.HandleListItems)
		cartGroup.POST("/items", a.cartHandler.HandleAddItem)
		cartGroup.DELETE("/items", a.cartHandler.HandleClear)
		cartGroup.DELETE("/items/:item_id", a.cartHandler.HandleRemoveItem)
	}

	apiGroup.GET("/user/me", a.usersHandler.HandleGetProfile)

	addressesGroup := apiGroup.Group("/addresses")
	{
		addressesGroup.GET("", a.usersHandler.HandleListAddresses)
		addressesGroup.POST("", a.usersHandler.HandleCreateAddress)
		addressesGroup.PATCH("/:address_id", a.usersHandler.HandleUpdateAddress)
		addressesGroup.DELETE("/:address_id", a.usersHandler.HandleDeleteAddress)
		addressesGroup.POST("/:address_id/default", a.usersHandler.HandleSetDefaultAddress)
	}

	apiGroup.POST("/contact", a.contactHandler.HandleSubmitContact)
	apiGroup.POST("/returns/regret", a.contactHandler.HandleRegretRequest)
}

// handleHealth reports readiness for load balancer checks. Anything other
// than READY is a 503 so traffic drains during startup and shutdown.
func (a *API) handleHealth(c *gin.Context) {
	if a.health.Ready() {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": a.health.Current().String()})
}
