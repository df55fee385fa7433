package routes

import (
	"github.com/abira1/Cafe-Colombia01/configs"
	"github.com/abira1/Cafe-Colombia01/controllers"
	"github.com/abira1/Cafe-Colombia01/middlewares"
	"github.com/abira1/Cafe-Colombia01/repository"
	"github.com/abira1/Cafe-Colombia01/services"
	"github.com/abira1/Cafe-Colombia01/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.NotifyHub, tg *services.TelegramNotifier) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	notifySvc := services.NewNotifyService(hub, tg, settingsRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	eventSvc := services.NewEventService(eventRepo)
	bookingSvc := services.NewBookingService(bookingRepo, eventRepo, notifySvc)
	reservationSvc := services.NewReservationService(reservationRepo, notifySvc)
	reviewSvc := services.NewReviewService(reviewRepo, notifySvc)
	offerSvc := services.NewOfferService(offerRepo)
	gallerySvc := services.NewGalleryService(galleryRepo)
	promoSvc := services.NewPromotionService(promoRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, promoRepo, services.Pricing{
		ShippingFee:     cfg.ShippingFee,
		FreeShippingMin: cfg.FreeShippingMin,
	})
	locationSvc := services.NewLocationService(services.DeliveryArea{
		City:  cfg.DeliveryCity,
		North: cfg.DeliveryNorth,
		South: cfg.DeliverySouth,
		East:  cfg.DeliveryEast,
		West:  cfg.DeliveryWest,
	}, cfg.DeliveryMinMins, cfg.DeliveryMaxMins)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, cartSvc, locationSvc, notifySvc)
	settingsSvc := services.NewSettingsService(settingsRepo, bookingRepo, reservationRepo)
	exportSvc := services.NewExportService(bookingRepo, reservationRepo, eventRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	eventCtrl := controllers.NewEventController(eventSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	offerCtrl := controllers.NewOfferController(offerSvc)
	galleryCtrl := controllers.NewGalleryController(gallerySvc)
	promoCtrl := controllers.NewPromotionController(promoSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, services.QRGenerator{BaseURL: cfg.PublicBaseURL})
	locationCtrl := controllers.NewLocationController(locationSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc, exportSvc)
	adminCtrl := controllers.NewAdminController(db)

	api := r.Group("/api")

	// Storefront (no auth)
	api.GET("/menu", menuCtrl.List) // ?category=
	api.GET("/events", eventCtrl.ListPublic)
	api.GET("/gallery", galleryCtrl.List)
	api.GET("/reviews", reviewCtrl.ListPublic)
	api.POST("/reviews", reviewCtrl.Create)
	api.GET("/offers", offerCtrl.ListPublic)
	api.POST("/bookings", bookingCtrl.Create)
	api.POST("/reservations", reservationCtrl.Create)
	api.POST("/location/check", locationCtrl.Check)

	// Guest cart and checkout, keyed by the X-Session-Token header
	sess := api.Group("", middlewares.SessionMiddleware())
	{
		sess.GET("/cart", cartCtrl.Get)
		sess.POST("/cart/items", cartCtrl.Add)
		sess.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		sess.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		sess.DELETE("/cart", cartCtrl.Clear)
		sess.POST("/cart/coupon", cartCtrl.ApplyCoupon)
		sess.DELETE("/cart/coupon", cartCtrl.RemoveCoupon)

		sess.POST("/orders", orderCtrl.Checkout)
	}
	api.GET("/orders/:code", orderCtrl.GetByCode)
	api.GET("/orders/:code/qr", orderCtrl.QRCode)

	// Auth
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/auth/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Admin console
	admin := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.PUT("/menu", menuCtrl.Replace)

		admin.GET("/events", eventCtrl.ListAll)
		admin.POST("/events", eventCtrl.Create)
		admin.PATCH("/events/:id", eventCtrl.Update)
		admin.DELETE("/events/:id", eventCtrl.Delete)
		admin.PUT("/events", eventCtrl.Replace)

		admin.GET("/bookings", bookingCtrl.List) // ?status=
		admin.PATCH("/bookings/:id/status", bookingCtrl.UpdateStatus)

		admin.GET("/reservations", reservationCtrl.List) // ?status=
		admin.PATCH("/reservations/:id/status", reservationCtrl.UpdateStatus)

		admin.GET("/reviews", reviewCtrl.ListAll)
		admin.PATCH("/reviews/:id/status", reviewCtrl.UpdateStatus)
		admin.PATCH("/reviews/:id/active", reviewCtrl.SetActive)
		admin.DELETE("/reviews/:id", reviewCtrl.Delete)
		admin.PUT("/reviews", reviewCtrl.Replace)

		admin.GET("/offers", offerCtrl.ListAll)
		admin.POST("/offers", offerCtrl.Create)
		admin.PATCH("/offers/:id", offerCtrl.Update)
		admin.DELETE("/offers/:id", offerCtrl.Delete)
		admin.PUT("/offers", offerCtrl.Replace)

		admin.POST("/gallery", galleryCtrl.Create)
		admin.PATCH("/gallery/:id", galleryCtrl.Update)
		admin.DELETE("/gallery/:id", galleryCtrl.Delete)
		admin.PUT("/gallery", galleryCtrl.Replace)

		admin.GET("/promotions", promoCtrl.List)
		admin.POST("/promotions", promoCtrl.Create)
		admin.PATCH("/promotions/:id", promoCtrl.Update)
		admin.DELETE("/promotions/:id", promoCtrl.Delete)

		admin.GET("/orders", orderCtrl.List)
		admin.PATCH("/orders/:id/complete", orderCtrl.Complete)
		admin.PATCH("/orders/:id/cancel", orderCtrl.Cancel)

		admin.GET("/settings/notifications", settingsCtrl.GetNotifications)
		admin.PUT("/settings/notifications", settingsCtrl.UpdateNotifications)
		admin.PATCH("/settings/profile", authCtrl.UpdateProfile)
		admin.PATCH("/settings/password", authCtrl.ChangePassword)
		admin.POST("/settings/cleanup", settingsCtrl.Cleanup)

		admin.GET("/export/reservations", settingsCtrl.ExportReservations)
		admin.GET("/export/events", settingsCtrl.ExportEvents)
		admin.GET("/export/all", settingsCtrl.ExportAll)
	}

	// Live dashboard feed; browsers cannot set Authorization on a websocket
	// upgrade so the token may ride the query string instead.
	api.GET("/admin/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleWebSocket)
}
