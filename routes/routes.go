package routes

import (
	"github.com/PhamKien043/datn-sub000/configs"
	"github.com/PhamKien043/datn-sub000/controllers"
	"github.com/PhamKien043/datn-sub000/middlewares"
	"github.com/PhamKien043/datn-sub000/pkg/vnpay"
	"github.com/PhamKien043/datn-sub000/repository"
	"github.com/PhamKien043/datn-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// Services
	gateway := vnpay.New(vnpay.Config{
		TmnCode:    cfg.VNPay.TmnCode,
		HashSecret: cfg.VNPay.HashSecret,
		PayURL:     cfg.VNPay.PayURL,
		ReturnURL:  cfg.VNPay.ReturnURL,
	})
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	voucherSvc := services.NewVoucherService(db, voucherRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, catalogRepo)
	scheduleSvc := services.NewScheduleService(db, slotRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, catalogRepo, slotRepo, orderRepo, voucherSvc, gateway)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	roomCtrl := controllers.NewRoomController(catalogRepo, scheduleSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	voucherCtrl := controllers.NewVoucherController(voucherSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(checkoutSvc)
	scheduleCtrl := controllers.NewScheduleController(scheduleSvc)
	blogCtrl := controllers.NewBlogController(blogRepo)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth(), authCtrl.Me)

	// Public catalog
	r.GET("/rooms", roomCtrl.List)
	r.GET("/rooms/:id", roomCtrl.Detail)
	r.GET("/rooms/:id/slots", roomCtrl.Slots)
	r.GET("/location-types", roomCtrl.LocationTypes)
	r.GET("/services", roomCtrl.Services)
	r.GET("/menus", menuCtrl.List)
	r.GET("/menus/:id", menuCtrl.Detail)
	r.GET("/menu-categories", menuCtrl.Categories)
	r.GET("/blog", blogCtrl.List)
	r.GET("/blog/:slug", blogCtrl.Detail)

	// The gateway redirects the browser here without our token.
	r.GET("/payment/vnpay/return", paymentCtrl.VNPayReturn)

	// Customer (authenticated)
	u := r.Group("/", auth())
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.AddItem)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)
		u.PUT("/cart/table-count", cartCtrl.SetTableCount)
		u.PUT("/cart/booking", cartCtrl.SetBooking)

		u.GET("/vouchers", voucherCtrl.List)
		u.GET("/vouchers/mine", voucherCtrl.Mine)
		u.POST("/vouchers/:id/collect", voucherCtrl.Collect)

		u.POST("/payment/redirect", paymentCtrl.Redirect)
		u.POST("/payment/vnpay/redirect", paymentCtrl.Redirect)

		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin
	admin := r.Group("/admin", auth("admin"))
	{
		admin.POST("/rooms", roomCtrl.Create)
		admin.PUT("/rooms/:id", roomCtrl.Update)
		admin.DELETE("/rooms/:id", roomCtrl.Delete)

		admin.GET("/rooms/:id/slots", scheduleCtrl.List)
		admin.POST("/rooms/:id/slots", scheduleCtrl.Create)
		admin.PUT("/slots/:id", scheduleCtrl.Update)
		admin.DELETE("/slots/:id", scheduleCtrl.Delete)

		admin.POST("/services", roomCtrl.CreateService)
		admin.PUT("/services/:id", roomCtrl.UpdateService)
		admin.DELETE("/services/:id", roomCtrl.DeleteService)

		admin.POST("/menus", menuCtrl.Create)
		admin.PUT("/menus/:id", menuCtrl.Update)
		admin.DELETE("/menus/:id", menuCtrl.Delete)
		admin.POST("/menu-categories", menuCtrl.CreateCategory)
		admin.PUT("/menu-categories/:id", menuCtrl.UpdateCategory)
		admin.DELETE("/menu-categories/:id", menuCtrl.DeleteCategory)

		admin.GET("/vouchers", voucherCtrl.AdminList)
		admin.POST("/vouchers", voucherCtrl.Create)
		admin.PUT("/vouchers/:id", voucherCtrl.Update)
		admin.DELETE("/vouchers/:id", voucherCtrl.Delete)

		admin.GET("/blog", blogCtrl.AdminList)
		admin.POST("/blog", blogCtrl.Create)
		admin.PUT("/blog/:id", blogCtrl.Update)
		admin.DELETE("/blog/:id", blogCtrl.Delete)

		admin.GET("/orders", orderCtrl.AdminList)
		admin.GET("/orders/:id", orderCtrl.AdminDetail)
		admin.PATCH("/orders/:id/advance", orderCtrl.Advance)
		admin.PUT("/orders/:id", orderCtrl.SetStatus)
	}
}
