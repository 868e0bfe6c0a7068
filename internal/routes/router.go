package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminhandler "robot-rental-admin/internal/admin/handler"
	adminrepo "robot-rental-admin/internal/admin/repository"
	adminservice "robot-rental-admin/internal/admin/service"
	"robot-rental-admin/internal/cache"
	charityhandler "robot-rental-admin/internal/charity/handler"
	charityrepo "robot-rental-admin/internal/charity/repository"
	charityservice "robot-rental-admin/internal/charity/service"
	"robot-rental-admin/internal/config"
	customerhandler "robot-rental-admin/internal/customer/handler"
	customerrepo "robot-rental-admin/internal/customer/repository"
	customerservice "robot-rental-admin/internal/customer/service"
	"robot-rental-admin/internal/database"
	devicehandler "robot-rental-admin/internal/device/handler"
	devicerepo "robot-rental-admin/internal/device/repository"
	deviceservice "robot-rental-admin/internal/device/service"
	"robot-rental-admin/internal/middleware"
	orderhandler "robot-rental-admin/internal/order/handler"
	orderrepo "robot-rental-admin/internal/order/repository"
	orderservice "robot-rental-admin/internal/order/service"
	rentalhandler "robot-rental-admin/internal/rental/handler"
	rentalrepo "robot-rental-admin/internal/rental/repository"
	rentalservice "robot-rental-admin/internal/rental/service"
	"robot-rental-admin/internal/stats"
)

// Services bundles the service layer so main can hand the same instances
// to the router and the housekeeping jobs.
type Services struct {
	Customers customerservice.CustomerService
	Devices   deviceservice.DeviceService
	Orders    orderservice.OrderService
	Rentals   rentalservice.RentalService
	Charity   charityservice.CharityService
	Admins    adminservice.AdminService
	Stats     *stats.Service
}

// BuildServices wires repositories and services on top of the database
// and cache connections.
func BuildServices(cfg *config.Config, db *database.Database, redisCache *cache.Cache) *Services {
	customerRepository := customerrepo.NewCustomerRepository(db.DB)
	deviceRepository := devicerepo.NewDeviceRepository(db.DB)
	orderRepository := orderrepo.NewOrderRepository(db.DB)
	rentalRepository := rentalrepo.NewRentalRepository(db.DB)
	charityRepository := charityrepo.NewCharityRepository(db.DB)
	adminRepository := adminrepo.NewAdminRepository(db.DB)

	var statsCache stats.Cache
	if redisCache != nil {
		statsCache = redisCache
	}

	return &Services{
		Customers: customerservice.NewCustomerService(customerRepository),
		Devices:   deviceservice.NewDeviceService(deviceRepository),
		Orders:    orderservice.NewOrderService(orderRepository),
		Rentals:   rentalservice.NewRentalService(rentalRepository, deviceRepository),
		Charity:   charityservice.NewCharityService(charityRepository),
		Admins:    adminservice.NewAdminService(adminRepository, cfg.JWT),
		Stats: stats.NewService(
			customerRepository,
			deviceRepository,
			orderRepository,
			rentalRepository,
			statsCache,
		),
	}
}

// SetupRoutes builds the gin engine: middleware chain, health endpoint,
// public login route and the authenticated API groups.
func SetupRoutes(cfg *config.Config, db *database.Database, redisCache *cache.Cache, services *Services) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "database connection failed",
			})
			return
		}

		status := gin.H{"status": "healthy"}
		if redisCache != nil {
			if err := redisCache.Health(c.Request.Context()); err != nil {
				status["cache"] = "unavailable"
			}
		}

		c.JSON(http.StatusOK, status)
	})

	customerHandler := customerhandler.NewCustomerHandler(services.Customers)
	deviceHandler := devicehandler.NewDeviceHandler(services.Devices)
	orderHandler := orderhandler.NewOrderHandler(services.Orders)
	rentalHandler := rentalhandler.NewRentalHandler(services.Rentals)
	charityHandler := charityhandler.NewCharityHandler(services.Charity)
	adminHandler := adminhandler.NewAdminHandler(services.Admins)
	statsHandler := stats.NewHandler(services.Stats)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", adminHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			customers := protected.Group("/customers")
			{
				customers.POST("", customerHandler.Create)
				customers.GET("", customerHandler.Search)
				customers.GET("/:id", customerHandler.GetByID)
				customers.PUT("/:id", customerHandler.Update)
				customers.DELETE("/:id", customerHandler.Delete)
			}

			devices := protected.Group("/devices")
			{
				devices.POST("", deviceHandler.Create)
				devices.GET("", deviceHandler.Search)
				devices.GET("/:id", deviceHandler.GetByID)
				devices.PUT("/:id", deviceHandler.Update)
				devices.DELETE("/:id", deviceHandler.Delete)
				devices.PUT("/:id/status", deviceHandler.ChangeStatus)
				devices.POST("/batch", deviceHandler.BatchOperation)
			}

			orders := protected.Group("/orders")
			{
				orders.POST("", orderHandler.Create)
				orders.GET("", orderHandler.Search)
				orders.GET("/:id", orderHandler.GetByID)
				orders.PUT("/:id/status", orderHandler.UpdateStatus)
				orders.PUT("/:id/payment-status", orderHandler.UpdatePaymentStatus)
				orders.POST("/batch-status", orderHandler.BatchUpdateStatus)
				orders.GET("/:id/logs", orderHandler.ListLogs)
			}

			rentals := protected.Group("/rentals")
			{
				rentals.POST("", rentalHandler.Create)
				rentals.GET("", rentalHandler.List)
				rentals.GET("/:id", rentalHandler.GetByID)
				rentals.PUT("/:id/status", rentalHandler.ChangeStatus)
			}

			charity := protected.Group("/charity")
			{
				charity.POST("/institutions", charityHandler.CreateInstitution)
				charity.GET("/institutions", charityHandler.SearchInstitutions)
				charity.GET("/institutions/:id", charityHandler.GetInstitution)
				charity.PUT("/institutions/:id", charityHandler.UpdateInstitution)
				charity.DELETE("/institutions/:id", charityHandler.DeleteInstitution)

				charity.POST("/activities", charityHandler.CreateActivity)
				charity.GET("/activities", charityHandler.SearchActivities)
				charity.GET("/activities/:id", charityHandler.GetActivity)
				charity.PUT("/activities/:id", charityHandler.UpdateActivity)
				charity.DELETE("/activities/:id", charityHandler.DeleteActivity)
				charity.PUT("/activities/:id/status", charityHandler.ChangeActivityStatus)

				charity.GET("/stats", charityHandler.Stats)
			}

			dashboard := protected.Group("/stats")
			{
				dashboard.GET("/dashboard", statsHandler.Dashboard)
				dashboard.POST("/dashboard/refresh", statsHandler.Refresh)
			}
		}
	}

	return router
}
