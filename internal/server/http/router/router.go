package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/foodkart/foodkart/internal/config"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/server/http/handlers"
	"github.com/foodkart/foodkart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	// cors.New rejects a config with no origins at all, so same-origin
	// deployments simply run without the middleware.
	if len(cfg.AllowedOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	couponHandler := handlers.NewCouponHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	assistantHandler := handlers.NewAssistantHandler(facade)

	authed := middleware.AuthRequired(facade)
	adminOnly := middleware.RequireRole(facade, model.RoleAdmin)
	staffOnly := middleware.RequireRole(facade, model.RoleAdmin, model.RoleRestaurant)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/google", authHandler.Google)

	authSelf := auth.Group("", authed)
	authSelf.GET("/me", authHandler.Me)
	authSelf.PUT("/updatedetails", authHandler.UpdateDetails)
	authSelf.PUT("/updatepassword", authHandler.UpdatePassword)

	authAdmin := auth.Group("/users", authed, adminOnly)
	authAdmin.GET("", authHandler.Users)
	authAdmin.POST("", authHandler.CreateUser)
	authAdmin.PUT("/:id", authHandler.UpdateUser)
	authAdmin.DELETE("/:id", authHandler.DeleteUser)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", authed, staffOnly, productHandler.Create)
	products.PUT("/:id", authed, adminOnly, productHandler.Update)
	products.DELETE("/:id", authed, adminOnly, productHandler.Delete)

	coupons := api.Group("/coupons")
	coupons.POST("/validate", authed, couponHandler.Validate)
	coupons.GET("", authed, adminOnly, couponHandler.List)
	coupons.POST("", authed, adminOnly, couponHandler.Create)
	coupons.PUT("/:id/toggle", authed, adminOnly, couponHandler.Toggle)
	coupons.DELETE("/:id", authed, adminOnly, couponHandler.Delete)

	orders := api.Group("/orders", authed)
	orders.POST("", orderHandler.Create)
	orders.GET("/myorders", orderHandler.Mine)
	orders.GET("", adminOnly, orderHandler.List)
	orders.GET("/stats", adminOnly, orderHandler.Stats)
	orders.PUT("/:id/status", adminOnly, orderHandler.UpdateStatus)

	pay := api.Group("/payment", authed)
	pay.POST("/create-order", paymentHandler.CreateOrder)
	pay.POST("/verify", paymentHandler.Verify)

	api.POST("/assistant/chat", assistantHandler.Chat)

	return engine
}
