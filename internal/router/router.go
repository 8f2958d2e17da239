package router

import (
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/config"
	publichandlers "github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/handlers/public"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP engine with all routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	apiV1.Use(SessionMiddleware(cfg.Session))
	{
		sweets := apiV1.Group("/sweets")
		{
			sweets.GET("", publicHandler.ListSweets)
			sweets.GET("/search", publicHandler.SearchSweets)
			sweets.GET("/:id", publicHandler.GetSweet)
			sweets.POST("/:id/purchase", publicHandler.PurchaseSweet)

			admin := sweets.Group("")
			admin.Use(AdminKeyMiddleware(cfg.Admin.APIKey))
			{
				admin.POST("", publicHandler.CreateSweet)
				admin.POST("/:id/restock", publicHandler.RestockSweet)
			}
		}

		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.DELETE("", publicHandler.ClearCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:id", publicHandler.RemoveCartItem)
		}

		apiV1.POST("/checkout", publicHandler.Checkout)

		orders := apiV1.Group("/orders")
		{
			orders.GET("", publicHandler.ListOrders)
			orders.GET("/:id", publicHandler.GetOrder)
		}

		favorites := apiV1.Group("/favorites")
		{
			favorites.GET("", publicHandler.ListFavorites)
			favorites.PUT("/:sweet_id", publicHandler.AddFavorite)
			favorites.DELETE("/:sweet_id", publicHandler.RemoveFavorite)
		}

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", publicHandler.Register)
			authGroup.POST("/login", publicHandler.Login)
			authGroup.GET("/me", publicHandler.Me)
		}
	}

	return r
}
