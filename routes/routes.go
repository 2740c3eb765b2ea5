package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voguevault/voguevault-backend-go/handlers"
	"github.com/voguevault/voguevault-backend-go/metrics"
	customMiddleware "github.com/voguevault/voguevault-backend-go/middleware"
)

func SetupRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	// Auth (public)
	api.POST("/signup", handlers.Signup)
	api.POST("/login", handlers.Login)
	api.POST("/verifyotp", handlers.VerifyOTP)
	api.POST("/resendotp", handlers.ResendOTP)

	// Catalog (public)
	api.GET("/products", handlers.GetProducts)
	api.GET("/products/:id", handlers.GetProduct)
	api.GET("/products/search/:query", handlers.SearchProducts)
	api.GET("/products/query/:query", handlers.QueryProducts)
	api.POST("/products", handlers.CreateProducts)

	// Bearer-protected routes
	auth := api.Group("", customMiddleware.Auth)
	auth.GET("/cart", handlers.GetCart)
	auth.POST("/cart/update", handlers.UpdateCart)
	auth.PUT("/cart/add", handlers.AddToCart)
	auth.DELETE("/cart/:id", handlers.RemoveFromCart)
	auth.POST("/favorites", handlers.BulkAddFavorites)
	auth.PUT("/favorites/update", handlers.ToggleFavorite)
	auth.GET("/user", handlers.GetUser)
	auth.PUT("/user", handlers.UpdateUser)
}
