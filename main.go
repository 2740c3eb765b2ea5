package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/voguevault/voguevault-backend-go/apperr"
	"github.com/voguevault/voguevault-backend-go/config"
	"github.com/voguevault/voguevault-backend-go/database"
	"github.com/voguevault/voguevault-backend-go/handlers"
	"github.com/voguevault/voguevault-backend-go/routes"
	"github.com/voguevault/voguevault-backend-go/utils"
)

func main() {
	config.LoadEnv()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = utils.NewRequestValidator()
	production := config.GetEnv("APP_ENV", "development") == "production"
	e.HTTPErrorHandler = apperr.HTTPErrorHandler(production)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Connect(ctx); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	handlers.UseOTPSender(utils.NewSMTPSender(config.LoadSMTP()))

	routes.SetupRoutes(e)

	port := config.GetEnv("PORT", "5500")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Println("Failed to shut down server:", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		log.Println("Failed to disconnect from database:", err)
	}
}
