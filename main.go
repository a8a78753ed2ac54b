package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"questionnaire/internal/database"
	"questionnaire/internal/handlers"
	"questionnaire/internal/logger"
	"questionnaire/internal/questionnaire"
)

func main() {
	_ = godotenv.Load()

	driver := database.Connection()
	defer driver.Close(context.Background())

	database.Migrations()

	svc := questionnaire.NewService(database.NewStore(driver))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/v1/applications", handlers.ListApplications(svc))
	e.GET("/v1/applications/:uuid", handlers.GetApplicationWithQuestions(svc))
	e.PUT("/v1/applications/:uuid/answers", handlers.SaveAnswers(svc))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("port", port))
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", err)
	}
}
