// Package server holds the fiber bootstrap shared by every service binary.
package server

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

// NewApp builds a fiber app with request logging and a health endpoint.
func NewApp(service string) *fiber.App {
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": service,
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// Run starts the app and blocks until SIGINT/SIGTERM, then drains it.
func Run(app *fiber.App, port string, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(port); err != nil {
			log.WithError(err).Fatal("server failed to start")
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server stopped")
}
