// Package gateway assembles the reverse proxy fronting the domain services.
package gateway

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/sirupsen/logrus"

	"microshop/internal/config"
)

const defaultCacheTTL = 30 * time.Second

// New builds the gateway app from the routing rules: one path-prefix mount
// per upstream, with an in-memory GET response cache where enabled. The
// gateway does nothing beyond proxying; balancing and health checking belong
// to the deployment, not to this process.
func New(cfg config.GatewayConfig, log *logrus.Logger) *fiber.App {
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"routes": len(cfg.Routes),
		})
	})

	for _, route := range cfg.Routes {
		if route.Cache {
			ttl := route.CacheTTL
			if ttl <= 0 {
				ttl = defaultCacheTTL
			}
			app.Use(route.Prefix, cache.New(cache.Config{
				Expiration: ttl,
				// Only idempotent reads are cacheable; everything else goes
				// straight to the upstream.
				Next: func(c *fiber.Ctx) bool {
					return c.Method() != fiber.MethodGet
				},
				KeyGenerator: func(c *fiber.Ctx) string {
					return c.Method() + ":" + c.OriginalURL()
				},
			}))
		}

		upstream := route.Upstream
		prefix := route.Prefix
		app.All(prefix+"*", func(c *fiber.Ctx) error {
			if err := proxy.Do(c, upstream+c.OriginalURL()); err != nil {
				log.WithFields(logrus.Fields{
					"upstream": upstream,
					"path":     c.OriginalURL(),
				}).WithError(err).Error("proxy request failed")
				return c.SendStatus(fiber.StatusBadGateway)
			}
			c.Response().Header.Del(fiber.HeaderServer)
			return nil
		})
		log.WithFields(logrus.Fields{
			"prefix":   prefix,
			"upstream": upstream,
			"cache":    route.Cache,
		}).Info("gateway route mounted")
	}

	return app
}
