package cmd

import (
	"lincloud/core/listener"
	"lincloud/core/loader"
	"lincloud/core/logger"
	"lincloud/core/middleware/auth"
	"lincloud/core/middleware/rayid"
	"lincloud/core/server"
	"lincloud/feature/content"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// newAppFactory returns the factory building the content app for a
// canonical root directory.
func newAppFactory(cfg server.Config, logg *zap.Logger) listener.AppFactory {
	return func(root string) (*fiber.App, error) {
		app := fiber.New(fiber.Config{
			AppName:               "linc",
			DisableStartupMessage: true, // We print our own banner
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			err := c.Next()
			l.Info("Request",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
			)
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey}))

		mgr := loader.NewManager(logg)
		mgr.Register(content.NewFeature(root, cfg.Browse, logg))
		if err := mgr.LoadAll(app); err != nil {
			return nil, err
		}
		return app, nil
	}
}
