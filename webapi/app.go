// Package webapi assembles the fiber application: middleware, health check
// and the per-entity route groups.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/neobank/backoffice/config"
	accountsvc "github.com/neobank/backoffice/pkg/service/account"
	clientsvc "github.com/neobank/backoffice/pkg/service/client"
	txsvc "github.com/neobank/backoffice/pkg/service/transaction"
	"github.com/neobank/backoffice/webapi/account"
	"github.com/neobank/backoffice/webapi/client"
	"github.com/neobank/backoffice/webapi/common"
	"github.com/neobank/backoffice/webapi/transaction"
)

// Services bundles the managers the HTTP layer adapts.
type Services struct {
	Client      *clientsvc.Service
	Account     *accountsvc.Service
	Transaction *txsvc.Service
}

// NewApp builds the fiber application with rate limiting, panic recovery and
// all routes registered.
func NewApp(svcs Services, cfg *config.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Back office is up")
	})

	client.Routes(app, svcs.Client)
	account.Routes(app, svcs.Account)
	transaction.Routes(app, svcs.Transaction)

	return app
}
