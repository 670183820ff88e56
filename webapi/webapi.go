// Package webapi provides the HTTP front-end. It is organized into
// sub-packages:
//   - currency: registry listings
//   - amount: arithmetic on decimal amounts
//   - common: response envelope and error mapping
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/cryptomath/infra/initializer"
	"github.com/amirasaad/cryptomath/pkg/middleware"
	amountweb "github.com/amirasaad/cryptomath/webapi/amount"
	"github.com/amirasaad/cryptomath/webapi/common"
	currencyweb "github.com/amirasaad/cryptomath/webapi/currency"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp builds the fiber app over deps.
func SetupApp(deps *initializer.Deps) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "cryptomath",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	limit := limiter.Config{
		KeyGenerator: func(c *fiber.Ctx) string {
			// first hop of X-Forwarded-For, then X-Real-IP, then the peer
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				first, _, _ := strings.Cut(forwardedFor, ",")
				return strings.TrimSpace(first)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}
	if cfg := deps.Config; cfg != nil && cfg.RateLimit != nil {
		limit.Max = cfg.RateLimit.MaxRequests
		limit.Expiration = cfg.RateLimit.Window
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(middleware.RequestLogger(deps.Logger))
	fiberApp.Use(limiter.New(limit))

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("cryptomath API is running! 🚀")
	})

	currencyweb.Routes(fiberApp, deps.Registry)
	amountweb.Routes(fiberApp, deps.Calc, deps.Rounding)
	return fiberApp
}
