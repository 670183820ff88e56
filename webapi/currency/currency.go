package currency

import (
	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/amirasaad/cryptomath/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the read-only registry endpoints.
func Routes(app *fiber.App, reg *currency.Registry) {
	app.Get("/api/currencies", ListCurrencies(reg))
	app.Get("/api/currencies/:symbol", GetCurrency(reg))
	app.Get("/api/currencies/:symbol/denominations", ListCurrencyDenominations(reg))
	app.Get("/api/denominations", ListDenominations(reg))
}

// ListCurrencies returns every currency with its denominations.
func ListCurrencies(reg *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out := make([]CurrencyResponse, 0, reg.Count())
		for _, m := range reg.Currencies() {
			cur, err := reg.CurrencyForSymbol(m.Symbol)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Failed to list currencies", err)
			}
			out = append(out, ToResponse(reg, cur))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", out)
	}
}

// GetCurrency returns one currency by symbol.
func GetCurrency(reg *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cur, err := reg.CurrencyForSymbol(c.Params("symbol"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Currency not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency fetched successfully", ToResponse(reg, cur))
	}
}

// ListCurrencyDenominations returns the denominations of one currency.
func ListCurrencyDenominations(reg *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cur, err := reg.CurrencyForSymbol(c.Params("symbol"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Currency not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Denominations fetched successfully", denoms(reg, cur))
	}
}

// ListDenominations returns every denomination in the registry. The
// optional ?decimals= filter keeps those with that many decimals.
func ListDenominations(reg *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all := reg.Denoms()
		if c.Query("decimals") == "" {
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Denominations fetched successfully", all)
		}
		want := c.QueryInt("decimals", -1)
		if want < 0 || want > 255 {
			return common.ProblemDetailsJSON(c, "Invalid query", nil, "decimals must be between 0 and 255")
		}
		out := make([]currency.DenomMeta, 0, len(all))
		for _, d := range all {
			if int(d.Decimals) == want {
				out = append(out, d)
			}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Denominations fetched successfully", out)
	}
}
