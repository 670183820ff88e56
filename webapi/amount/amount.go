// Package amount serves the arithmetic endpoints under /api/amounts.
package amount

import (
	"github.com/amirasaad/cryptomath/pkg/money"
	"github.com/amirasaad/cryptomath/pkg/service/calc"
	"github.com/amirasaad/cryptomath/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the amount endpoints. defaultMode applies to div
// requests that name no rounding mode.
func Routes(app *fiber.App, svc *calc.Service, defaultMode money.Rounding) {
	g := app.Group("/api/amounts")
	g.Post("/add", binary(svc.Add, "Addition failed"))
	g.Post("/sub", binary(svc.Sub, "Subtraction failed"))
	g.Post("/mul", binary(svc.Mul, "Multiplication failed"))
	g.Post("/div", Div(svc, defaultMode))
	g.Post("/cmp", Cmp(svc))
	g.Post("/convert", Convert(svc))
	g.Post("/reduce", Reduce(svc))
}

type binaryOp func(cur, denom, a, b string) (string, error)

func binary(op binaryOp, title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OperationRequest](c)
		if input == nil {
			return err // error response already written
		}
		result, err := op(input.Currency, input.Denom, input.A, input.B)
		if err != nil {
			return common.ProblemDetailsJSON(c, title, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "OK", ResultResponse{
			Currency: input.Currency,
			Denom:    input.Denom,
			Result:   result,
		})
	}
}

// Div divides an amount by a decimal scalar.
func Div(svc *calc.Service, defaultMode money.Rounding) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DivRequest](c)
		if input == nil {
			return err // error response already written
		}
		mode := defaultMode
		if input.Mode != "" {
			if mode, err = money.ParseRounding(input.Mode); err != nil {
				return common.ProblemDetailsJSON(c, "Invalid rounding mode", err, fiber.StatusBadRequest)
			}
		}
		result, err := svc.Div(input.Currency, input.Denom, input.A, input.B, mode)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Division failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "OK", ResultResponse{
			Currency: input.Currency,
			Denom:    input.Denom,
			Result:   result,
		})
	}
}

// Cmp compares two amounts.
func Cmp(svc *calc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OperationRequest](c)
		if input == nil {
			return err // error response already written
		}
		result, err := svc.Cmp(input.Currency, input.Denom, input.A, input.B)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Comparison failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "OK", CmpResponse{Result: result})
	}
}

// Convert re-expresses an amount in another denomination of its currency.
func Convert(svc *calc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ConvertRequest](c)
		if input == nil {
			return err // error response already written
		}
		result, err := svc.Convert(input.Currency, input.From, input.To, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Conversion failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "OK", ResultResponse{
			Currency: input.Currency,
			Denom:    input.To,
			Result:   result,
		})
	}
}

// Reduce sums, or picks the maximum or minimum of, a list of amounts.
func Reduce(svc *calc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ReduceRequest](c)
		if input == nil {
			return err // error response already written
		}
		kind, err := calc.ParseKind(input.Kind)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid aggregate", err, fiber.StatusBadRequest)
		}
		final := input.Final
		if final == "" {
			final = input.Denom
		}
		result, err := svc.Reduce(c.UserContext(), kind, input.Currency, input.Denom, final, input.Values)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Reduction failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "OK", ResultResponse{
			Currency: input.Currency,
			Denom:    final,
			Result:   result,
		})
	}
}
