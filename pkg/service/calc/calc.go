// Package calc exposes amount arithmetic over symbols and decimal text, the
// shape every front-end (SQL functions, HTTP, CLI) consumes.
package calc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/amirasaad/cryptomath/pkg/money"
)

// Service resolves symbols against a registry and runs money operations.
type Service struct {
	registry   *currency.Registry
	logger     *slog.Logger
	sumWorkers int
}

// Option configures a Service.
type Option func(*Service)

// WithSumWorkers sets the goroutine count Reduce uses for sums. Values below
// one use GOMAXPROCS.
func WithSumWorkers(n int) Option {
	return func(s *Service) { s.sumWorkers = n }
}

// New creates a calc service. A nil registry uses currency.Default().
func New(registry *currency.Registry, logger *slog.Logger, opts ...Option) *Service {
	if registry == nil {
		registry = currency.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		registry: registry,
		logger:   logger.With("service", "Calc"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the registry symbols are resolved against.
func (s *Service) Registry() *currency.Registry {
	return s.registry
}

func (s *Service) currency(sym string) (currency.Currency, error) {
	return s.registry.CurrencyForSymbol(sym)
}

func (s *Service) denom(cur currency.Currency, sym, role string) (currency.Denom, error) {
	d, err := s.registry.DenomForSymbol(cur, sym)
	if err != nil {
		return currency.Denom{}, &DenomError{Role: role, Err: err}
	}
	return d, nil
}

func (s *Service) lookup(curSym, denomSym string) (currency.Denom, error) {
	cur, err := s.currency(curSym)
	if err != nil {
		return currency.Denom{}, err
	}
	return s.denom(cur, denomSym, "")
}

func parse(d currency.Denom, text, position string) (money.Amount, error) {
	a, err := money.FromDecimal(d, text)
	if err != nil {
		return money.Amount{}, &OperandError{Position: position, Err: err}
	}
	return a, nil
}

func (s *Service) pair(curSym, denomSym, a, b string) (currency.Denom, money.Amount, money.Amount, error) {
	d, err := s.lookup(curSym, denomSym)
	if err != nil {
		return currency.Denom{}, money.Amount{}, money.Amount{}, err
	}
	x, err := parse(d, a, First)
	if err != nil {
		return currency.Denom{}, money.Amount{}, money.Amount{}, err
	}
	y, err := parse(d, b, Second)
	if err != nil {
		return currency.Denom{}, money.Amount{}, money.Amount{}, err
	}
	return d, x, y, nil
}

func (s *Service) fail(op string, err error) error {
	s.logger.Debug("operation failed", "op", op, "error", err)
	return err
}

// Add returns a + b, both given and returned in denomSym.
func (s *Service) Add(curSym, denomSym, a, b string) (string, error) {
	d, x, y, err := s.pair(curSym, denomSym, a, b)
	if err != nil {
		return "", s.fail("add", err)
	}
	sum, err := x.Add(y)
	if err != nil {
		return "", s.fail("add", err)
	}
	return sum.ToDecimal(d)
}

// Sub returns a - b, both given and returned in denomSym.
func (s *Service) Sub(curSym, denomSym, a, b string) (string, error) {
	d, x, y, err := s.pair(curSym, denomSym, a, b)
	if err != nil {
		return "", s.fail("sub", err)
	}
	diff, err := x.Sub(y)
	if err != nil {
		return "", s.fail("sub", err)
	}
	return diff.ToDecimal(d)
}

// Mul multiplies amount by a decimal scalar.
func (s *Service) Mul(curSym, denomSym, amount, scalar string) (string, error) {
	d, err := s.lookup(curSym, denomSym)
	if err != nil {
		return "", s.fail("mul", err)
	}
	x, err := parse(d, amount, First)
	if err != nil {
		return "", s.fail("mul", err)
	}
	p, err := x.MulDecimal(scalar)
	if err != nil {
		return "", s.fail("mul", &OperandError{Position: Second, Err: err})
	}
	return p.ToDecimal(d)
}

// Div divides amount by a decimal scalar with the given rounding.
func (s *Service) Div(curSym, denomSym, amount, scalar string, mode money.Rounding) (string, error) {
	d, err := s.lookup(curSym, denomSym)
	if err != nil {
		return "", s.fail("div", err)
	}
	x, err := parse(d, amount, First)
	if err != nil {
		return "", s.fail("div", err)
	}
	q, err := x.DivDecimal(scalar, mode)
	if err != nil {
		if !errors.Is(err, money.ErrDivisionByZero) {
			err = &OperandError{Position: Second, Err: err}
		}
		return "", s.fail("div", err)
	}
	return q.ToDecimal(d)
}

// Scale re-expresses operand, given in fromSym, in toSym.
func (s *Service) Scale(curSym, fromSym, toSym, operand string) (string, error) {
	cur, err := s.currency(curSym)
	if err != nil {
		return "", s.fail("scale", err)
	}
	from, err := s.denom(cur, fromSym, RoleFrom)
	if err != nil {
		return "", s.fail("scale", err)
	}
	to, err := s.denom(cur, toSym, RoleTo)
	if err != nil {
		return "", s.fail("scale", err)
	}
	a, err := parse(from, operand, Operand)
	if err != nil {
		return "", s.fail("scale", err)
	}
	return a.ToDecimal(to)
}

// Cmp compares a and b and returns -1, 0 or 1.
func (s *Service) Cmp(curSym, denomSym, a, b string) (int, error) {
	_, x, y, err := s.pair(curSym, denomSym, a, b)
	if err != nil {
		return 0, s.fail("cmp", err)
	}
	return x.Cmp(y)
}

// Reduce folds values, given in operandSym, with kind and formats the result
// in finalSym. Every value must be well-formed. Sums run in parallel.
func (s *Service) Reduce(ctx context.Context, kind Kind, curSym, operandSym, finalSym string, values []string) (string, error) {
	agg, err := s.NewAggregate(kind, curSym, operandSym, finalSym)
	if err != nil {
		return "", s.fail(kind.String(), err)
	}
	amounts := make([]money.Amount, len(values))
	for i, v := range values {
		a, err := parse(agg.operand, v, fmt.Sprintf("%s %d", Operand, i+1))
		if err != nil {
			return "", s.fail(kind.String(), err)
		}
		amounts[i] = a
	}

	var result money.Amount
	switch kind {
	case Sum:
		result, err = money.SumParallel(ctx, s.sumWorkers, amounts)
	case Max:
		result, err = money.Max(amounts...)
	case Min:
		result, err = money.Min(amounts...)
	default:
		err = fmt.Errorf("unknown aggregate %s", kind)
	}
	if err != nil {
		return "", s.fail(kind.String(), err)
	}
	return result.ToDecimal(agg.final)
}

// Convert is Scale under the name the HTTP and CLI front-ends use.
func (s *Service) Convert(curSym, fromSym, toSym, amount string) (string, error) {
	return s.Scale(curSym, fromSym, toSym, amount)
}
