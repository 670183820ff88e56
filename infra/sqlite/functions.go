package sqlite

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/amirasaad/cryptomath/pkg/decimal"
	"github.com/amirasaad/cryptomath/pkg/money"
	"github.com/amirasaad/cryptomath/pkg/service/calc"
	"github.com/mattn/go-sqlite3"
)

type binding struct {
	svc *calc.Service
}

// scalar is the Go shape of every four-argument crypto_* function.
type scalar func(a0, a1, a2, a3 any) (any, error)

func (b *binding) registerFunctions(conn *sqlite3.SQLiteConn) error {
	funcs := []struct {
		name string
		impl scalar
	}{
		{"crypto_add", b.textOp("crypto_add", b.svc.Add)},
		{"crypto_sub", b.textOp("crypto_sub", b.svc.Sub)},
		{"crypto_mul", b.textOp("crypto_mul", b.svc.Mul)},
		{"crypto_div_trunc", b.div("crypto_div_trunc", money.Trunc)},
		{"crypto_div_floor", b.div("crypto_div_floor", money.Floor)},
		{"crypto_div_ceil", b.div("crypto_div_ceil", money.Ceil)},
		{"crypto_scale", b.scale},
		{"crypto_cmp", b.cmp},
	}
	for _, f := range funcs {
		if err := conn.RegisterFunc(f.name, f.impl, true); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

func (b *binding) registerAggregates(conn *sqlite3.SQLiteConn) error {
	for _, kind := range []calc.Kind{calc.Sum, calc.Max, calc.Min} {
		name := "crypto_" + kind.String()
		ctor := func() *aggregator {
			return &aggregator{name: name, kind: kind, svc: b.svc}
		}
		if err := conn.RegisterAggregator(name, ctor, true); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (b *binding) textOp(name string, op func(cur, denom, x, y string) (string, error)) scalar {
	return func(a0, a1, a2, a3 any) (any, error) {
		args, ok := texts(a0, a1, a2, a3)
		if !ok {
			return nil, fmt.Errorf("%s: Invalid arguments", name)
		}
		out, err := op(args[0], args[1], args[2], args[3])
		if err != nil {
			return nil, sqlError(name, err)
		}
		return out, nil
	}
}

func (b *binding) div(name string, mode money.Rounding) scalar {
	return b.textOp(name, func(cur, denom, x, y string) (string, error) {
		return b.svc.Div(cur, denom, x, y, mode)
	})
}

func (b *binding) scale(a0, a1, a2, a3 any) (any, error) {
	args, ok := texts(a0, a1, a2, a3)
	if !ok {
		return nil, nil
	}
	out, err := b.svc.Scale(args[0], args[1], args[2], args[3])
	if err != nil {
		return nil, sqlError("crypto_scale", err)
	}
	return out, nil
}

func (b *binding) cmp(a0, a1, a2, a3 any) (any, error) {
	args, ok := texts(a0, a1, a2, a3)
	if !ok {
		return nil, errors.New("crypto_cmp: Invalid arguments")
	}
	c, err := b.svc.Cmp(args[0], args[1], args[2], args[3])
	if err != nil {
		return nil, sqlError("crypto_cmp", err)
	}
	return int64(c), nil
}

// aggregator backs crypto_sum, crypto_max and crypto_min. Every row resolves
// its own symbols and the first usable row fixes the currency and the final
// denomination. NULL and malformed operands are skipped.
type aggregator struct {
	name string
	kind calc.Kind
	svc  *calc.Service
	agg  *calc.Aggregate
	err  error
}

func (a *aggregator) Step(a0, a1, a2, a3 any) {
	if a.err != nil {
		return
	}
	args, ok := texts(a0, a1, a2, a3)
	if !ok || !decimal.IsValid(args[3]) {
		return
	}
	if a.agg == nil {
		agg, err := a.svc.NewAggregate(a.kind, args[0], args[1], args[2])
		if err != nil {
			a.err = sqlError(a.name, err)
			return
		}
		a.agg = agg
	}
	if err := a.agg.StepRow(args[0], args[1], args[2], args[3]); err != nil {
		a.err = sqlError(a.name, err)
	}
}

func (a *aggregator) Done() (any, error) {
	if a.err != nil {
		return nil, a.err
	}
	if a.agg == nil {
		return nil, nil
	}
	out, ok := a.agg.Result()
	if !ok {
		return nil, nil
	}
	return out, nil
}

// texts converts SQL values to their text form. ok is false if any is NULL,
// which the driver hands to interface{} arguments as a nil []byte.
func texts(vals ...any) ([]string, bool) {
	out := make([]string, len(vals))
	for i, v := range vals {
		switch v := v.(type) {
		case nil:
			return nil, false
		case string:
			out[i] = v
		case []byte:
			if v == nil {
				return nil, false
			}
			out[i] = string(v)
		case int64:
			out[i] = strconv.FormatInt(v, 10)
		case float64:
			out[i] = realText(v)
		case bool:
			out[i] = strconv.FormatBool(v)
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out, true
}

// realText renders v the way sqlite3_value_text does ("%!.15g"): 2.0 reads as
// "2.0" and 1e21 as "1.0e+21". The exponent form is not a valid decimal.
func realText(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return ""
	}
	s := strconv.FormatFloat(v, 'g', 15, 64)
	mantissa, exp, hasExp := strings.Cut(s, "e")
	if strings.Contains(mantissa, ".") {
		mantissa = strings.TrimRight(strings.TrimRight(mantissa, "0"), ".")
	}
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	if hasExp {
		return mantissa + "e" + exp
	}
	return mantissa
}

// sqlError phrases err the way SQL callers see it, e.g. "crypto_add: Invalid crypto type".
func sqlError(fn string, err error) error {
	var de *calc.DenomError
	var oe *calc.OperandError
	switch {
	case errors.Is(err, currency.ErrUnknownCurrency):
		return fmt.Errorf("%s: Invalid crypto type", fn)
	case errors.As(err, &de):
		if de.Role == "" {
			return fmt.Errorf("%s: Invalid denomination", fn)
		}
		return fmt.Errorf("%s: Invalid %s denomination", fn, de.Role)
	case errors.Is(err, money.ErrDivisionByZero):
		return fmt.Errorf("%s: Division by zero", fn)
	case errors.As(err, &oe):
		return fmt.Errorf("%s: Invalid decimal format for %s", fn, oe.Position)
	default:
		return fmt.Errorf("%s: %w", fn, err)
	}
}
