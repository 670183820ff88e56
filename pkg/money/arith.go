package money

import (
	"fmt"
	"math/big"

	"github.com/amirasaad/cryptomath/pkg/decimal"
)

// Rounding selects how division discards its remainder.
type Rounding int

const (
	// Trunc rounds toward zero.
	Trunc Rounding = iota
	// Floor rounds toward negative infinity.
	Floor
	// Ceil rounds toward positive infinity.
	Ceil
)

func (r Rounding) String() string {
	switch r {
	case Trunc:
		return "trunc"
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	}
	return fmt.Sprintf("Rounding(%d)", int(r))
}

// ParseRounding parses "trunc", "floor" or "ceil".
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "trunc", "":
		return Trunc, nil
	case "floor":
		return Floor, nil
	case "ceil":
		return Ceil, nil
	}
	return Trunc, fmt.Errorf("unknown rounding mode %q", s)
}

// MulScalar returns a * s. A nil s multiplies by zero.
func (a Amount) MulScalar(s *big.Int) Amount {
	if s == nil {
		return New(a.currency)
	}
	return Amount{currency: a.currency, value: new(big.Int).Mul(a.val(), s)}
}

// DivTrunc returns a / s rounded toward zero.
func (a Amount) DivTrunc(s *big.Int) (Amount, error) { return a.Div(s, Trunc) }

// DivFloor returns a / s rounded toward negative infinity.
func (a Amount) DivFloor(s *big.Int) (Amount, error) { return a.Div(s, Floor) }

// DivCeil returns a / s rounded toward positive infinity.
func (a Amount) DivCeil(s *big.Int) (Amount, error) { return a.Div(s, Ceil) }

// Div returns a / s rounded as mode selects. s may be negative.
func (a Amount) Div(s *big.Int, mode Rounding) (Amount, error) {
	q, err := divide(a.val(), s, mode)
	if err != nil {
		return Amount{}, err
	}
	return Amount{currency: a.currency, value: q}, nil
}

// MulDecimal multiplies a by a decimal scalar such as "1.5".
// The product is truncated toward zero to the smallest unit.
func (a Amount) MulDecimal(scalar string) (Amount, error) {
	s, precision, err := decimal.Scalar(scalar)
	if err != nil {
		return Amount{}, err
	}
	v := new(big.Int).Mul(a.val(), s)
	v.Quo(v, decimal.Pow10(precision))
	return Amount{currency: a.currency, value: v}, nil
}

// DivDecimal divides a by a decimal scalar such as "0.5".
func (a Amount) DivDecimal(scalar string, mode Rounding) (Amount, error) {
	s, precision, err := decimal.Scalar(scalar)
	if err != nil {
		return Amount{}, err
	}
	n := new(big.Int).Mul(a.val(), decimal.Pow10(precision))
	q, err := divide(n, s, mode)
	if err != nil {
		return Amount{}, err
	}
	return Amount{currency: a.currency, value: q}, nil
}

func divide(n, d *big.Int, mode Rounding) (*big.Int, error) {
	switch mode {
	case Trunc, Floor, Ceil:
	default:
		return nil, fmt.Errorf("unknown rounding mode %s", mode)
	}
	if d == nil || d.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() == 0 {
		return q, nil
	}
	// r carries the sign of n, so r*d < 0 means the exact quotient is negative.
	sameSign := r.Sign() == d.Sign()
	switch mode {
	case Floor:
		if !sameSign {
			q.Sub(q, big.NewInt(1))
		}
	case Ceil:
		if sameSign {
			q.Add(q, big.NewInt(1))
		}
	}
	return q, nil
}
