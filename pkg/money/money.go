// Package money provides exact cryptocurrency amounts.
//
// An Amount is a value object holding an arbitrary-precision integer in the
// smallest unit of its currency (satoshi for Bitcoin, wei for Ethereum).
// Invariants:
//   - The value is exact; rounding only happens in division and when
//     formatting to a denomination with fewer decimals than the input had.
//   - Every binary operation requires both operands to share a currency.
//   - Amounts are immutable. Operations return new values.
package money

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/amirasaad/cryptomath/pkg/decimal"
)

var zero = new(big.Int)

// Amount is an exact quantity of one currency.
// The zero Amount has no currency and is rejected by binary operations.
type Amount struct {
	currency currency.Currency
	value    *big.Int
}

// New returns a zero amount of cur.
func New(cur currency.Currency) Amount {
	return Amount{currency: cur}
}

// FromScaled returns an amount of cur holding v smallest units. v is copied.
func FromScaled(cur currency.Currency, v *big.Int) Amount {
	if v == nil {
		return Amount{currency: cur}
	}
	return Amount{currency: cur, value: new(big.Int).Set(v)}
}

// FromDecimal parses text expressed in denomination d.
// Fraction digits beyond d's decimals are truncated.
func FromDecimal(d currency.Denom, text string) (Amount, error) {
	if !d.IsValid() {
		return Amount{}, ErrInvalidCurrency
	}
	v, err := decimal.ToScaled(text, d.Decimals())
	if err != nil {
		return Amount{}, err
	}
	return Amount{currency: d.Currency(), value: v}, nil
}

// MustFromDecimal is like FromDecimal but panics on error.
func MustFromDecimal(d currency.Denom, text string) Amount {
	a, err := FromDecimal(d, text)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) val() *big.Int {
	if a.value == nil {
		return zero
	}
	return a.value
}

// Currency returns the currency of a.
func (a Amount) Currency() currency.Currency {
	return a.currency
}

// Value returns a copy of the value in smallest units.
func (a Amount) Value() *big.Int {
	return new(big.Int).Set(a.val())
}

// ToDecimal formats a in denomination d.
func (a Amount) ToDecimal(d currency.Denom) (string, error) {
	if err := a.checkDenom(d); err != nil {
		return "", err
	}
	return decimal.FromScaled(a.val(), d.Decimals()), nil
}

// String formats a in its currency's primary denomination, e.g. "1.5 BTC".
func (a Amount) String() string {
	if !a.currency.IsValid() {
		return a.val().String()
	}
	d := a.currency.Primary()
	return decimal.FromScaled(a.val(), d.Decimals()) + " " + d.Symbol()
}

// MarshalJSON implements json.Marshaler. The value is in smallest units.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"currency": a.currency.Symbol(),
		"value":    a.val().String(),
	})
}

func (a Amount) checkDenom(d currency.Denom) error {
	if !d.IsValid() || !a.currency.IsValid() {
		return ErrInvalidCurrency
	}
	if d.Currency() != a.currency {
		return fmt.Errorf("%w: %s amount in %s denomination %s", ErrCurrencyMismatch, a.currency, d.Currency(), d)
	}
	return nil
}

func (a Amount) check(op string, b Amount) error {
	if !a.currency.IsValid() || !b.currency.IsValid() {
		return ErrInvalidCurrency
	}
	if a.currency != b.currency {
		return fmt.Errorf("%w: cannot %s %s and %s", ErrCurrencyMismatch, op, a.currency, b.currency)
	}
	return nil
}

// Add returns a + b.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.check("add", b); err != nil {
		return Amount{}, err
	}
	return Amount{currency: a.currency, value: new(big.Int).Add(a.val(), b.val())}, nil
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.check("subtract", b); err != nil {
		return Amount{}, err
	}
	return Amount{currency: a.currency, value: new(big.Int).Sub(a.val(), b.val())}, nil
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) (int, error) {
	if err := a.check("compare", b); err != nil {
		return 0, err
	}
	return a.val().Cmp(b.val()), nil
}

// GreaterThan reports whether a > b.
func (a Amount) GreaterThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c > 0, err
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c < 0, err
}

// Equal reports whether a and b have the same currency and value.
func (a Amount) Equal(b Amount) bool {
	return a.currency == b.currency && a.val().Cmp(b.val()) == 0
}

// IsZero reports whether a is zero.
func (a Amount) IsZero() bool { return a.val().Sign() == 0 }

// IsPositive reports whether a is greater than zero.
func (a Amount) IsPositive() bool { return a.val().Sign() > 0 }

// IsNegative reports whether a is less than zero.
func (a Amount) IsNegative() bool { return a.val().Sign() < 0 }

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{currency: a.currency, value: new(big.Int).Neg(a.val())}
}

// Abs returns |a|.
func (a Amount) Abs() Amount {
	return Amount{currency: a.currency, value: new(big.Int).Abs(a.val())}
}
