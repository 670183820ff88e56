package money

import (
	"github.com/amirasaad/cryptomath/pkg/currency"
	shopspring "github.com/shopspring/decimal"
)

// Decimal returns a as a shopspring decimal expressed in denomination d.
func (a Amount) Decimal(d currency.Denom) (shopspring.Decimal, error) {
	if err := a.checkDenom(d); err != nil {
		return shopspring.Decimal{}, err
	}
	return shopspring.NewFromBigInt(a.Value(), -int32(d.Decimals())), nil
}

// FromShopspring converts v, expressed in denomination d, to an Amount.
// Digits below the smallest unit are truncated toward zero.
func FromShopspring(d currency.Denom, v shopspring.Decimal) (Amount, error) {
	if !d.IsValid() {
		return Amount{}, ErrInvalidCurrency
	}
	return Amount{currency: d.Currency(), value: v.Shift(int32(d.Decimals())).BigInt()}, nil
}
