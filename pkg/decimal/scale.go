package decimal

import (
	"fmt"
	"math/big"
	"strings"
)

const cachedPowers = 19

var powers = func() [cachedPowers]*big.Int {
	var p [cachedPowers]*big.Int
	ten := big.NewInt(10)
	p[0] = big.NewInt(1)
	for i := 1; i < cachedPowers; i++ {
		p[i] = new(big.Int).Mul(p[i-1], ten)
	}
	return p
}()

// pow10 returns 10^n. Cached results are shared and must not be modified.
func pow10(n uint8) *big.Int {
	if int(n) < cachedPowers {
		return powers[n]
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Pow10 returns a new big.Int holding 10^n.
func Pow10(n uint8) *big.Int {
	return new(big.Int).Set(pow10(n))
}

// Scaled returns the parts as an integer with decimals fractional digits.
// Extra fraction digits are truncated and missing ones are zero-padded.
func (p Parts) Scaled(decimals uint8) *big.Int {
	v := new(big.Int)
	if p.Whole != "" {
		v.SetString(p.Whole, 10)
		v.Mul(v, pow10(decimals))
	}

	frac := p.Frac
	if len(frac) > int(decimals) {
		frac = frac[:decimals]
	}
	if frac != "" {
		f, _ := new(big.Int).SetString(frac, 10)
		f.Mul(f, pow10(decimals-uint8(len(frac))))
		v.Add(v, f)
	}

	if p.Negative {
		v.Neg(v)
	}
	return v
}

// ToScaled converts decimal text to an integer with decimals fractional
// digits, truncating toward zero. "1.5" at 9 decimals is 1500000000.
func ToScaled(text string, decimals uint8) (*big.Int, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return p.Scaled(decimals), nil
}

// FromScaled formats v, holding decimals fractional digits, as decimal text.
// The fraction is omitted when it is zero, otherwise it is written with
// exactly decimals digits: 150000000 at 8 decimals is "1.50000000".
func FromScaled(v *big.Int, decimals uint8) string {
	if v == nil || v.Sign() == 0 {
		return "0"
	}
	q, r := new(big.Int).QuoRem(new(big.Int).Abs(v), pow10(decimals), new(big.Int))

	var b strings.Builder
	if v.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(q.String())
	if r.Sign() != 0 {
		rs := r.String()
		b.WriteByte('.')
		b.WriteString(strings.Repeat("0", int(decimals)-len(rs)))
		b.WriteString(rs)
	}
	return b.String()
}

// Scalar parses decimal text into its unscaled digits and precision,
// the number of fraction digits written. "1.50" is (150, 2).
func Scalar(text string) (*big.Int, uint8, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, 0, err
	}
	if len(p.Frac) > 255 {
		return nil, 0, &ParseError{Input: text, Offset: len(text), Reason: fmt.Sprintf("%d fraction digits exceeds 255", len(p.Frac))}
	}
	v, _ := new(big.Int).SetString(p.Whole+p.Frac, 10)
	if p.Negative {
		v.Neg(v)
	}
	return v, uint8(len(p.Frac)), nil
}
