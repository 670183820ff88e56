package decimal_test

import (
	"strings"
	"testing"

	"github.com/amirasaad/cryptomath/pkg/decimal"
	shopspring "github.com/shopspring/decimal"
)

// FuzzToScaled checks parser invariants with random input.
func FuzzToScaled(f *testing.F) {
	f.Add("1.23456789", uint8(8))
	f.Add("-0.000000000000000001", uint8(18))
	f.Add("  42  ", uint8(0))
	f.Add("1.a3456789", uint8(8))
	f.Add(".5", uint8(2))

	f.Fuzz(func(t *testing.T, text string, decimals uint8) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ToScaled panicked: %v (text=%q)", r, text)
			}
		}()

		v, err := decimal.ToScaled(text, decimals)
		if err != nil {
			if decimal.IsValid(text) {
				t.Fatalf("ToScaled rejected valid text %q: %v", text, err)
			}
			return
		}

		// Sign law
		trimmed := strings.TrimSpace(text)
		if !strings.HasPrefix(trimmed, "-") {
			neg, err := decimal.ToScaled("-"+strings.TrimPrefix(trimmed, "+"), decimals)
			if err != nil {
				t.Fatalf("negated text rejected: %v", err)
			}
			if neg.Neg(neg).Cmp(v) != 0 {
				t.Fatalf("sign law broken for %q", text)
			}
		}

		// Formatting the result and parsing again is lossless.
		back, err := decimal.ToScaled(decimal.FromScaled(v, decimals), decimals)
		if err != nil || back.Cmp(v) != 0 {
			t.Fatalf("round trip failed for %q: %v", text, err)
		}
	})
}

// FuzzToScaled_Oracle compares against shopspring/decimal on plain inputs.
func FuzzToScaled_Oracle(f *testing.F) {
	f.Add(int64(123456789), uint8(4), uint8(8))
	f.Add(int64(-5), uint8(1), uint8(0))
	f.Add(int64(1), uint8(0), uint8(18))

	f.Fuzz(func(t *testing.T, unscaled int64, exp uint8, decimals uint8) {
		exp %= 30
		decimals %= 40
		d := shopspring.New(unscaled, -int32(exp))
		text := d.StringFixed(int32(exp))

		got, err := decimal.ToScaled(text, decimals)
		if err != nil {
			t.Fatalf("ToScaled(%q): %v", text, err)
		}
		want := d.Shift(int32(decimals)).BigInt()
		if got.Cmp(want) != 0 {
			t.Fatalf("ToScaled(%q, %d) = %s, shopspring says %s", text, decimals, got, want)
		}
	})
}
