package money_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/amirasaad/cryptomath/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	btc  = currency.MustLookup("BTC", "BTC")
	sat  = currency.MustLookup("BTC", "SAT")
	mbtc = currency.MustLookup("BTC", "mBTC")
	ubtc = currency.MustLookup("BTC", "μBTC")
	eth  = currency.MustLookup("ETH", "ETH")
	gwei = currency.MustLookup("ETH", "GWEI")
	wei  = currency.MustLookup("ETH", "WEI")
)

// mustAmount parses text in d for tests.
func mustAmount(t *testing.T, d currency.Denom, text string) money.Amount {
	t.Helper()
	a, err := money.FromDecimal(d, text)
	require.NoError(t, err, "failed to parse %q as %s", text, d)
	return a
}

// format renders a in d for tests.
func format(t *testing.T, a money.Amount, d currency.Denom) string {
	t.Helper()
	s, err := a.ToDecimal(d)
	require.NoError(t, err)
	return s
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		name string
		d    currency.Denom
		text string
		want int64
	}{
		{"leading zeros", btc, "0001.23456789", 123456789},
		{"whitespace", btc, "  1.23456789  ", 123456789},
		{"truncates extra digits", btc, "1.2345678901234567890123", 123456789},
		{"satoshi", sat, "50000000", 50000000},
		{"microbit", ubtc, "500000", 50000000},
		{"negative", btc, "-0.00000001", -1},
		{"negative zero", btc, "-0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustAmount(t, tt.d, tt.text)
			assert.Equal(t, tt.want, a.Value().Int64())
			assert.Equal(t, tt.d.Currency(), a.Currency())
		})
	}
}

func TestFromDecimal_Errors(t *testing.T) {
	_, err := money.FromDecimal(btc, "1.a3456789")
	assert.Error(t, err)

	_, err = money.FromDecimal(currency.Denom{}, "1")
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name string
		from currency.Denom
		text string
		to   currency.Denom
		want string
	}{
		{"mBTC to BTC", mbtc, "123456", btc, "123.45600000"},
		{"μBTC to BTC", ubtc, "123456789", btc, "123.45678900"},
		{"BTC to mBTC", btc, "123.456", mbtc, "123456"},
		{"BTC to μBTC", btc, "123.456", ubtc, "123456000"},
		{"negative BTC to μBTC", btc, "-0.00000001", ubtc, "-0.01"},
		{"BTC to SAT", btc, "1", sat, "100000000"},
		{"SAT to BTC", sat, "100000000", btc, "1"},
		{"BTC to SAT fractional", btc, "1.23456789", sat, "123456789"},
		{"ETH to WEI", eth, "1", wei, "1000000000000000000"},
		{"WEI to GWEI", wei, "1", gwei, "0.000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustAmount(t, tt.from, tt.text)
			assert.Equal(t, tt.want, format(t, a, tt.to))
		})
	}
}

func TestToDecimal_Mismatch(t *testing.T) {
	a := mustAmount(t, btc, "1")
	_, err := a.ToDecimal(gwei)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

	_, err = money.Amount{}.ToDecimal(btc)
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
}

func TestAddSub(t *testing.T) {
	a := mustAmount(t, btc, "1.1")

	sum, err := a.Add(mustAmount(t, mbtc, "100"))
	require.NoError(t, err)
	assert.Equal(t, "1.20000000", format(t, sum, btc))

	diff, err := a.Sub(mustAmount(t, sat, "50000000"))
	require.NoError(t, err)
	assert.Equal(t, "0.60000000", format(t, diff, btc))

	diff, err = a.Sub(mustAmount(t, sat, "-50000000"))
	require.NoError(t, err)
	assert.Equal(t, "1.60000000", format(t, diff, btc))

	diff, err = mustAmount(t, btc, "1").Sub(mustAmount(t, sat, "50000000"))
	require.NoError(t, err)
	assert.Equal(t, "0.50000000", format(t, diff, btc))

	// operands are unchanged
	assert.Equal(t, "1.10000000", format(t, a, btc))
}

func TestAddSub_Inverse(t *testing.T) {
	a := mustAmount(t, eth, "12.345678901234567891")
	b := mustAmount(t, gwei, "-987654321.123456789")

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))
}

func TestCurrencySafety(t *testing.T) {
	b := mustAmount(t, btc, "1")
	e := mustAmount(t, eth, "1")

	_, err := b.Add(e)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	_, err = b.Sub(e)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	_, err = b.Cmp(e)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	_, err = b.Add(money.Amount{})
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)

	doge := mustAmount(t, currency.MustLookup("DOGE", "SAT"), "1")
	_, err = mustAmount(t, sat, "1").Add(doge)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		a    money.Amount
		b    money.Amount
		want int
	}{
		{"equal across denominations", mustAmount(t, sat, "50000000"), mustAmount(t, ubtc, "500000"), 0},
		{"greater", mustAmount(t, sat, "50000001"), mustAmount(t, ubtc, "500000"), 1},
		{"less", mustAmount(t, sat, "49999999"), mustAmount(t, ubtc, "500000"), -1},
		{"positive vs negative", mustAmount(t, sat, "1"), mustAmount(t, ubtc, "-1"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Cmp(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	gt, err := mustAmount(t, btc, "2").GreaterThan(mustAmount(t, btc, "1"))
	require.NoError(t, err)
	assert.True(t, gt)
	lt, err := mustAmount(t, btc, "2").LessThan(mustAmount(t, btc, "1"))
	require.NoError(t, err)
	assert.False(t, lt)
}

func TestSignPredicates(t *testing.T) {
	assert.True(t, mustAmount(t, btc, "-0").IsZero())
	assert.True(t, money.New(btc.Currency()).IsZero())
	assert.True(t, mustAmount(t, btc, "0.00000001").IsPositive())
	assert.True(t, mustAmount(t, btc, "-0.00000001").IsNegative())
	assert.False(t, mustAmount(t, btc, "0").IsPositive())
	assert.False(t, mustAmount(t, btc, "0").IsNegative())

	neg := mustAmount(t, btc, "-1.5")
	assert.Equal(t, "1.50000000", format(t, neg.Abs(), btc))
	assert.Equal(t, "1.50000000", format(t, neg.Neg(), btc))
}

func TestFromScaled_Copies(t *testing.T) {
	v := big.NewInt(42)
	a := money.FromScaled(eth.Currency(), v)
	v.SetInt64(7)
	assert.Equal(t, int64(42), a.Value().Int64())

	a.Value().SetInt64(9)
	assert.Equal(t, int64(42), a.Value().Int64())
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.50000000 BTC", mustAmount(t, btc, "1.5").String())
	assert.Equal(t, "0.000000001000000000 ETH", mustAmount(t, wei, "1000000000").String())
	assert.Equal(t, "0 ETH", money.New(eth.Currency()).String())
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(mustAmount(t, gwei, "1.5"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"ETH","value":"1500000000"}`, string(data))
}
