package money_test

import (
	"math/big"
	"testing"

	"github.com/amirasaad/cryptomath/pkg/decimal"
	"github.com/amirasaad/cryptomath/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulScalar(t *testing.T) {
	a := mustAmount(t, btc, "2")
	assert.Equal(t, "-4", format(t, a.MulScalar(big.NewInt(-2)), btc))
	assert.Equal(t, "0", format(t, a.MulScalar(big.NewInt(0)), btc))
	assert.True(t, a.MulScalar(nil).IsZero())
}

func TestDiv_UnknownRounding(t *testing.T) {
	a := mustAmount(t, btc, "2")
	for _, divisor := range []int64{2, 3} {
		_, err := a.Div(big.NewInt(divisor), money.Rounding(7))
		assert.Error(t, err, "divisor %d", divisor)
	}
	_, err := a.DivDecimal("0.5", money.Rounding(7))
	assert.Error(t, err)
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		divisor int64
		mode    money.Rounding
		want    string
	}{
		{"trunc exact", "2", 2, money.Trunc, "1"},
		{"trunc", "1.23456788", 3, money.Trunc, "0.41152262"},
		{"trunc one third", "1", 3, money.Trunc, "0.33333333"},
		{"trunc negative", "-0.00000007", 2, money.Trunc, "-0.00000003"},
		{"trunc negative divisor", "0.00000007", -2, money.Trunc, "-0.00000003"},
		{"floor positive", "0.00000007", 2, money.Floor, "0.00000003"},
		{"floor negative", "-0.00000007", 2, money.Floor, "-0.00000004"},
		{"floor negative divisor", "0.00000007", -2, money.Floor, "-0.00000004"},
		{"floor both negative", "-0.00000007", -2, money.Floor, "0.00000003"},
		{"ceil positive", "0.00000007", 2, money.Ceil, "0.00000004"},
		{"ceil negative", "-0.00000007", 2, money.Ceil, "-0.00000003"},
		{"ceil both negative", "-0.00000007", -2, money.Ceil, "0.00000004"},
		{"floor exact negative", "-0.00000008", 2, money.Floor, "-0.00000004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustAmount(t, btc, tt.text).Div(big.NewInt(tt.divisor), tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, format(t, got, btc))
		})
	}
}

func TestDiv_Helpers(t *testing.T) {
	a := mustAmount(t, sat, "-7")
	two := big.NewInt(2)

	q, err := a.DivTrunc(two)
	require.NoError(t, err)
	assert.Equal(t, "-3", format(t, q, sat))

	q, err = a.DivFloor(two)
	require.NoError(t, err)
	assert.Equal(t, "-4", format(t, q, sat))

	q, err = a.DivCeil(two)
	require.NoError(t, err)
	assert.Equal(t, "-3", format(t, q, sat))

	q, err = mustAmount(t, btc, "2").DivTrunc(two)
	require.NoError(t, err)
	assert.Equal(t, "100000000", format(t, q, sat))
}

func TestDiv_ByZero(t *testing.T) {
	a := mustAmount(t, btc, "1")
	for _, mode := range []money.Rounding{money.Trunc, money.Floor, money.Ceil} {
		_, err := a.Div(big.NewInt(0), mode)
		assert.ErrorIs(t, err, money.ErrDivisionByZero, mode.String())
	}
	_, err := a.DivTrunc(nil)
	assert.ErrorIs(t, err, money.ErrDivisionByZero)

	_, err = a.DivDecimal("0.000", money.Trunc)
	assert.ErrorIs(t, err, money.ErrDivisionByZero)
}

func TestMulDecimal(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		scalar string
		want   string
	}{
		{"integer", "2", "3", "6"},
		{"fractional amount", "1.5", "2", "3"},
		{"negative", "-2", "3", "-6"},
		{"fractional scalar", "2", "1.5", "3"},
		{"negative scalar", "2", "-0.5", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustAmount(t, gwei, tt.text).MulDecimal(tt.scalar)
			require.NoError(t, err)
			assert.Equal(t, tt.want, format(t, got, gwei))
		})
	}

	got, err := mustAmount(t, btc, "0.5").MulDecimal("0.5")
	require.NoError(t, err)
	assert.Equal(t, "0.25000000", format(t, got, btc))

	// below the smallest unit the product truncates toward zero
	got, err = mustAmount(t, sat, "-3").MulDecimal("0.5")
	require.NoError(t, err)
	assert.Equal(t, "-1", format(t, got, sat))

	_, err = mustAmount(t, btc, "1").MulDecimal("x")
	assert.ErrorIs(t, err, decimal.ErrInvalidDecimal)
}

func TestDivDecimal(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		scalar string
		mode   money.Rounding
		want   string
	}{
		{"exact", "6", "2", money.Trunc, "3"},
		{"fraction", "3", "2", money.Trunc, "1.500000000"},
		{"negative amount", "-6", "2", money.Trunc, "-3"},
		{"negative scalar", "6", "-2", money.Trunc, "-3"},
		{"by half", "3", "0.5", money.Trunc, "6"},
		{"floor", "-0.000000001", "2", money.Floor, "-0.000000001"},
		{"ceil", "0.000000001", "2", money.Ceil, "0.000000001"},
		{"trunc", "0.000000001", "2", money.Trunc, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustAmount(t, gwei, tt.text).DivDecimal(tt.scalar, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, format(t, got, gwei))
		})
	}

	got, err := mustAmount(t, btc, "1").DivDecimal("3", money.Trunc)
	require.NoError(t, err)
	assert.Equal(t, "0.33333333", format(t, got, btc))
}

func TestParseRounding(t *testing.T) {
	for _, mode := range []money.Rounding{money.Trunc, money.Floor, money.Ceil} {
		got, err := money.ParseRounding(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := money.ParseRounding("")
	require.NoError(t, err)
	assert.Equal(t, money.Trunc, got)

	_, err = money.ParseRounding("half-even")
	assert.Error(t, err)
	assert.Equal(t, "Rounding(7)", money.Rounding(7).String())
}
