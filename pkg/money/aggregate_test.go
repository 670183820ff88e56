package money_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/amirasaad/cryptomath/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumMaxMin(t *testing.T) {
	amounts := []money.Amount{
		mustAmount(t, eth, "1.234567890000000001"),
		mustAmount(t, eth, "0.765432109999999999"),
		mustAmount(t, gwei, "-1"),
	}

	sum, err := money.Sum(amounts...)
	require.NoError(t, err)
	assert.Equal(t, "1999999999", format(t, sum, gwei))

	largest, err := money.Max(amounts...)
	require.NoError(t, err)
	assert.True(t, largest.Equal(amounts[0]))

	smallest, err := money.Min(amounts...)
	require.NoError(t, err)
	assert.True(t, smallest.Equal(amounts[2]))
}

func TestAggregates_Errors(t *testing.T) {
	_, err := money.Sum()
	assert.ErrorIs(t, err, money.ErrEmpty)
	_, err = money.Max()
	assert.ErrorIs(t, err, money.ErrEmpty)
	_, err = money.Min()
	assert.ErrorIs(t, err, money.ErrEmpty)

	mixed := []money.Amount{mustAmount(t, btc, "1"), mustAmount(t, eth, "1")}
	_, err = money.Sum(mixed...)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	_, err = money.Max(mixed...)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

	_, err = money.Sum(money.Amount{})
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
}

func TestSumParallel(t *testing.T) {
	amounts := make([]money.Amount, 1000)
	for i := range amounts {
		amounts[i] = money.FromScaled(sat.Currency(), big.NewInt(int64(i+1)))
	}

	for _, workers := range []int{0, 1, 3, 8, 2000} {
		sum, err := money.SumParallel(context.Background(), workers, amounts)
		require.NoError(t, err)
		assert.Equal(t, "500500", format(t, sum, sat), "workers=%d", workers)
	}
}

func TestSumParallel_Errors(t *testing.T) {
	_, err := money.SumParallel(context.Background(), 4, nil)
	assert.ErrorIs(t, err, money.ErrEmpty)

	amounts := []money.Amount{mustAmount(t, btc, "1"), mustAmount(t, btc, "1"), mustAmount(t, eth, "1")}
	_, err = money.SumParallel(context.Background(), 3, amounts)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = money.SumParallel(ctx, 2, amounts[:2])
	assert.ErrorIs(t, err, context.Canceled)
}
