package money

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sum adds amounts, which must share a currency.
func Sum(amounts ...Amount) (Amount, error) {
	if len(amounts) == 0 {
		return Amount{}, ErrEmpty
	}
	total := amounts[0]
	for _, a := range amounts[1:] {
		var err error
		if total, err = total.Add(a); err != nil {
			return Amount{}, err
		}
	}
	if !total.currency.IsValid() {
		return Amount{}, ErrInvalidCurrency
	}
	return total, nil
}

// Max returns the largest of amounts.
func Max(amounts ...Amount) (Amount, error) {
	return pick(amounts, 1)
}

// Min returns the smallest of amounts.
func Min(amounts ...Amount) (Amount, error) {
	return pick(amounts, -1)
}

func pick(amounts []Amount, want int) (Amount, error) {
	if len(amounts) == 0 {
		return Amount{}, ErrEmpty
	}
	best := amounts[0]
	if !best.currency.IsValid() {
		return Amount{}, ErrInvalidCurrency
	}
	for _, a := range amounts[1:] {
		c, err := a.Cmp(best)
		if err != nil {
			return Amount{}, err
		}
		if c == want {
			best = a
		}
	}
	return best, nil
}

// SumParallel adds amounts in chunks on up to workers goroutines.
// A workers value below one uses GOMAXPROCS.
func SumParallel(ctx context.Context, workers int, amounts []Amount) (Amount, error) {
	if len(amounts) == 0 {
		return Amount{}, ErrEmpty
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(amounts) + workers - 1) / workers
	partials := make([]Amount, (len(amounts)+chunk-1)/chunk)

	g, ctx := errgroup.WithContext(ctx)
	for i := range partials {
		lo := i * chunk
		hi := min(lo+chunk, len(amounts))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Sum(amounts[lo:hi]...)
			if err != nil {
				return err
			}
			partials[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Amount{}, err
	}
	return Sum(partials...)
}
