// Package currency provides the registry of supported cryptocurrencies and
// their denominations.
//
// A Registry is immutable once built and safe for concurrent use.
// Invariants:
//   - Currency symbols are unique within a registry.
//   - Denomination symbols are unique within their currency, but may repeat
//     across currencies (SAT is both a Bitcoin and a Dogecoin unit).
//   - Decimals counts the base-10 digits between one unit of the denomination
//     and the currency's smallest indivisible unit.
package currency

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownCurrency is returned when a currency symbol is not registered.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownDenomination is returned when a denomination symbol is not
	// registered for the requested currency.
	ErrUnknownDenomination = errors.New("unknown denomination")

	// ErrInvalidRegistry is returned when registry definitions are inconsistent.
	ErrInvalidRegistry = errors.New("invalid registry definition")
)

// Definition describes one currency and its denominations.
type Definition struct {
	Symbol        string            `yaml:"symbol" json:"symbol"`
	Name          string            `yaml:"name" json:"name"`
	Denominations []DenomDefinition `yaml:"denominations" json:"denominations"`
}

// DenomDefinition describes one denomination of a currency.
type DenomDefinition struct {
	Symbol   string `yaml:"symbol" json:"symbol"`
	Name     string `yaml:"name" json:"name"`
	Decimals uint8  `yaml:"decimals" json:"decimals"`
}

// CurrencyMeta is the listing form of a currency.
type CurrencyMeta struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DenomMeta is the listing form of a denomination.
type DenomMeta struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Currency string `json:"crypto_symbol"`
	Decimals uint8  `json:"decimals"`
}

type denomEntry struct {
	meta     DenomMeta
	currency int
}

// Registry resolves currency and denomination symbols.
type Registry struct {
	currencies []CurrencyMeta
	denoms     []denomEntry
	bySymbol   map[string]int
	// per currency: denomination symbol -> index into denoms
	denomIndex []map[string]int
	// per currency: indexes into denoms, in definition order
	denomOrder [][]int
}

// New builds a registry from definitions, validating them.
func New(defs []Definition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no currencies", ErrInvalidRegistry)
	}
	r := &Registry{
		currencies: make([]CurrencyMeta, 0, len(defs)),
		bySymbol:   make(map[string]int, len(defs)),
		denomIndex: make([]map[string]int, 0, len(defs)),
		denomOrder: make([][]int, 0, len(defs)),
	}
	for _, def := range defs {
		if def.Symbol == "" || def.Name == "" {
			return nil, fmt.Errorf("%w: currency needs a symbol and a name", ErrInvalidRegistry)
		}
		if _, dup := r.bySymbol[def.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate currency %q", ErrInvalidRegistry, def.Symbol)
		}
		if len(def.Denominations) == 0 {
			return nil, fmt.Errorf("%w: currency %q has no denominations", ErrInvalidRegistry, def.Symbol)
		}
		ci := len(r.currencies)
		r.currencies = append(r.currencies, CurrencyMeta{Symbol: def.Symbol, Name: def.Name})
		r.bySymbol[def.Symbol] = ci

		index := make(map[string]int, len(def.Denominations))
		order := make([]int, 0, len(def.Denominations))
		for _, d := range def.Denominations {
			if d.Symbol == "" || d.Name == "" {
				return nil, fmt.Errorf("%w: denomination of %q needs a symbol and a name", ErrInvalidRegistry, def.Symbol)
			}
			if _, dup := index[d.Symbol]; dup {
				return nil, fmt.Errorf("%w: duplicate denomination %q in %q", ErrInvalidRegistry, d.Symbol, def.Symbol)
			}
			di := len(r.denoms)
			r.denoms = append(r.denoms, denomEntry{
				meta: DenomMeta{
					Symbol:   d.Symbol,
					Name:     d.Name,
					Currency: def.Symbol,
					Decimals: d.Decimals,
				},
				currency: ci,
			})
			index[d.Symbol] = di
			order = append(order, di)
		}
		r.denomIndex = append(r.denomIndex, index)
		r.denomOrder = append(r.denomOrder, order)
	}
	return r, nil
}

// MustNew is like New but panics on invalid definitions.
func MustNew(defs []Definition) *Registry {
	r, err := New(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// CurrencyForSymbol returns the currency registered under sym.
func (r *Registry) CurrencyForSymbol(sym string) (Currency, error) {
	i, ok := r.bySymbol[sym]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, sym)
	}
	return Currency{reg: r, idx: i}, nil
}

// DenomForSymbol returns the denomination of cur registered under sym.
func (r *Registry) DenomForSymbol(cur Currency, sym string) (Denom, error) {
	if cur.reg != r {
		return Denom{}, fmt.Errorf("%w: currency %s is not from this registry", ErrUnknownCurrency, cur)
	}
	i, ok := r.denomIndex[cur.idx][sym]
	if !ok {
		return Denom{}, fmt.Errorf("%w: %q for %s", ErrUnknownDenomination, sym, cur)
	}
	return Denom{reg: r, idx: i}, nil
}

// Lookup resolves a currency symbol and one of its denomination symbols.
func (r *Registry) Lookup(currencySym, denomSym string) (Currency, Denom, error) {
	cur, err := r.CurrencyForSymbol(currencySym)
	if err != nil {
		return Currency{}, Denom{}, err
	}
	d, err := r.DenomForSymbol(cur, denomSym)
	if err != nil {
		return Currency{}, Denom{}, err
	}
	return cur, d, nil
}

// Currencies returns every currency in definition order.
func (r *Registry) Currencies() []CurrencyMeta {
	out := make([]CurrencyMeta, len(r.currencies))
	copy(out, r.currencies)
	return out
}

// Denoms returns every denomination in definition order.
func (r *Registry) Denoms() []DenomMeta {
	out := make([]DenomMeta, len(r.denoms))
	for i, d := range r.denoms {
		out[i] = d.meta
	}
	return out
}

// DenomsOf returns the denominations of cur in definition order.
func (r *Registry) DenomsOf(cur Currency) []Denom {
	if cur.reg != r {
		return nil
	}
	order := r.denomOrder[cur.idx]
	out := make([]Denom, len(order))
	for i, di := range order {
		out[i] = Denom{reg: r, idx: di}
	}
	return out
}

// Count returns the number of registered currencies.
func (r *Registry) Count() int {
	return len(r.currencies)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNew(Builtin())
})

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry()
}

// CurrencyForSymbol looks sym up in the built-in registry.
func CurrencyForSymbol(sym string) (Currency, error) {
	return Default().CurrencyForSymbol(sym)
}

// DenomForSymbol looks sym up in the built-in registry.
func DenomForSymbol(cur Currency, sym string) (Denom, error) {
	return Default().DenomForSymbol(cur, sym)
}

// MustLookup resolves symbols in the built-in registry and panics if either is unknown.
// It is meant for static setup and tests.
func MustLookup(currencySym, denomSym string) Denom {
	_, d, err := Default().Lookup(currencySym, denomSym)
	if err != nil {
		panic(err)
	}
	return d
}
