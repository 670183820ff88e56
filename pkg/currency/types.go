package currency

// Currency identifies a cryptocurrency family within a Registry.
// The zero value is not a valid currency.
type Currency struct {
	reg *Registry
	idx int
}

// IsValid reports whether c was obtained from a registry.
func (c Currency) IsValid() bool { return c.reg != nil }

// Symbol returns the ticker symbol, e.g. "BTC".
func (c Currency) Symbol() string {
	if c.reg == nil {
		return ""
	}
	return c.reg.currencies[c.idx].Symbol
}

// Name returns the display name, e.g. "Bitcoin".
func (c Currency) Name() string {
	if c.reg == nil {
		return ""
	}
	return c.reg.currencies[c.idx].Name
}

// Meta returns the listing form of c.
func (c Currency) Meta() CurrencyMeta {
	return CurrencyMeta{Symbol: c.Symbol(), Name: c.Name()}
}

// Denom returns the denomination of c registered under sym.
func (c Currency) Denom(sym string) (Denom, error) {
	if c.reg == nil {
		return Denom{}, ErrUnknownCurrency
	}
	return c.reg.DenomForSymbol(c, sym)
}

// Primary returns the first denomination defined for c, the one that shares
// its symbol in the built-in registry (BTC for Bitcoin).
func (c Currency) Primary() Denom {
	if c.reg == nil {
		return Denom{}
	}
	return Denom{reg: c.reg, idx: c.reg.denomOrder[c.idx][0]}
}

func (c Currency) String() string {
	if c.reg == nil {
		return "<invalid currency>"
	}
	return c.Symbol()
}

// Denom identifies one unit of a Currency.
// The zero value is not a valid denomination.
type Denom struct {
	reg *Registry
	idx int
}

// IsValid reports whether d was obtained from a registry.
func (d Denom) IsValid() bool { return d.reg != nil }

// Currency returns the currency d belongs to.
func (d Denom) Currency() Currency {
	if d.reg == nil {
		return Currency{}
	}
	return Currency{reg: d.reg, idx: d.reg.denoms[d.idx].currency}
}

// Symbol returns the denomination symbol, e.g. "GWEI".
func (d Denom) Symbol() string {
	if d.reg == nil {
		return ""
	}
	return d.reg.denoms[d.idx].meta.Symbol
}

// Name returns the display name, e.g. "Gwei".
func (d Denom) Name() string {
	if d.reg == nil {
		return ""
	}
	return d.reg.denoms[d.idx].meta.Name
}

// Decimals returns the number of decimal places between one unit of d
// and the smallest unit of its currency.
func (d Denom) Decimals() uint8 {
	if d.reg == nil {
		return 0
	}
	return d.reg.denoms[d.idx].meta.Decimals
}

// Meta returns the listing form of d.
func (d Denom) Meta() DenomMeta {
	if d.reg == nil {
		return DenomMeta{}
	}
	return d.reg.denoms[d.idx].meta
}

func (d Denom) String() string {
	if d.reg == nil {
		return "<invalid denomination>"
	}
	return d.Symbol()
}
