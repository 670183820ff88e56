package currency

import "github.com/amirasaad/cryptomath/pkg/currency"

// CurrencyResponse is a currency with its denominations.
type CurrencyResponse struct {
	Symbol        string               `json:"symbol"`
	Name          string               `json:"name"`
	Primary       string               `json:"primary"`
	Denominations []currency.DenomMeta `json:"denominations"`
}

// ToResponse converts a registry currency to its response DTO.
func ToResponse(reg *currency.Registry, cur currency.Currency) CurrencyResponse {
	return CurrencyResponse{
		Symbol:        cur.Symbol(),
		Name:          cur.Name(),
		Primary:       cur.Primary().Symbol(),
		Denominations: denoms(reg, cur),
	}
}

func denoms(reg *currency.Registry, cur currency.Currency) []currency.DenomMeta {
	ds := reg.DenomsOf(cur)
	out := make([]currency.DenomMeta, len(ds))
	for i, d := range ds {
		out[i] = d.Meta()
	}
	return out
}
