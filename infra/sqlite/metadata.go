package sqlite

import "github.com/amirasaad/cryptomath/pkg/currency"

const (
	typesTable  = "crypto_types"
	denomsTable = "crypto_denoms"

	typesDecl  = "symbol TEXT, name TEXT"
	denomsDecl = "symbol TEXT, name TEXT, crypto_symbol TEXT, decimals INTEGER"
)

// metadataRows returns the contents of crypto_types and crypto_denoms.
func metadataRows(reg *currency.Registry) (types, denoms [][]any) {
	for _, c := range reg.Currencies() {
		types = append(types, []any{c.Symbol, c.Name})
	}
	for _, d := range reg.Denoms() {
		denoms = append(denoms, []any{d.Symbol, d.Name, d.Currency, int64(d.Decimals)})
	}
	return types, denoms
}
