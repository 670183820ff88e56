package currency

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout accepted by Load.
//
//	currencies:
//	  - symbol: BTC
//	    name: Bitcoin
//	    denominations:
//	      - {symbol: BTC, name: Bitcoin, decimals: 8}
//	      - {symbol: SAT, name: Satoshi, decimals: 0}
type File struct {
	Currencies []Definition `yaml:"currencies"`
}

// Load reads a YAML registry definition from r.
func Load(r io.Reader) (*Registry, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	return New(f.Currencies)
}

// LoadFile reads a YAML registry definition from path.
func LoadFile(path string) (*Registry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry file: %w", err)
	}
	defer fh.Close() //nolint:errcheck
	return Load(fh)
}
