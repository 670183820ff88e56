// Package decimal parses and formats decimal strings as exact integers
// scaled to a fixed number of decimal places.
//
// Accepted text is: optional ASCII whitespace, an optional '+' or '-',
// digits with at most one '.', and optional trailing whitespace. At least one
// digit must appear on one side of the point. Exponents, grouping separators
// and embedded whitespace are rejected.
package decimal

import (
	"errors"
	"fmt"
)

// ErrInvalidDecimal is wrapped by every ParseError.
var ErrInvalidDecimal = errors.New("invalid decimal")

// ParseError describes malformed decimal text.
type ParseError struct {
	Input  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid decimal %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidDecimal }

// Parts holds the components of a decimal string without any scaling.
// Whole and Frac contain only ASCII digits; either may be empty, not both.
type Parts struct {
	Negative bool
	Whole    string
	Frac     string
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// Parse validates text and splits it into sign, whole and fraction digits.
func Parse(text string) (Parts, error) {
	var p Parts
	i, n := 0, len(text)
	for i < n && isSpace(text[i]) {
		i++
	}
	if i < n && (text[i] == '+' || text[i] == '-') {
		p.Negative = text[i] == '-'
		i++
	}

	start := i
	for i < n && isDigit(text[i]) {
		i++
	}
	p.Whole = text[start:i]

	if i < n && text[i] == '.' {
		i++
		start = i
		for i < n && isDigit(text[i]) {
			i++
		}
		p.Frac = text[start:i]
	}

	if p.Whole == "" && p.Frac == "" {
		return Parts{}, &ParseError{Input: text, Offset: i, Reason: "no digits"}
	}
	for j := i; j < n; j++ {
		if !isSpace(text[j]) {
			return Parts{}, &ParseError{Input: text, Offset: j, Reason: fmt.Sprintf("unexpected character %q", text[j])}
		}
	}
	return p, nil
}

// IsValid reports whether text is a well-formed decimal.
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}
