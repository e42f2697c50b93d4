package huffman

import (
	"strconv"
	"unicode"
)

// Symbol represents a single Unicode code point of the source text.  Negative
// symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is carried by internal tree nodes and returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is a code point.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the quoted character for this Symbol.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "<invalid>"
	}
	return strconv.QuoteRune(rune(s))
}

// SymbolFrequency pairs a Symbol with its normalized frequency.
type SymbolFrequency struct {
	Symbol    Symbol
	Frequency float64
}

// SymbolCode pairs a Symbol with its assigned Code.
type SymbolCode struct {
	Symbol Symbol
	Code   Code
}
