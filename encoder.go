package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// ErrNoCode is matched by a *LookupError.
var ErrNoCode = errors.New("huffman: no code for symbol")

// LookupError is returned by Encode when the text contains a Symbol that has
// no entry in the CodeMap.
type LookupError struct {
	// Symbol is the Symbol that was not found.
	Symbol Symbol

	// Offset is the position of Symbol in the text, counted in symbols.
	Offset int
}

// Error fulfills the error interface.
func (err *LookupError) Error() string {
	return fmt.Sprintf("%v %s at offset %d", ErrNoCode, err.Symbol, err.Offset)
}

// Unwrap returns ErrNoCode.
func (err *LookupError) Unwrap() error {
	return ErrNoCode
}

var _ error = (*LookupError)(nil)

// CodeMap maps each Symbol to its Code.
type CodeMap map[Symbol]Code

// DeriveCodes assigns a Code to every leaf of the Tree.  Each Code is the path
// from the root to the leaf: ZeroBit for every right branch and OneBit for
// every left branch.
//
// A Tree whose root is a leaf has only one Symbol.  That Symbol gets the
// one-bit Code "0" rather than the empty Code, so that every encoded Symbol
// consumes at least one bit.  An empty Tree yields an empty CodeMap.
//
func DeriveCodes(t *Tree) CodeMap {
	codes := make(CodeMap, t.NumSymbols())
	t.walk(func(n *Node, path Code) {
		if !n.IsLeaf() {
			return
		}
		if path.Len() == 0 {
			path = path.Append(ZeroBit)
		}
		codes[n.symbol] = path
	})
	assert.Assertf(len(codes) == t.NumSymbols(), "derived %d codes for %d symbols", len(codes), t.NumSymbols())
	return codes
}

// Encode concatenates the Code of each Symbol of text, in order.  If any
// Symbol has no Code, Encode returns a *LookupError and no output.
func Encode(text string, codes CodeMap) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))
	offset := 0
	for _, ch := range text {
		hc, found := codes[Symbol(ch)]
		if !found {
			return "", &LookupError{Symbol: Symbol(ch), Offset: offset}
		}
		buf.WriteString(string(hc))
		offset++
	}
	return buf.String(), nil
}

// Sorted returns the entries of this map in ascending Symbol order.
func (cm CodeMap) Sorted() []SymbolCode {
	out := make([]SymbolCode, 0, len(cm))
	for symbol, hc := range cm {
		out = append(out, SymbolCode{symbol, hc})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// MinSize is the bit length of the shortest Code, or 0 if the map is empty.
func (cm CodeMap) MinSize() int {
	var min int
	for _, hc := range cm {
		if min == 0 || hc.Len() < min {
			min = hc.Len()
		}
	}
	return min
}

// MaxSize is the bit length of the longest Code, or 0 if the map is empty.
func (cm CodeMap) MaxSize() int {
	var max int
	for _, hc := range cm {
		if hc.Len() > max {
			max = hc.Len()
		}
	}
	return max
}

// IsPrefixFree returns true iff no Code in the map is a prefix of any other
// Code in the map.  Duplicate Codes are not prefix-free.
func (cm CodeMap) IsPrefixFree() bool {
	list := make([]string, 0, len(cm))
	for _, hc := range cm {
		list = append(list, string(hc))
	}
	sort.Strings(list)

	// In lexicographic order, a Code that prefixes any later Code also
	// prefixes its immediate successor.
	for i := 1; i < len(list); i++ {
		if strings.HasPrefix(list[i], list[i-1]) {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the map to the given
// writer.
func (cm CodeMap) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeMap{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cm.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cm.MaxSize())
	for _, item := range cm.Sorted() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", item.Symbol, item.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
