package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"
)

// FrequencyMap maps each distinct Symbol of a text to its number of
// occurrences divided by the length of the text, in symbols.
type FrequencyMap map[Symbol]float64

// Analyze computes the FrequencyMap for text.  Invalid UTF-8 is analysed as
// utf8.RuneError, the same as ranging over the string.  The empty text yields
// an empty map.
func Analyze(text string) FrequencyMap {
	total := utf8.RuneCountInString(text)
	counts := make(map[Symbol]int)
	for _, ch := range text {
		counts[Symbol(ch)]++
	}

	out := make(FrequencyMap, len(counts))
	for symbol, count := range counts {
		out[symbol] = float64(count) / float64(total)
	}
	return out
}

// Sorted returns the entries of this map in ascending Symbol order.
func (fm FrequencyMap) Sorted() []SymbolFrequency {
	out := make([]SymbolFrequency, 0, len(fm))
	for symbol, freq := range fm {
		out = append(out, SymbolFrequency{symbol, freq})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Symbols returns the keys of this map in ascending Symbol order.
func (fm FrequencyMap) Symbols() []Symbol {
	out := make([]Symbol, 0, len(fm))
	for symbol := range fm {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// Sum returns the total of all frequencies.  For a map produced by Analyze on
// a non-empty text, this is 1.0 within floating point error.
func (fm FrequencyMap) Sum() float64 {
	var sum float64
	for _, item := range fm.Sorted() {
		sum += item.Frequency
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of this map to the given
// writer.
func (fm FrequencyMap) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyMap{\n")
	for _, item := range fm.Sorted() {
		fmt.Fprintf(&buf, "\t%s: %g\n", item.Symbol, item.Frequency)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
