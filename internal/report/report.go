// Package report prints the tables and size summary of a huffman.Encoding
// for people to read.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	huffman "github.com/chronos-tachyon/huffstring"
)

// Frequencies writes one "symbol --> frequency" line per entry.
func Frequencies(w io.Writer, list []huffman.SymbolFrequency) error {
	for _, item := range list {
		if _, err := fmt.Fprintf(w, "%s --> %g\n", item.Symbol, item.Frequency); err != nil {
			return err
		}
	}
	return nil
}

// Codes writes one "symbol --> code" line per entry.
func Codes(w io.Writer, list []huffman.SymbolCode) error {
	for _, item := range list {
		if _, err := fmt.Fprintf(w, "%s --> %s\n", item.Symbol, string(item.Code)); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the original and encoded text along with their sizes.
// Numbers are grouped in thousands.
func Summary(w io.Writer, text string, encoded string, stats huffman.Stats) error {
	p := message.NewPrinter(language.English)
	lines := []string{
		p.Sprintf("Original text: %s\n", text),
		p.Sprintf("Original text length: %d - %d bits\n", stats.MinPlainBits, stats.MaxPlainBits),
		"\n",
		p.Sprintf("Encoded text: %s\n", encoded),
		p.Sprintf("Encoded text length: %d\n", stats.EncodedBits),
		p.Sprintf("Average code length: %.3f bits per symbol\n", stats.AverageCodeLen),
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
