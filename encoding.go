package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// Plain text is counted at 8 to 16 bits per symbol, the range of a one- or
// two-byte character encoding.
const (
	MinPlainBitsPerSymbol = 8
	MaxPlainBitsPerSymbol = 16
)

// Encoding holds a source text, its frequencies, and the Huffman code built
// for it.  The Tree and CodeMap are built by the first call to Encode and
// reused by every later call to Encode or Decode.
//
// An Encoding is safe for concurrent use.
type Encoding struct {
	text  string
	freqs FrequencyMap

	once  sync.Once
	built atomic.Bool
	tree  *Tree
	codes CodeMap
}

// New analyses text and returns an Encoding for it.
func New(text string) *Encoding {
	return &Encoding{
		text:  text,
		freqs: Analyze(text),
	}
}

// Text returns the source text.
func (e *Encoding) Text() string {
	return e.text
}

// Encode returns the source text as a string of ZeroBit and OneBit digits.
func (e *Encoding) Encode() (string, error) {
	e.build()
	return Encode(e.text, e.codes)
}

// Decode converts a bit string back into text, using the Tree built by
// Encode.  It fails with ErrNoTree if Encode has never been called.
func (e *Encoding) Decode(bits string) (string, error) {
	t := e.Tree()
	if t == nil {
		return "", &DecodeError{Offset: 0, Err: ErrNoTree}
	}
	return Decode(bits, t)
}

// Tree returns the Tree built by Encode, or nil if Encode has never been
// called.
func (e *Encoding) Tree() *Tree {
	if !e.isBuilt() {
		return nil
	}
	return e.tree
}

// Frequencies returns the frequency of each Symbol in ascending Symbol order.
func (e *Encoding) Frequencies() []SymbolFrequency {
	return e.freqs.Sorted()
}

// CodeMap returns the Code of each Symbol in ascending Symbol order.  It is
// empty until Encode has been called.
func (e *Encoding) CodeMap() []SymbolCode {
	if !e.isBuilt() {
		return []SymbolCode{}
	}
	return e.codes.Sorted()
}

// Stats summarizes the sizes of the plain and encoded text.
type Stats struct {
	// Symbols is the length of the text in symbols.
	Symbols int

	// Distinct is the number of distinct symbols.
	Distinct int

	// MinPlainBits and MaxPlainBits bound the size of the plain text.
	MinPlainBits int
	MaxPlainBits int

	// EncodedBits is the length of the encoded text.
	EncodedBits int

	// AverageCodeLen is the mean code length, weighted by frequency.
	AverageCodeLen float64
}

// Stats computes the Stats of this Encoding, building the code if needed.
func (e *Encoding) Stats() Stats {
	e.build()

	symbols := utf8.RuneCountInString(e.text)
	stats := Stats{
		Symbols:      symbols,
		Distinct:     len(e.freqs),
		MinPlainBits: MinPlainBitsPerSymbol * symbols,
		MaxPlainBits: MaxPlainBitsPerSymbol * symbols,
	}
	for _, item := range e.freqs.Sorted() {
		size := e.codes[item.Symbol].Len()
		stats.AverageCodeLen += item.Frequency * float64(size)
	}
	for _, ch := range e.text {
		stats.EncodedBits += e.codes[Symbol(ch)].Len()
	}
	return stats
}

// Dump writes a programmer-readable debugging dump of the Encoding's current
// state to the given writer.
func (e *Encoding) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoding{\n")
	fmt.Fprintf(&buf, "\tText() = %q\n", e.text)
	for _, item := range e.Frequencies() {
		fmt.Fprintf(&buf, "\tFrequency(%s) = %g\n", item.Symbol, item.Frequency)
	}
	if t := e.Tree(); t == nil {
		buf.WriteString("\tTree() = nil\n")
	} else {
		fmt.Fprintf(&buf, "\tTree() = %s\n", t)
	}
	for _, item := range e.CodeMap() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", item.Symbol, item.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (e *Encoding) build() {
	e.once.Do(func() {
		t := Build(e.freqs)
		e.codes = DeriveCodes(t)
		e.tree = t
		e.built.Store(true)
	})
}

func (e *Encoding) isBuilt() bool {
	return e.built.Load()
}
