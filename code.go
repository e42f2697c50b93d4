package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// The two digits of a Code.  ZeroBit follows the right branch of a Tree and
// OneBit follows the left branch.
const (
	ZeroBit = '0'
	OneBit  = '1'
)

// Code represents a sequence of bits, written as a string of ZeroBit and
// OneBit digits.  The first digit is the branch taken at the root.
type Code string

// MakeCode constructs a Code from a string of binary digits.
func MakeCode(digits string) (Code, error) {
	if i := strings.IndexFunc(digits, notBinaryDigit); i >= 0 {
		return "", fmt.Errorf("huffman: invalid digit %q at index %d in code %q", digits[i], i, digits)
	}
	return Code(digits), nil
}

// MustMakeCode is like MakeCode, but panics on error.
func MustMakeCode(digits string) Code {
	hc, err := MakeCode(digits)
	if err != nil {
		panic(err)
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Append returns this Code extended by one digit.
func (hc Code) Append(bit byte) Code {
	return hc + Code(bit)
}

// IsPrefixOf returns true iff this Code is a (non-strict) prefix of other.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

// GoString returns a Go expression that reconstructs this Code.
func (hc Code) GoString() string {
	return "huffman.MustMakeCode(" + hc.String() + ")"
}

var (
	_ fmt.Stringer   = Code("")
	_ fmt.GoStringer = Code("")
)

func notBinaryDigit(r rune) bool {
	return r != ZeroBit && r != OneBit
}
