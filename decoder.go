package huffman

import (
	"errors"
	"fmt"
	"strings"
)

// Errors matched by a *DecodeError.
var (
	ErrNoTree     = errors.New("huffman: no tree available")
	ErrInvalidBit = errors.New("huffman: bit is neither '0' nor '1'")
	ErrNoBranch   = errors.New("huffman: no branch for bit")
	ErrTruncated  = errors.New("huffman: bit string ends inside a code")
)

// DecodeError is returned by Decode when the bit string cannot be decoded.
type DecodeError struct {
	// Offset is the index of the offending bit.  For ErrTruncated, it is
	// the index of the first bit of the incomplete code.
	Offset int

	// Err is one of ErrNoTree, ErrInvalidBit, ErrNoBranch, or ErrTruncated.
	Err error
}

// Error fulfills the error interface.
func (err *DecodeError) Error() string {
	return fmt.Sprintf("%v at bit %d", err.Err, err.Offset)
}

// Unwrap returns the underlying cause.
func (err *DecodeError) Unwrap() error {
	return err.Err
}

var _ error = (*DecodeError)(nil)

// Decode walks the Tree once per bit, following the right child on ZeroBit
// and the left child on OneBit, and emits a Symbol each time it reaches a leaf.
// The bit string must end exactly on a leaf.
//
// A Tree whose root is a leaf decodes each ZeroBit as its only Symbol, which
// is the inverse of DeriveCodes for that case.
//
// Decoding the empty string against an empty Tree yields the empty string.
// A nil Tree, or any bits against an empty Tree, fails with ErrNoTree.
//
func Decode(bits string, t *Tree) (string, error) {
	if t == nil {
		return "", &DecodeError{Offset: 0, Err: ErrNoTree}
	}

	root := t.root
	if root == nil {
		if len(bits) == 0 {
			return "", nil
		}
		return "", &DecodeError{Offset: 0, Err: ErrNoTree}
	}

	var buf strings.Builder
	cursor := root
	start := 0
	for index := 0; index < len(bits); index++ {
		bit := bits[index]
		if bit != ZeroBit && bit != OneBit {
			return "", &DecodeError{Offset: index, Err: ErrInvalidBit}
		}

		if cursor.IsLeaf() {
			if bit != ZeroBit {
				return "", &DecodeError{Offset: index, Err: ErrNoBranch}
			}
			buf.WriteRune(rune(cursor.symbol))
			start = index + 1
			continue
		}

		if bit == ZeroBit {
			cursor = cursor.right
		} else {
			cursor = cursor.left
		}

		if cursor.IsLeaf() {
			buf.WriteRune(rune(cursor.symbol))
			cursor = root
			start = index + 1
		}
	}

	if start != len(bits) {
		return "", &DecodeError{Offset: start, Err: ErrTruncated}
	}
	return buf.String(), nil
}
