// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package baseconv converts arbitrary-precision non-negative integers and
// big-endian byte strings to and from positional notation over a
// caller-supplied alphabet.
package baseconv

import (
	"fmt"
	"math"
	"math/big"
	"unicode/utf8"
)

// Converter encodes and decodes values in the base defined by its alphabet.
// A Converter is immutable after construction and safe for concurrent use.
type Converter struct {
	alphabet []rune
	radix    int
	bigRadix *big.Int
	bitsPer  float64 // log2(radix)
	table    *symbolTable
}

// New creates a Converter whose digits are the runes of alphabet, in order.
// The alphabet must hold at least two distinct symbols.
func New(alphabet string) (*Converter, error) {
	if !utf8.ValidString(alphabet) {
		return nil, ErrInvalidAlphabet
	}

	symbols := []rune(alphabet)
	if len(symbols) < 2 {
		return nil, fmt.Errorf("%w: got %d symbols", ErrRadixTooSmall, len(symbols))
	}

	table, err := newSymbolTable(symbols)
	if err != nil {
		return nil, err
	}

	return &Converter{
		alphabet: symbols,
		radix:    len(symbols),
		bigRadix: big.NewInt(int64(len(symbols))),
		bitsPer:  math.Log2(float64(len(symbols))),
		table:    table,
	}, nil
}

// NewRadix creates a Converter using the first radix symbols of DefaultAlphabet.
func NewRadix(radix int) (*Converter, error) {
	switch {
	case radix > MaxDefaultRadix:
		return nil, fmt.Errorf("%w: %d > %d", ErrRadixTooLarge, radix, MaxDefaultRadix)
	case radix < 2:
		return nil, fmt.Errorf("%w: got %d", ErrRadixTooSmall, radix)
	default:
		return New(DefaultAlphabet[:radix])
	}
}

// Alphabet returns the symbols of the Converter in digit order.
func (c *Converter) Alphabet() string {
	return string(c.alphabet)
}

// Radix returns the number of symbols in the alphabet.
func (c *Converter) Radix() int {
	return c.radix
}

// EncodedLen returns the length of the longest encoding of a size-byte value.
func (c *Converter) EncodedLen(size int) int {
	if size <= 0 {
		return 1
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(size)*8) // nolint:gosec // G115
	pow := big.NewInt(1)
	n := 0
	for pow.Cmp(limit) < 0 {
		pow.Mul(pow, c.bigRadix)
		n++
	}

	return n
}
