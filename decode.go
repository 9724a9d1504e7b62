// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package baseconv

import (
	"fmt"
	"math/big"
	"math/bits"
	"unicode/utf8"
)

// DecodeInt parses s as a number in the Converter's base. The whole input is
// validated before any arithmetic, so an unknown symbol never yields a
// partial value.
func (c *Converter) DecodeInt(s string) (*big.Int, error) {
	digits, err := c.digits(s)
	if err != nil {
		return nil, err
	}

	n := new(big.Int)
	d := new(big.Int)
	for _, digit := range digits {
		n.Mul(n, c.bigRadix)
		n.Add(n, d.SetInt64(int64(digit)))
	}

	return n, nil
}

// DecodeUint64 is the fixed-width fast path of DecodeInt.
func (c *Converter) DecodeUint64(s string) (uint64, error) {
	digits, err := c.digits(s)
	if err != nil {
		return 0, err
	}

	var n uint64
	radix := uint64(c.radix)
	for _, digit := range digits {
		hi, lo := bits.Mul64(n, radix)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}

		var carry uint64
		if n, carry = bits.Add64(lo, uint64(digit), 0); carry != 0 {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
	}

	return n, nil
}

// DecodeBytes decodes s and returns the minimal signed big-endian form of the
// value: a zero byte is prepended only when the top bit of the first byte is
// set, and zero decodes to a single zero byte.
//
// The result is not guaranteed to match the length of the bytes given to
// EncodeBytes. Input with more leading zero bytes than that comes back
// shorter. Use DecodeBytesSize when the width is known.
func (c *Converter) DecodeBytes(s string) ([]byte, error) {
	n, err := c.DecodeInt(s)
	if err != nil {
		return nil, err
	}

	b := n.Bytes()
	if len(b) == 0 || b[0]&0x80 != 0 {
		return append([]byte{0}, b...), nil
	}

	return b, nil
}

// DecodeBytesSize decodes s into exactly size bytes, left padded with zeros.
func (c *Converter) DecodeBytesSize(s string, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	n, err := c.DecodeInt(s)
	if err != nil {
		return nil, err
	}

	if need := (n.BitLen() + 7) / 8; need > size {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrValueTooLarge, need, size)
	}

	return n.FillBytes(make([]byte, size)), nil
}

func (c *Converter) digits(s string) ([]int, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}

	digits := make([]int, 0, len(s))
	for i, r := range s {
		d, ok := c.table.lookup(r)
		if r == utf8.RuneError {
			// Invalid UTF-8 bytes also range as U+FFFD.
			if _, width := utf8.DecodeRuneInString(s[i:]); width == 1 {
				ok = false
			}
		}
		if !ok {
			return nil, &SymbolError{Err: ErrUnknownSymbol, Symbol: r, Position: len(digits)}
		}
		digits = append(digits, d)
	}

	return digits, nil
}
