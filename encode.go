// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package baseconv

import (
	"fmt"
	"math/big"
)

// EncodeInt returns the representation of n in the Converter's base,
// most significant symbol first. Zero encodes as the first alphabet symbol.
func (c *Converter) EncodeInt(n *big.Int) (string, error) {
	switch {
	case n == nil:
		return "", ErrNilNumber
	case n.Sign() < 0:
		return "", ErrNegativeNumber
	default:
		return c.encode(n), nil
	}
}

// EncodeUint64 is the fixed-width fast path of EncodeInt. Both return the
// same string for the same value.
func (c *Converter) EncodeUint64(v uint64) string {
	if v == 0 {
		return string(c.alphabet[0])
	}

	// 64 digits is enough for the smallest radix.
	var buf [64]rune
	i := len(buf)
	radix := uint64(c.radix)
	for v > 0 {
		i--
		buf[i] = c.alphabet[v%radix]
		v /= radix
	}

	return string(buf[i:])
}

// EncodeBytes encodes b read as an unsigned big-endian integer. Leading zero
// bytes do not contribute to the value, so they are not preserved.
func (c *Converter) EncodeBytes(b []byte) string {
	return c.encode(new(big.Int).SetBytes(b))
}

// Encode accepts any Go integer type or a *big.Int.
func (c *Converter) Encode(n any) (string, error) {
	switch v := n.(type) {
	case *big.Int:
		return c.EncodeInt(v)
	case big.Int:
		return c.EncodeInt(&v)
	case int:
		return c.encodeInt64(int64(v))
	case int8:
		return c.encodeInt64(int64(v))
	case int16:
		return c.encodeInt64(int64(v))
	case int32:
		return c.encodeInt64(int64(v))
	case int64:
		return c.encodeInt64(v)
	case uint:
		return c.EncodeUint64(uint64(v)), nil
	case uint8:
		return c.EncodeUint64(uint64(v)), nil
	case uint16:
		return c.EncodeUint64(uint64(v)), nil
	case uint32:
		return c.EncodeUint64(uint64(v)), nil
	case uint64:
		return c.EncodeUint64(v), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedNumber, n)
	}
}

func (c *Converter) encodeInt64(v int64) (string, error) {
	if v < 0 {
		return "", ErrNegativeNumber
	}

	return c.EncodeUint64(uint64(v)), nil
}

// encode expects n >= 0 and leaves it unmodified.
func (c *Converter) encode(n *big.Int) string {
	if n.Sign() == 0 {
		return string(c.alphabet[0])
	}

	num := new(big.Int).Set(n)
	remainder := new(big.Int)
	digits := make([]rune, 0, int(float64(n.BitLen())/c.bitsPer)+1)
	for num.Sign() > 0 {
		num.DivMod(num, c.bigRadix, remainder)
		digits = append(digits, c.alphabet[remainder.Int64()])
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}
