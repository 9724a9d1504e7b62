// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package baseconv

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSymbol indicates an alphabet that contains the same symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")
	// ErrUnknownSymbol indicates a decode input symbol that is not part of the alphabet.
	ErrUnknownSymbol = errors.New("symbol not found in alphabet")
	// ErrRadixTooLarge is returned by NewRadix when the radix exceeds len(DefaultAlphabet).
	ErrRadixTooLarge = errors.New("radix exceeds default alphabet, use New with an explicit alphabet")
	// ErrRadixTooSmall is returned for alphabets of fewer than two symbols.
	ErrRadixTooSmall = errors.New("radix must be at least 2")
	// ErrInvalidAlphabet is returned for alphabets that are not valid UTF-8.
	ErrInvalidAlphabet = errors.New("alphabet is not valid UTF-8")
	// ErrNegativeNumber is returned when encoding a value below zero.
	ErrNegativeNumber = errors.New("negative numbers cannot be encoded")
	// ErrNilNumber is returned when encoding a nil *big.Int.
	ErrNilNumber = errors.New("nil number")
	// ErrUnsupportedNumber is returned by Encode for values that are not integers.
	ErrUnsupportedNumber = errors.New("only integral numbers are supported")
	// ErrEmptyInput is returned when decoding an empty string.
	ErrEmptyInput = errors.New("empty input")
	// ErrOverflow is returned by DecodeUint64 when the value needs more than 64 bits.
	ErrOverflow = errors.New("value overflows uint64")
	// ErrValueTooLarge is returned by DecodeBytesSize when the value needs more bytes than requested.
	ErrValueTooLarge = errors.New("value does not fit in requested size")
	// ErrInvalidSize is returned by DecodeBytesSize for a negative size.
	ErrInvalidSize = errors.New("size must not be negative")
)

// SymbolError reports the symbol responsible for a failed construction or decode.
// It unwraps to ErrDuplicateSymbol or ErrUnknownSymbol.
type SymbolError struct {
	Err      error
	Symbol   rune
	Position int // rune index within the alphabet or the decoded string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", e.Err, e.Symbol, e.Position)
}

func (e *SymbolError) Unwrap() error {
	return e.Err
}
