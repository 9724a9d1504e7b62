// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package baseconv

// DefaultAlphabet is the symbol set used by NewRadix and the named bases.
// Its 66 symbols are the RFC 3986 unreserved characters, so every radix
// taken from it produces URL-safe output.
const DefaultAlphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"-._~"

// MaxDefaultRadix is the largest radix NewRadix accepts.
const MaxDefaultRadix = len(DefaultAlphabet)

const asciiLimit = 128

// symbolTable maps alphabet symbols back to their digit values.
// ASCII symbols, by far the common case, are resolved through an array.
type symbolTable struct {
	ascii [asciiLimit]int32
	other map[rune]int
}

func newSymbolTable(symbols []rune) (*symbolTable, error) {
	t := &symbolTable{}
	for i := range t.ascii {
		t.ascii[i] = -1
	}

	for i, r := range symbols {
		if _, ok := t.lookup(r); ok {
			return nil, &SymbolError{Err: ErrDuplicateSymbol, Symbol: r, Position: i}
		}

		if r >= 0 && r < asciiLimit {
			t.ascii[r] = int32(i) // nolint:gosec // G115, bounded by len(symbols)
			continue
		}

		if t.other == nil {
			t.other = make(map[rune]int)
		}
		t.other[r] = i
	}

	return t, nil
}

func (t *symbolTable) lookup(r rune) (int, bool) {
	if r >= 0 && r < asciiLimit {
		d := t.ascii[r]

		return int(d), d >= 0
	}
	d, ok := t.other[r]

	return d, ok
}
