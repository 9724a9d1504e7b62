// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package baseconv

import "sync"

// registry holds one shared Converter per DefaultAlphabet radix.
var registry sync.Map // map[int]*Converter

var (
	base10 = sync.OnceValue(func() *Converter { return mustRadix(10) })
	base16 = sync.OnceValue(func() *Converter { return mustRadix(16) })
	base36 = sync.OnceValue(func() *Converter { return mustRadix(36) })
	base62 = sync.OnceValue(func() *Converter { return mustRadix(62) })
)

// Base10 returns the shared decimal Converter.
func Base10() *Converter { return base10() }

// Base16 returns the shared upper-case hexadecimal Converter.
func Base16() *Converter { return base16() }

// Base36 returns the shared Converter over 0-9A-Z.
func Base36() *Converter { return base36() }

// Base62 returns the shared Converter over 0-9A-Za-z.
func Base62() *Converter { return base62() }

// ForRadix returns the shared Converter for radix, creating it on first use.
// Concurrent first calls may each build a Converter, but all callers observe
// the same stored instance.
func ForRadix(radix int) (*Converter, error) {
	if c, ok := registry.Load(radix); ok {
		return c.(*Converter), nil //nolint:forcetypeassert
	}

	c, err := NewRadix(radix)
	if err != nil {
		return nil, err
	}

	actual, _ := registry.LoadOrStore(radix, c)

	return actual.(*Converter), nil //nolint:forcetypeassert
}

func mustRadix(radix int) *Converter {
	c, err := ForRadix(radix)
	if err != nil {
		panic(err)
	}

	return c
}
