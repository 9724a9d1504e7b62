// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package baseconv

import (
	"math/big"
	"testing"

	"github.com/eknkc/basex"
	"github.com/pion/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 32 random key bytes with the zero sign byte in front.
var keyFixture = []byte{ //nolint:gochecknoglobals
	0, 140, 211, 130, 114, 210, 32, 198, 33, 103,
	234, 210, 77, 254, 223, 173, 74, 77, 91, 17, 189,
	40, 167, 5, 19, 233, 74, 78, 251, 20, 215, 24, 19,
}

const keyFixtureBase62 = "XORQQbLbgsORu2g7KpTAMGXW7mTQTBWJYWJsFF7ZYDj"

func TestBytesFixture(t *testing.T) {
	assert.Equal(t, keyFixtureBase62, Base62().EncodeBytes(keyFixture))

	decoded, err := Base62().DecodeBytes(keyFixtureBase62)
	require.NoError(t, err)
	assert.Equal(t, keyFixture, decoded)
	assert.Equal(t, keyFixtureBase62, Base62().EncodeBytes(decoded))
}

func TestBase36Bytes(t *testing.T) {
	for _, tt := range []struct {
		name     string
		input    []byte
		expected string
		decoded  []byte
	}{
		{
			name:     "empty input",
			input:    []byte{},
			expected: "0",
			decoded:  []byte{0},
		},
		{
			name:     "zero byte",
			input:    []byte{0},
			expected: "0",
			decoded:  []byte{0},
		},
		{
			name:     "single byte - 1",
			input:    []byte{1},
			expected: "1",
			decoded:  []byte{1},
		},
		{
			name:     "single byte - 35",
			input:    []byte{35},
			expected: "Z",
			decoded:  []byte{35},
		},
		{
			name:     "single byte - 36",
			input:    []byte{36},
			expected: "10",
			decoded:  []byte{36},
		},
		{
			name:     "single byte - 255 gains a sign byte",
			input:    []byte{255},
			expected: "73",
			decoded:  []byte{0, 255},
		},
		{
			name:     "multiple bytes - hello",
			input:    []byte("hello"),
			expected: "5PZCSZU7",
			decoded:  []byte("hello"),
		},
		{
			name:     "multiple bytes - test",
			input:    []byte("test"),
			expected: "WANEK4",
			decoded:  []byte("test"),
		},
		{
			name:     "complex text",
			input:    []byte("long_complexTeXT wITH_space"),
			expected: "6XMY2Y5EIZEF867E5LXYHH2OVVURC1A852VPOAZP0L",
			decoded:  []byte("long_complexTeXT wITH_space"),
		},
		{
			name:     "leading zero bytes are dropped",
			input:    []byte{0, 0, 0, 7},
			expected: "7",
			decoded:  []byte{7},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Base36().EncodeBytes(tt.input)
			assert.Equal(t, tt.expected, encoded)

			decoded, err := Base36().DecodeBytes(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.decoded, decoded)

			sized, err := Base36().DecodeBytesSize(encoded, len(tt.input))
			if len(tt.input) == 0 {
				require.NoError(t, err)
				assert.Empty(t, sized)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, sized)
		})
	}
}

func TestDecodeBytesSize(t *testing.T) {
	t.Run("restores leading zeros", func(t *testing.T) {
		input := []byte{0, 0, 0, 1, 2, 3}
		encoded := Base62().EncodeBytes(input)

		decoded, err := Base62().DecodeBytes(encoded)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, decoded)

		sized, err := Base62().DecodeBytesSize(encoded, len(input))
		require.NoError(t, err)
		assert.Equal(t, input, sized)
	})

	t.Run("zero value", func(t *testing.T) {
		sized, err := Base62().DecodeBytesSize("0", 4)
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 0, 0, 0}, sized)
	})

	t.Run("too small", func(t *testing.T) {
		_, err := Base16().DecodeBytesSize("10000", 2)
		assert.ErrorIs(t, err, ErrValueTooLarge)

		sized, err := Base16().DecodeBytesSize("FFFF", 2)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xff}, sized)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := Base16().DecodeBytesSize("1", -1)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := Base16().DecodeBytesSize("1G", 4)
		assert.ErrorIs(t, err, ErrUnknownSymbol)
	})
}

func TestRoundTripRandom(t *testing.T) {
	rng := randutil.NewMathRandomGenerator()

	for radix := 2; radix <= MaxDefaultRadix; radix++ {
		c, err := ForRadix(radix)
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			value := randomBytes(rng, 1+rng.Intn(64))
			n := new(big.Int).SetBytes(value)

			encoded, err := c.EncodeInt(n)
			require.NoError(t, err)
			decoded, err := c.DecodeInt(encoded)
			require.NoError(t, err)
			assert.Zero(t, n.Cmp(decoded), "radix %d value %x", radix, value)

			again, err := c.EncodeInt(decoded)
			require.NoError(t, err)
			assert.Equal(t, encoded, again)

			sized, err := c.DecodeBytesSize(c.EncodeBytes(value), len(value))
			require.NoError(t, err)
			assert.Equal(t, value, sized)

			small := rng.Uint64()
			assert.Equal(t, c.EncodeUint64(small), c.encode(new(big.Int).SetUint64(small)))
			fast, err := c.DecodeUint64(c.EncodeUint64(small))
			require.NoError(t, err)
			assert.Equal(t, small, fast)
		}
	}
}

func TestEncodeBytesMatchesBaseX(t *testing.T) {
	rng := randutil.NewMathRandomGenerator()

	for _, alphabet := range []string{
		DefaultAlphabet[:16],
		DefaultAlphabet[:58],
		DefaultAlphabet[:62],
		DefaultAlphabet,
	} {
		c, err := New(alphabet)
		require.NoError(t, err)
		oracle, err := basex.NewEncoding(alphabet)
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			value := randomBytes(rng, 1+rng.Intn(48))
			// basex keeps leading zero bytes as extra zero symbols.
			if value[0] == 0 {
				value[0] = 1
			}
			assert.Equal(t, oracle.Encode(value), c.EncodeBytes(value), "alphabet %q value %x", alphabet, value)
		}
	}
}

func randomBytes(rng randutil.MathRandomGenerator, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Uint32())
	}

	return b
}
