// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package keygen generates random keys and identifiers as compact
// baseconv tokens, and parses them back without losing leading zero bytes.
package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pion/baseconv"
	"github.com/pion/logging"
	"github.com/pion/randutil"
)

const defaultKeySize = 32

var (
	errInvalidKeySize   = errors.New("key size must be positive")
	errFailedToReadKey  = errors.New("failed to read random key")
	errFailedToParseKey = errors.New("failed to parse key")
)

// Config configures a Generator.
type Config struct {
	// Size of generated keys in bytes. Defaults to 32.
	Size int

	// Converter encodes the keys. Defaults to baseconv.Base62().
	Converter *baseconv.Converter

	// Reader is the source of key bytes. Defaults to crypto/rand.Reader.
	Reader io.Reader

	LoggerFactory logging.LoggerFactory
}

// Key is a generated key together with its token form.
type Key struct {
	Bytes []byte
	Token string
}

// Generator produces fixed-size random keys.
type Generator struct {
	size   int
	conv   *baseconv.Converter
	reader io.Reader
	log    logging.LeveledLogger
}

// New creates a Generator from config.
func New(config Config) (*Generator, error) {
	switch {
	case config.Size < 0:
		return nil, fmt.Errorf("%w: got %d", errInvalidKeySize, config.Size)
	case config.Size == 0:
		config.Size = defaultKeySize
	}

	if config.Converter == nil {
		config.Converter = baseconv.Base62()
	}
	if config.Reader == nil {
		config.Reader = rand.Reader
	}
	if config.LoggerFactory == nil {
		config.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	g := &Generator{
		size:   config.Size,
		conv:   config.Converter,
		reader: config.Reader,
		log:    config.LoggerFactory.NewLogger("keygen"),
	}
	g.log.Debugf("%d byte keys in radix %d, up to %d symbols", g.size, g.conv.Radix(), g.TokenLen())

	return g, nil
}

// TokenLen is the maximum length of a token produced by the Generator.
func (g *Generator) TokenLen() int {
	return g.conv.EncodedLen(g.size)
}

// Generate reads a new key.
func (g *Generator) Generate() (Key, error) {
	b := make([]byte, g.size)
	if _, err := io.ReadFull(g.reader, b); err != nil {
		return Key{}, fmt.Errorf("%w: %w", errFailedToReadKey, err)
	}

	return Key{Bytes: b, Token: g.conv.EncodeBytes(b)}, nil
}

// Parse recovers the key bytes of token, including any leading zero bytes.
func (g *Generator) Parse(token string) ([]byte, error) {
	b, err := g.conv.DecodeBytesSize(token, g.size)
	if err != nil {
		g.log.Debugf("rejected key token %q: %v", token, err)

		return nil, fmt.Errorf("%w: %w", errFailedToParseKey, err)
	}

	return b, nil
}

// UUID creates a random (version 4) UUID and its token in c.
func UUID(c *baseconv.Converter) (uuid.UUID, string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, "", err
	}

	return id, c.EncodeBytes(id[:]), nil
}

// ParseUUID recovers a UUID from a token produced by UUID.
func ParseUUID(c *baseconv.Converter, token string) (uuid.UUID, error) {
	b, err := c.DecodeBytesSize(token, len(uuid.Nil))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", errFailedToParseKey, err)
	}

	return uuid.FromBytes(b)
}

// Uint64 draws a cryptographically random uint64 and its token in c.
func Uint64(c *baseconv.Converter) (uint64, string, error) {
	v, err := randutil.CryptoUint64()
	if err != nil {
		return 0, "", err
	}

	return v, c.EncodeUint64(v), nil
}
