// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package nonce issues short, signed, time-limited nonces encoded with a
// baseconv.Converter, suitable for the STUN/TURN NONCE attribute.
package nonce

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/pion/baseconv"
	"github.com/pion/logging"
	"github.com/pion/stun/v2"
)

const (
	timestampLen    = 4 // minutes since epoch, good until year 10,135
	keyLength       = 64
	minHMACLen      = 2
	maxHMACLen      = sha256.Size
	defaultHMACLen  = 12
	defaultLifetime = time.Hour // See: https://tools.ietf.org/html/rfc5766#section-4
)

var (
	// ErrInvalidNonce is returned for every nonce that fails validation.
	ErrInvalidNonce = errors.New("invalid nonce")

	errFailedToGenerateNonce = errors.New("failed to generate nonce")
	errInvalidHMACLen        = errors.New("HMAC length must be between 2 and 32 bytes")
	errNegativeLifetime      = errors.New("lifetime must not be negative")
)

// Config configures a Hash. The zero value is usable.
type Config struct {
	// HMACLen is the number of HMAC bytes carried in the nonce, 2-32. Defaults to 12.
	HMACLen int

	// Lifetime is how long a nonce stays valid. Defaults to one hour.
	Lifetime time.Duration

	// Key signs the nonces. Servers sharing a Key accept each other's nonces.
	// A random key is generated when empty.
	Key []byte

	// Converter encodes the nonce bytes. Defaults to baseconv.Base36().
	Converter *baseconv.Converter

	// Now replaces time.Now, mostly for tests.
	Now func() time.Time

	LoggerFactory logging.LoggerFactory
}

// Hash creates and verifies nonces.
type Hash struct {
	key      []byte
	hmacLen  int
	lifetime time.Duration
	conv     *baseconv.Converter
	now      func() time.Time
	log      logging.LeveledLogger
}

// New creates a Hash from config.
func New(config Config) (*Hash, error) {
	if config.HMACLen == 0 {
		config.HMACLen = defaultHMACLen
	}
	if config.HMACLen < minHMACLen || config.HMACLen > maxHMACLen {
		return nil, fmt.Errorf("%w: got %d", errInvalidHMACLen, config.HMACLen)
	}

	switch {
	case config.Lifetime < 0:
		return nil, errNegativeLifetime
	case config.Lifetime == 0:
		config.Lifetime = defaultLifetime
	}

	if config.Converter == nil {
		config.Converter = baseconv.Base36()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.LoggerFactory == nil {
		config.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	key := config.Key
	if len(key) == 0 {
		key = make([]byte, keyLength)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToGenerateNonce, err)
		}
	}

	return &Hash{
		key:      key,
		hmacLen:  config.HMACLen,
		lifetime: config.Lifetime,
		conv:     config.Converter,
		now:      config.Now,
		log:      config.LoggerFactory.NewLogger("nonce"),
	}, nil
}

// Size is the number of bytes encoded in each nonce.
func (h *Hash) Size() int {
	return timestampLen + h.hmacLen
}

// Generate a nonce.
func (h *Hash) Generate() (string, error) {
	var timestamp [timestampLen]byte
	binary.BigEndian.PutUint32(timestamp[:], uint32(h.now().Unix()/60)) // nolint:gosec // G115

	nonce := make([]byte, timestampLen, h.Size())
	copy(nonce, timestamp[:])
	nonce = append(nonce, h.sign(timestamp[:])...)

	return h.conv.EncodeBytes(nonce), nil
}

// Validate checks that nonce is signed by this Hash and has not expired.
func (h *Hash) Validate(nonce string) error {
	// Leading zero bytes are lost by the encoding, DecodeBytesSize restores them.
	b, err := h.conv.DecodeBytesSize(nonce, h.Size())
	if err != nil {
		h.log.Debugf("rejected nonce %q: %v", nonce, err)

		return fmt.Errorf("%w: %w", ErrInvalidNonce, err)
	}

	timestamp, received := b[:timestampLen], b[timestampLen:]
	issued := time.Unix(int64(binary.BigEndian.Uint32(timestamp))*60, 0)

	now := h.now()
	switch {
	case issued.After(now):
		h.log.Debugf("rejected nonce %q: issued in the future (%s)", nonce, issued)

		return ErrInvalidNonce
	case now.Sub(issued) > h.lifetime:
		h.log.Debugf("rejected nonce %q: expired (issued %s)", nonce, issued)

		return ErrInvalidNonce
	}

	if !hmac.Equal(received, h.sign(timestamp)) {
		h.log.Debugf("rejected nonce %q: bad signature", nonce)

		return ErrInvalidNonce
	}

	return nil
}

// AddTo adds a fresh nonce to m as a NONCE attribute, so a Hash can be passed
// directly to stun.Build.
func (h *Hash) AddTo(m *stun.Message) error {
	nonce, err := h.Generate()
	if err != nil {
		return err
	}

	return stun.NewNonce(nonce).AddTo(m)
}

// ValidateMessage validates the NONCE attribute of m.
func (h *Hash) ValidateMessage(m *stun.Message) error {
	var attr stun.Nonce
	if err := attr.GetFrom(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNonce, err)
	}

	return h.Validate(attr.String())
}

func (h *Hash) sign(timestamp []byte) []byte {
	mac := hmac.New(sha256.New, h.key)
	_, _ = mac.Write(timestamp) // hash.Hash writes never fail

	return mac.Sum(nil)[:h.hmacLen]
}
