// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/google/uuid"
	"github.com/pion/baseconv"
	"github.com/pion/baseconv/keygen"
	"github.com/pion/logging"
)

var (
	errNotAnInteger = errors.New("not a decimal integer")
	errNoValues     = errors.New("no values given")
)

type options struct {
	radix    int
	alphabet string
	decode   bool
	bytes    bool
	size     int
	uuid     bool
	keys     int
	keySize  int

	loggerFactory logging.LoggerFactory
}

func (o options) converter() (*baseconv.Converter, error) {
	if o.alphabet != "" {
		return baseconv.New(o.alphabet)
	}

	return baseconv.ForRadix(o.radix)
}

func run(opts options, args []string, out io.Writer) error {
	if opts.loggerFactory == nil {
		opts.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	log := opts.loggerFactory.NewLogger("baseconv")

	conv, err := opts.converter()
	if err != nil {
		return err
	}
	log.Debugf("radix %d, alphabet %q", conv.Radix(), conv.Alphabet())

	switch {
	case opts.keys > 0:
		return generateKeys(opts, conv, out)
	case opts.uuid && len(args) == 0 && !opts.decode:
		_, token, err := keygen.UUID(conv)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, token)

		return err
	case len(args) == 0:
		return errNoValues
	}

	for _, arg := range args {
		result, err := convert(opts, conv, arg)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		if _, err := fmt.Fprintln(out, result); err != nil {
			return err
		}
	}

	return nil
}

func generateKeys(opts options, conv *baseconv.Converter, out io.Writer) error {
	gen, err := keygen.New(keygen.Config{
		Size:          opts.keySize,
		Converter:     conv,
		LoggerFactory: opts.loggerFactory,
	})
	if err != nil {
		return err
	}

	for i := 0; i < opts.keys; i++ {
		key, err := gen.Generate()
		if err != nil {
			return err
		}

		line := key.Token
		if opts.bytes {
			line += "\t" + hex.EncodeToString(key.Bytes)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}

func convert(opts options, conv *baseconv.Converter, arg string) (string, error) {
	switch {
	case opts.uuid && opts.decode:
		id, err := keygen.ParseUUID(conv, arg)
		if err != nil {
			return "", err
		}

		return id.String(), nil
	case opts.uuid:
		id, err := uuid.Parse(arg)
		if err != nil {
			return "", err
		}

		return conv.EncodeBytes(id[:]), nil
	case opts.bytes && opts.decode:
		var (
			b   []byte
			err error
		)
		if opts.size > 0 {
			b, err = conv.DecodeBytesSize(arg, opts.size)
		} else {
			b, err = conv.DecodeBytes(arg)
		}
		if err != nil {
			return "", err
		}

		return hex.EncodeToString(b), nil
	case opts.bytes:
		b, err := hex.DecodeString(arg)
		if err != nil {
			return "", err
		}

		return conv.EncodeBytes(b), nil
	case opts.decode:
		n, err := conv.DecodeInt(arg)
		if err != nil {
			return "", err
		}

		return n.String(), nil
	default:
		n, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return "", errNotAnInteger
		}

		return conv.EncodeInt(n)
	}
}
