// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Command baseconv encodes and decodes numbers, hex bytes and UUIDs in an
// arbitrary base, and generates random key tokens.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pion/logging"
)

func main() {
	var opts options
	flag.IntVar(&opts.radix, "radix", 62, "Radix, using the first symbols of the default alphabet (2-66)")
	flag.StringVar(&opts.alphabet, "alphabet", "", "Explicit alphabet, overrides -radix")
	flag.BoolVar(&opts.decode, "decode", false, "Decode the arguments instead of encoding them")
	flag.BoolVar(&opts.bytes, "bytes", false, "Treat plain values as hex encoded bytes")
	flag.IntVar(&opts.size, "size", 0, "With -decode -bytes, pad the output to this many bytes")
	flag.BoolVar(&opts.uuid, "uuid", false, "Values are UUIDs; with no arguments a random UUID is generated")
	flag.IntVar(&opts.keys, "keygen", 0, "Generate this many random keys")
	flag.IntVar(&opts.keySize, "keysize", 32, "Size in bytes of keys generated with -keygen")
	logLevel := flag.String("loglevel", "error", "Log level: error, warn, info, debug or trace")
	flag.Parse()

	loggerFactory := logging.NewDefaultLoggerFactory()
	level, ok := logLevels[strings.ToLower(*logLevel)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown -loglevel %q\n", *logLevel)
		os.Exit(2)
	}
	loggerFactory.DefaultLogLevel = level
	opts.loggerFactory = loggerFactory

	if err := run(opts, flag.Args(), os.Stdout); err != nil {
		loggerFactory.NewLogger("baseconv").Errorf("%v", err)
		os.Exit(1)
	}
}

var logLevels = map[string]logging.LogLevel{ //nolint:gochecknoglobals
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}
