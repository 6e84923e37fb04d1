// fresdump prints the contents of an encoded stream.
//
// It reads a file (or stdin) holding one or more top-level values and
// writes them in diagnostic notation, or transcodes them to CBOR.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rawbytedev/fressian"
	"github.com/rawbytedev/fressian/pkg/cache"
	"github.com/rawbytedev/fressian/pkg/footer"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	hexInput   bool
	format     string
	dedupStats bool
	hash       string
	maxDepth   int
	logLevel   string
	footer     bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg config
	flagSet := pflag.NewFlagSet("fresdump", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVar(&cfg.hexInput, "hex", false, "input is hex text; CBOR output is written as hex")
	flagSet.StringVarP(&cfg.format, "format", "f", "diag", "output format: diag or cbor")
	flagSet.BoolVar(&cfg.dedupStats, "dedup-stats", false, "report values a back-reference cache would replace")
	flagSet.StringVar(&cfg.hash, "hash", "xxhash", "hash for --dedup-stats: xxhash or blake3")
	flagSet.BoolVar(&cfg.footer, "footer", false, "require and verify a stream footer")
	flagSet.IntVar(&cfg.maxDepth, "max-depth", 0, "maximum collection nesting (0 for the default)")
	flagSet.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  fresdump [flags] [file]\n\nReads stdin when file is absent or \"-\".\n\nFlags:\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var in io.Reader = stdin
	switch rest := flagSet.Args(); {
	case len(rest) > 1:
		return fmt.Errorf("unexpected argument: %s", rest[1])
	case len(rest) == 1 && rest[0] != "-":
		file, err := os.Open(rest[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if cfg.hexInput {
		if data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), "")); err != nil {
			return fmt.Errorf("decode hex input: %w", err)
		}
	}
	logger.Debug("input read", "bytes", len(data))
	if cfg.footer {
		if data, err = footer.Split(data); err != nil {
			return err
		}
	} else if footer.Has(data) {
		logger.Warn("input ends with a footer; pass --footer to verify it")
	}

	f := fressian.New(fressian.Options{MaxDepth: cfg.maxDepth, Logger: logger})
	values, err := f.DecodeAll(data)
	if err != nil {
		return err
	}
	logger.Info("decoded", "values", len(values))

	switch cfg.format {
	case "diag":
		for _, v := range values {
			fmt.Fprintln(stdout, fressian.FormatValue(v))
		}
	case "cbor":
		out, err := transcode(values)
		if err != nil {
			return err
		}
		if cfg.hexInput {
			fmt.Fprintln(stdout, hex.EncodeToString(out))
		} else if _, err := stdout.Write(out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown --format %q", cfg.format)
	}

	if cfg.dedupStats {
		hash, err := hashFunc(cfg.hash)
		if err != nil {
			return err
		}
		s, err := dedup(values, cache.New(cache.Options{Hash: hash, MaxDepth: cfg.maxDepth}))
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "values: %d, distinct: %d, repeated: %d, repeated bytes: %d\n",
			s.values, s.distinct, s.repeated, s.repeatedBytes)
	}
	return nil
}

func hashFunc(name string) (cache.HashFunc, error) {
	switch name {
	case "xxhash":
		return cache.XXHash, nil
	case "blake3":
		return cache.Blake3, nil
	}
	return nil, fmt.Errorf("unknown --hash %q", name)
}
