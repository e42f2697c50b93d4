// Command huffenc builds a Huffman code for each input text, prints the
// frequency and code tables, and shows the encoded and decoded text.
//
// Usage:
//
//     huffenc [-log-level LEVEL] [-cache-size N] [-workers N] [-verify=BOOL] [TEXT ...]
//
// With no TEXT arguments, huffenc prompts for one line on standard input.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffstring/internal/batch"
	"github.com/chronos-tachyon/huffstring/internal/config"
	"github.com/chronos-tachyon/huffstring/internal/logger"
	"github.com/chronos-tachyon/huffstring/internal/report"
)

const progName = "huffenc"

var log = logging.MustGetLogger("huffenc")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Critical(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	cfg, err := config.Load(progName, args, stderr)
	if err != nil {
		return err
	}
	if _, err := logger.Setup(stderr, progName+": ", cfg.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	inputs := cfg.Inputs
	if len(inputs) == 0 {
		line, err := prompt(stdin, stdout)
		if err != nil {
			return err
		}
		inputs = []string{line}
	}
	log.Infof("encoding %d input(s) with %d worker(s)", len(inputs), cfg.Workers)

	b, err := batch.New(cfg.CacheSize, cfg.Workers)
	if err != nil {
		return err
	}
	results, err := b.EncodeAll(ctx, inputs, cfg.Verify)
	if err != nil {
		return err
	}

	for index, r := range results {
		if index > 0 {
			fmt.Fprintln(stdout, strings.Repeat("-", 39))
		}
		if err := show(stdout, r); err != nil {
			return err
		}
	}
	return nil
}

func prompt(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprintln(stdout, "Welcome to my Huffman Encoding Program!")
	fmt.Fprintln(stdout, strings.Repeat("*", 39))
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Please enter a string: ")

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintln(stdout)
	return strings.TrimRight(line, "\r\n"), nil
}

func show(w io.Writer, r batch.Result) error {
	e := r.Encoding

	fmt.Fprintln(w, "Character frequencies from text: ")
	if err := report.Frequencies(w, e.Frequencies()); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Huffman encoding map for text: ")
	if err := report.Codes(w, e.CodeMap()); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if err := report.Summary(w, r.Text, r.Encoded, e.Stats()); err != nil {
		return err
	}
	fmt.Fprintln(w)

	decoded, err := e.Decode(r.Encoded)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Decoded text: %s\n", decoded)
	return err
}
