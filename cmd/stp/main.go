// Command stp tokenizes a file (or standard input) and dumps the tokens.
//
// Usage:
//
//	stp [flags] [file]
//
// Example, scanning Rust-like source:
//
//	stp -char-as-string -separator _ -symbols '{}();#,[]' -operators '+-*%/&' main.rs
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/luxluth/stp/lexer"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("stp failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("stp", flag.ContinueOnError)
	charAsString := fs.Bool("char-as-string", false, "scan single-quoted text as strings")
	ignoreNumbers := fs.Bool("ignore-numbers", false, "scan digits as word characters")
	strict := fs.Bool("strict", false, "reject unterminated literals and empty radix literals")
	separator := fs.String("separator", "", "digit separator character")
	symbols := fs.String("symbols", "", "characters to treat as symbols")
	operators := fs.String("operators", "", "characters to treat as operators")
	quiet := fs.Bool("q", false, "print only the summary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b := lexer.NewBuilder().
		CharAsString(*charAsString).
		IgnoreNumbers(*ignoreNumbers).
		Strict(*strict).
		AddSymbols([]rune(*symbols)...).
		AddOperators([]rune(*operators)...).
		Logger(logger)
	if *separator != "" {
		sep := []rune(*separator)
		if len(sep) != 1 {
			return fmt.Errorf("separator must be a single character, got %q", *separator)
		}
		b.DigitSeparator(sep[0])
	}

	name := "<stdin>"
	var src []byte
	var err error
	switch fs.NArg() {
	case 0:
		src, err = io.ReadAll(stdin)
	case 1:
		name = fs.Arg(0)
		src, err = os.ReadFile(name)
	default:
		return fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	start := time.Now()
	tokens, err := b.Scanner(string(src)).Scan()
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	fmt.Fprintf(stdout, "-> elapsed: %dµs\n", elapsed.Microseconds())
	fmt.Fprintf(stdout, "parsed %d token(s)\n", len(tokens))
	if *quiet {
		return nil
	}
	for _, tok := range tokens {
		fmt.Fprintf(stdout, "%-8s %-6s %-8s %q\n", tok.Loc, tok.Kind, tok.Number, tok.Text)
	}
	return nil
}
