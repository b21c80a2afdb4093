// Package lexer provides a configurable, single-pass lexical scanner.
// It turns raw text into a flat slice of classified tokens (words, numbers
// in several radices, quoted strings and characters, symbols, operators),
// each carrying the location where it starts.
//
// The scanner knows nothing about grammar. It is meant to sit in front of a
// parser: build a Config once, then scan any number of inputs with it.
//
//	cfg := lexer.NewBuilder().
//		DigitSeparator('_').
//		AddSymbols('{', '}', '(', ')', ';', ',').
//		AddOperators('+', '-', '*', '/').
//		Build()
//	tokens, err := lexer.Scan(src, cfg)
package lexer

import "strconv"

// Location is a point in the scanned input.
//
// Line and Column are zero-based and count runes, not bytes: the scanner
// splits the input into lines of decoded runes and every rune is one column.
// String renders the one-based form editors display.
type Location struct {
	Line   int
	Column int
}

// String returns the location as "line:column", both one-based.
func (l Location) String() string {
	return strconv.Itoa(l.Line+1) + ":" + strconv.Itoa(l.Column+1)
}

// Before reports whether l comes before other in reading order.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

// After reports whether l comes after other in reading order.
func (l Location) After(other Location) bool {
	return other.Before(l)
}
