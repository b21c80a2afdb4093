// Package participlex plugs the stp scanner into participle parsers.
//
// A Definition satisfies participle's lexer.Definition, so a grammar can be
// built straight on top of a lexer.Config:
//
//	def := participlex.New(cfg)
//	parser := participle.MustBuild[Program](participle.Lexer(def))
//
// Token types are named after the scanner's kinds, with numbers split by
// radix: Word, Float, Hex, Binary, Octal, Seq, String, Char, Symbol and
// Operator.
package participlex

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/luxluth/stp/lexer"
)

// Token types reported to participle.
const (
	Word plex.TokenType = iota + 1
	Float
	Hex
	Binary
	Octal
	Seq
	String
	Char
	Symbol
	Operator
)

var symbols = map[string]plex.TokenType{
	"EOF":      plex.EOF,
	"Word":     Word,
	"Float":    Float,
	"Hex":      Hex,
	"Binary":   Binary,
	"Octal":    Octal,
	"Seq":      Seq,
	"String":   String,
	"Char":     Char,
	"Symbol":   Symbol,
	"Operator": Operator,
}

// Definition is a participle lexer definition backed by a scanner config.
type Definition struct {
	cfg *lexer.Config
}

var (
	_ plex.Definition       = (*Definition)(nil)
	_ plex.StringDefinition = (*Definition)(nil)
)

// New returns a Definition scanning with cfg. A nil cfg uses the defaults.
func New(cfg *lexer.Config) *Definition {
	if cfg == nil {
		cfg = lexer.DefaultConfig()
	}
	return &Definition{cfg: cfg}
}

// Symbols returns the token type names participle grammars may refer to.
func (d *Definition) Symbols() map[string]plex.TokenType {
	out := make(map[string]plex.TokenType, len(symbols))
	for k, v := range symbols {
		out[k] = v
	}
	return out
}

// Lex reads all of r and scans it.
func (d *Definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return d.LexString(filename, string(data))
}

// LexString scans input. The whole input is tokenized up front; a scan
// error is returned here rather than from Next.
func (d *Definition) LexString(filename, input string) (plex.Lexer, error) {
	tokens, err := lexer.Scan(input, d.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &tokenLexer{
		filename:   filename,
		input:      input,
		lineStarts: lineStarts(input),
		tokens:     tokens,
	}, nil
}

// TypeOf returns the participle token type for tok.
func TypeOf(tok lexer.Token) plex.TokenType {
	switch tok.Kind {
	case lexer.KindWord:
		return Word
	case lexer.KindNumber:
		switch tok.Number {
		case lexer.NumberFloat:
			return Float
		case lexer.NumberHex:
			return Hex
		case lexer.NumberBinary:
			return Binary
		case lexer.NumberOctal:
			return Octal
		default:
			return Seq
		}
	case lexer.KindString:
		return String
	case lexer.KindChar:
		return Char
	case lexer.KindSymbol:
		return Symbol
	default:
		return Operator
	}
}

type tokenLexer struct {
	filename   string
	input      string
	lineStarts []int
	tokens     []lexer.Token
	next       int
}

func (l *tokenLexer) Next() (plex.Token, error) {
	if l.next >= len(l.tokens) {
		return plex.EOFToken(l.eofPosition()), nil
	}
	tok := l.tokens[l.next]
	l.next++
	return plex.Token{
		Type:  TypeOf(tok),
		Value: tok.Text,
		Pos:   l.position(tok.Loc),
	}, nil
}

// position converts a zero-based rune location into participle's one-based
// position with a byte offset into the original input.
func (l *tokenLexer) position(loc lexer.Location) plex.Position {
	offset := len(l.input)
	if loc.Line < len(l.lineStarts) {
		start := l.lineStarts[loc.Line]
		offset = start + runeOffset(l.input[start:], loc.Column)
	}
	return plex.Position{
		Filename: l.filename,
		Offset:   offset,
		Line:     loc.Line + 1,
		Column:   loc.Column + 1,
	}
}

func (l *tokenLexer) eofPosition() plex.Position {
	last := strings.LastIndexByte(l.input, '\n') + 1
	return plex.Position{
		Filename: l.filename,
		Offset:   len(l.input),
		Line:     strings.Count(l.input, "\n") + 1,
		Column:   utf8.RuneCountInString(l.input[last:]) + 1,
	}
}

func lineStarts(input string) []int {
	starts := []int{0}
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// runeOffset returns the byte offset of the n-th rune of s.
func runeOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
