package lexer

import (
	"log/slog"
	"strings"
)

// Scanner tokenizes one input under one Config.
//
// The input is split into lines of runes once, up front; after that the
// cursor is the only thing that moves. A Scanner is single use: Scan drains
// it and later calls fail with ErrScannerConsumed.
type Scanner struct {
	cfg *Config
	log *slog.Logger

	lines [][]rune

	// cursor
	line int
	col  int

	consumed bool
}

// New returns a Scanner over input. A nil cfg means DefaultConfig().
func New(input string, cfg *Config) *Scanner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := cfg.logger
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{
		cfg:   cfg,
		log:   log,
		lines: splitLines(input),
	}
}

// Scan tokenizes input under cfg.
func Scan(input string, cfg *Config) ([]Token, error) {
	return New(input, cfg).Scan()
}

// splitLines breaks input on '\n', dropping a '\r' before each break. A
// trailing line break does not start another line, so "a\n" is one line and
// "" is none.
func splitLines(input string) [][]rune {
	if input == "" {
		return nil
	}
	raw := strings.Split(input, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		lines[i] = []rune(strings.TrimSuffix(l, "\r"))
	}
	return lines
}

// Scan runs the scanner to the end of input. It returns every token in
// order, or the first error hit, in which case no tokens are returned.
func (s *Scanner) Scan() ([]Token, error) {
	if s.consumed {
		return nil, ErrScannerConsumed
	}
	s.consumed = true

	var tokens []Token
	for {
		switch s.classify(s.line, s.col) {
		case boundOut:
			return tokens, nil
		case boundEmpty:
			s.nextLine()
			continue
		}

		tok, ok, err := s.scanNext()
		if err != nil {
			return nil, err
		}
		if ok {
			tokens = append(tokens, tok)
		}
	}
}

// scanNext dispatches on the rune under the cursor. ok is false when the
// rune was skipped without producing a token.
func (s *Scanner) scanNext() (tok Token, ok bool, err error) {
	r, _ := s.current()

	switch {
	case r == ' ':
		s.advance(1)
		return Token{}, false, nil

	case isDigit(r) && !s.cfg.ignoreNumbers:
		if r == '0' {
			if next, ok := s.peekAfter(1); ok {
				switch next {
				case 'x':
					tok, err = s.scanRadix(NumberHex, isHexDigit)
				case 'o':
					tok, err = s.scanRadix(NumberOctal, isOctalDigit)
				case 'b':
					tok, err = s.scanRadix(NumberBinary, isBinaryDigit)
				case '.':
					tok, err = s.scanFloat()
				default:
					tok, err = s.scanNumber()
				}
				return tok, err == nil, err
			}
		}
		tok, err = s.scanNumber()
		return tok, err == nil, err

	case r == '.':
		if next, ok := s.peekAfter(1); ok && isDigit(next) && !s.cfg.ignoreNumbers {
			tok, err = s.scanFloat()
			return tok, err == nil, err
		}
		return s.single(KindSymbol), true, nil

	case r == '"':
		tok, err = s.scanString('"')
		return tok, err == nil, err

	case r == '\'':
		if s.cfg.charAsString {
			tok, err = s.scanString('\'')
		} else {
			tok, err = s.scanChar()
		}
		return tok, err == nil, err

	case s.cfg.IsSymbol(r):
		return s.single(KindSymbol), true, nil

	case s.cfg.IsOperator(r):
		return s.single(KindOperator), true, nil
	}

	return s.scanWord(), true, nil
}

// single emits the rune under the cursor as a one-rune token.
func (s *Scanner) single(kind Kind) Token {
	r, _ := s.current()
	tok := Token{Kind: kind, Text: string(r), Loc: s.loc()}
	s.advance(1)
	return tok
}

// scanWord accumulates runes up to a space, a symbol, an operator or the
// end of the line.
func (s *Scanner) scanWord() Token {
	start := s.loc()
	var b strings.Builder
	for {
		r, ok := s.currentOn(start.Line)
		if !ok || r == ' ' || s.cfg.IsSymbol(r) || s.cfg.IsOperator(r) {
			break
		}
		b.WriteRune(r)
		s.advance(1)
	}
	return Token{Kind: KindWord, Text: b.String(), Loc: start}
}
