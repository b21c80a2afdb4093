package lexer

import (
	"strings"
	"unicode/utf8"
)

// scanString scans a literal delimited by delim into a String token.
func (s *Scanner) scanString(delim rune) (Token, error) {
	start := s.loc()
	text, closed := s.scanQuoted(delim)
	if !closed && s.cfg.strict {
		return Token{}, &Error{Kind: UnterminatedLiteral, Loc: start}
	}
	return Token{Kind: KindString, Text: text, Loc: start}, nil
}

// scanChar scans a single-quoted literal that must decode to at most one
// rune.
func (s *Scanner) scanChar() (Token, error) {
	start := s.loc()
	text, closed := s.scanQuoted('\'')
	if !closed && s.cfg.strict {
		return Token{}, &Error{Kind: UnterminatedLiteral, Loc: start}
	}
	if utf8.RuneCountInString(text) > 1 {
		return Token{}, &Error{Kind: NotAValidChar, Loc: start}
	}
	return Token{Kind: KindChar, Text: text, Loc: start}, nil
}

// scanQuoted consumes a quoted literal starting at the opening delimiter
// and returns its decoded content. closed is false when the input ran out
// first; the content read so far is still returned.
//
// A literal may span lines; each line break inside it reads as '\n'.
func (s *Scanner) scanQuoted(delim rune) (text string, closed bool) {
	var b strings.Builder
	line := s.line
	s.advance(1)

	escaped := false
	for {
		kind := s.classify(s.line, s.col)
		if kind == boundOut {
			return b.String(), false
		}
		if s.line > line {
			if escaped {
				b.WriteByte('\\')
				escaped = false
			}
			for ; line < s.line; line++ {
				b.WriteByte('\n')
			}
		}
		if kind == boundEmpty {
			s.nextLine()
			continue
		}

		r := s.lines[s.line][s.col]
		switch {
		case r == delim && !escaped:
			s.advance(1)
			return b.String(), true
		case r == '\\' && !escaped:
			escaped = true
		case escaped:
			writeEscape(&b, r)
			escaped = false
		default:
			b.WriteRune(r)
		}
		s.advance(1)
	}
}

// writeEscape writes the decoded form of the escape \r. Unknown escapes
// are kept verbatim, backslash included.
func writeEscape(b *strings.Builder, r rune) {
	switch r {
	case 'n':
		b.WriteByte('\n')
	case '0':
		b.WriteByte(0)
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case '\\':
		b.WriteByte('\\')
	default:
		b.WriteByte('\\')
		b.WriteRune(r)
	}
}
