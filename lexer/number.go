package lexer

import "strings"

// scanNumber scans a decimal literal. It is a Seq unless a '.' shows up,
// in which case it becomes a Float.
func (s *Scanner) scanNumber() (Token, error) {
	start := s.loc()
	var b strings.Builder
	kind, err := s.scanDecimal(start.Line, &b, false)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: KindNumber, Number: kind, Text: b.String(), Loc: start}, nil
}

// scanFloat scans a literal known to be a float: either "0." followed by
// digits, or a bare ".5", which is written out as "0.5".
func (s *Scanner) scanFloat() (Token, error) {
	start := s.loc()
	var b strings.Builder
	seenDot := false
	if r, _ := s.current(); r == '.' {
		b.WriteString("0.")
		seenDot = true
		s.advance(1)
	}
	if _, err := s.scanDecimal(start.Line, &b, seenDot); err != nil {
		return Token{}, err
	}
	return Token{Kind: KindNumber, Number: NumberFloat, Text: b.String(), Loc: start}, nil
}

// scanDecimal accumulates digits and at most one '.' into b, stopping
// before a second '.' or any other rune. A digit separator is dropped but
// must be followed by a digit on the same line.
func (s *Scanner) scanDecimal(line int, b *strings.Builder, seenDot bool) (NumberKind, error) {
	kind := NumberSeq
	if seenDot {
		kind = NumberFloat
	}
	for {
		r, ok := s.currentOn(line)
		if !ok {
			return kind, nil
		}
		switch {
		case isDigit(r):
			b.WriteRune(r)
		case r == '.':
			if seenDot {
				return kind, nil
			}
			seenDot = true
			kind = NumberFloat
			b.WriteRune('.')
		case s.cfg.isSeparator(r):
			sep := s.loc()
			s.advance(1)
			next, ok := s.currentOn(line)
			if !ok || !isDigit(next) {
				return kind, &Error{Kind: UnexpectedDigitSeparator, Loc: sep}
			}
			b.WriteRune(next)
		default:
			return kind, nil
		}
		s.advance(1)
	}
}

// scanRadix scans a 0x, 0o or 0b literal. The prefix is consumed but not
// kept. An empty digit run is accepted unless the config is strict.
func (s *Scanner) scanRadix(kind NumberKind, digit func(rune) bool) (Token, error) {
	start := s.loc()
	s.advance(2)

	var b strings.Builder
	for {
		r, ok := s.currentOn(start.Line)
		if !ok || !digit(r) {
			break
		}
		b.WriteRune(r)
		s.advance(1)
	}

	if b.Len() == 0 && s.cfg.strict {
		return Token{}, &Error{Kind: MissingDigits, Loc: start}
	}
	return Token{Kind: KindNumber, Number: kind, Text: b.String(), Loc: start}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}
