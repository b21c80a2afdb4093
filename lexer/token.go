package lexer

import "fmt"

// Kind classifies a token.
type Kind uint8

const (
	// KindWord is any run of runes no other rule claimed: identifiers,
	// keywords, and stray characters alike.
	KindWord Kind = iota

	// KindNumber is a numeric literal. Token.Number tells which radix.
	KindNumber

	// KindString is a quoted literal with its escapes decoded. Single-quoted
	// text also scans as a string when the char-as-string mode is on.
	KindString

	// KindChar is a single-quoted literal holding at most one rune.
	KindChar

	// KindSymbol is one rune from the configured symbol set.
	KindSymbol

	// KindOperator is one rune from the configured operator set.
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "WORD"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindChar:
		return "CHAR"
	case KindSymbol:
		return "SYMBOL"
	case KindOperator:
		return "OPERATOR"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// NumberKind refines KindNumber tokens.
type NumberKind uint8

const (
	// NumberNone is carried by every token that is not a number.
	NumberNone NumberKind = iota

	NumberFloat  // 3.14, .25 (text "0.25")
	NumberHex    // 0x1A3F (text "1A3F")
	NumberBinary // 0b1010 (text "1010")
	NumberOctal  // 0o755 (text "755")
	NumberSeq    // 12345
)

func (n NumberKind) String() string {
	switch n {
	case NumberNone:
		return "NONE"
	case NumberFloat:
		return "FLOAT"
	case NumberHex:
		return "HEX"
	case NumberBinary:
		return "BINARY"
	case NumberOctal:
		return "OCTAL"
	case NumberSeq:
		return "SEQ"
	default:
		return fmt.Sprintf("NumberKind(%d)", uint8(n))
	}
}

// Token is a single classified span of input.
//
// Text is the decoded text of the token. For quoted literals that is the
// content after escape processing, without the delimiters; for radix-prefixed
// numbers it is the digits after the prefix; for numbers written with a digit
// separator the separators are removed. Text never aliases scanner memory.
type Token struct {
	Kind   Kind
	Number NumberKind
	Text   string
	Loc    Location
}

// IsNumber reports whether t is a number literal of kind n.
func (t Token) IsNumber(n NumberKind) bool {
	return t.Kind == KindNumber && t.Number == n
}

// String returns a human-readable form such as "NUMBER/HEX(1A) at 1:1".
func (t Token) String() string {
	if t.Kind == KindNumber {
		return t.Kind.String() + "/" + t.Number.String() + "(" + t.Text + ") at " + t.Loc.String()
	}
	return t.Kind.String() + "(" + t.Text + ") at " + t.Loc.String()
}
