package lexer

import "errors"

// ErrorKind identifies why a scan failed.
type ErrorKind uint8

const (
	// NotAValidChar: a strict character literal decoded to more than one rune.
	NotAValidChar ErrorKind = iota + 1

	// UnexpectedDigitSeparator: a digit separator was not followed by a digit.
	UnexpectedDigitSeparator

	// UnterminatedLiteral: a quoted literal reached the end of input. Only
	// reported in strict mode.
	UnterminatedLiteral

	// MissingDigits: a 0x, 0o or 0b prefix had no digits after it. Only
	// reported in strict mode.
	MissingDigits
)

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrNotAValidChar            = errors.New("no valid character")
	ErrUnexpectedDigitSeparator = errors.New("unexpected digit separator")
	ErrUnterminatedLiteral      = errors.New("unterminated literal")
	ErrMissingDigits            = errors.New("missing digits after radix prefix")

	// ErrScannerConsumed is returned by a second call to Scanner.Scan.
	ErrScannerConsumed = errors.New("scanner already consumed")
)

// Error is the terminal error of a scan. Loc is where the offending construct
// starts, or for UnexpectedDigitSeparator, where the separator itself sits.
type Error struct {
	Kind ErrorKind
	Loc  Location
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case NotAValidChar:
		return ErrNotAValidChar
	case UnexpectedDigitSeparator:
		return ErrUnexpectedDigitSeparator
	case UnterminatedLiteral:
		return ErrUnterminatedLiteral
	case MissingDigits:
		return ErrMissingDigits
	default:
		return nil
	}
}

func (e *Error) Error() string {
	if s := e.sentinel(); s != nil {
		return s.Error() + " at " + e.Loc.String()
	}
	return "scan error at " + e.Loc.String()
}

// Is lets errors.Is(err, ErrNotAValidChar) and friends match a *Error.
func (e *Error) Is(target error) bool {
	s := e.sentinel()
	return s != nil && s == target
}
