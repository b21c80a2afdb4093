package lexer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: NotAValidChar, Loc: Location{}}, "no valid character at 1:1"},
		{&Error{Kind: UnexpectedDigitSeparator, Loc: Location{Line: 2, Column: 4}}, "unexpected digit separator at 3:5"},
		{&Error{Kind: UnterminatedLiteral, Loc: Location{Column: 7}}, "unterminated literal at 1:8"},
		{&Error{Kind: MissingDigits}, "missing digits after radix prefix at 1:1"},
		{&Error{}, "scan error at 1:1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("tokenizing main.src: %w", &Error{Kind: NotAValidChar})

	assert.True(t, errors.Is(err, ErrNotAValidChar))
	assert.False(t, errors.Is(err, ErrUnexpectedDigitSeparator))
	assert.False(t, errors.Is(&Error{}, ErrNotAValidChar))

	var scanErr *Error
	assert.True(t, errors.As(err, &scanErr))
	assert.Equal(t, NotAValidChar, scanErr.Kind)
}
