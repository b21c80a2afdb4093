package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		expected string
	}{
		{"origin", Location{}, "1:1"},
		{"line 42 column 15", Location{Line: 41, Column: 14}, "42:15"},
		{"second line", Location{Line: 1}, "2:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.loc.String())
		})
	}
}

func TestLocation_Ordering(t *testing.T) {
	a := Location{Line: 0, Column: 5}
	b := Location{Line: 1, Column: 0}
	c := Location{Line: 1, Column: 3}

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, c.Before(a))
	assert.False(t, a.Before(a))

	assert.True(t, c.After(b))
	assert.False(t, a.After(a))
}
