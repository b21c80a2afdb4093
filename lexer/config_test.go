package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.CharAsString())
	assert.False(t, cfg.IgnoreNumbers())
	assert.False(t, cfg.Strict())
	assert.True(t, cfg.IsSymbol('.'), "dot is always a symbol")
	assert.False(t, cfg.IsOperator('+'))
	assert.NotNil(t, cfg.logger)

	_, ok := cfg.DigitSeparator()
	assert.False(t, ok)
}

func TestBuilder_LaterCallsOverride(t *testing.T) {
	cfg := NewBuilder().
		CharAsString(true).
		CharAsString(false).
		IgnoreNumbers(true).
		DigitSeparator('_').
		DigitSeparator('\'').
		Build()

	assert.False(t, cfg.CharAsString())
	assert.True(t, cfg.IgnoreNumbers())

	sep, ok := cfg.DigitSeparator()
	require.True(t, ok)
	assert.Equal(t, '\'', sep)

	cfg = NewBuilder().DigitSeparator('_').NoDigitSeparator().Build()
	_, ok = cfg.DigitSeparator()
	assert.False(t, ok)
}

func TestBuilder_SetsAccumulate(t *testing.T) {
	cfg := NewBuilder().
		AddSymbol('{').
		AddSymbols('}', ';').
		AddOperator('+').
		AddOperators('-', '*').
		AddOperators().
		Build()

	for _, r := range []rune{'.', '{', '}', ';'} {
		assert.True(t, cfg.IsSymbol(r), "symbol %q", r)
	}
	for _, r := range []rune{'+', '-', '*'} {
		assert.True(t, cfg.IsOperator(r), "operator %q", r)
	}
	assert.False(t, cfg.IsSymbol('+'))
	assert.False(t, cfg.IsOperator('{'))
}

func TestBuilder_BuildFreezes(t *testing.T) {
	b := NewBuilder().AddSymbol('#')
	first := b.Build()

	b.AddSymbol('@').AddOperator('!').CharAsString(true)
	second := b.Build()

	assert.False(t, first.IsSymbol('@'))
	assert.False(t, first.IsOperator('!'))
	assert.False(t, first.CharAsString())

	assert.True(t, second.IsSymbol('#'))
	assert.True(t, second.IsSymbol('@'))
	assert.True(t, second.IsOperator('!'))
	assert.True(t, second.CharAsString())
}

func TestConfig_SharedAcrossScanners(t *testing.T) {
	cfg := NewBuilder().AddOperator('+').Build()

	inputs := []string{"a+b", "1 + 2", "x"}
	results := make([][]Token, len(inputs))
	done := make(chan int)
	for i, input := range inputs {
		go func(i int, input string) {
			results[i], _ = Scan(input, cfg)
			done <- i
		}(i, input)
	}
	for range inputs {
		<-done
	}

	assert.Len(t, results[0], 3)
	assert.Len(t, results[1], 3)
	assert.Len(t, results[2], 1)
}
