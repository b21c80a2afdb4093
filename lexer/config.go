package lexer

import "log/slog"

// Config holds the scanning options. It is immutable once built, so one
// Config can back any number of scanners, including concurrent ones.
type Config struct {
	charAsString  bool
	ignoreNumbers bool
	strict        bool
	separator     rune
	hasSeparator  bool
	symbols       map[rune]struct{}
	operators     map[rune]struct{}
	logger        *slog.Logger
}

// DefaultConfig returns the configuration of a fresh Builder: only '.' is a
// symbol, numbers are scanned, no digit separator.
func DefaultConfig() *Config {
	return NewBuilder().Build()
}

// CharAsString reports whether single-quoted text scans as a string.
func (c *Config) CharAsString() bool { return c.charAsString }

// IgnoreNumbers reports whether digits scan as ordinary word runes.
func (c *Config) IgnoreNumbers() bool { return c.ignoreNumbers }

// Strict reports whether unterminated literals and empty radix digit runs
// are errors.
func (c *Config) Strict() bool { return c.strict }

// DigitSeparator returns the configured digit separator, if any.
func (c *Config) DigitSeparator() (rune, bool) { return c.separator, c.hasSeparator }

// IsSymbol reports whether r is in the symbol set.
func (c *Config) IsSymbol(r rune) bool {
	_, ok := c.symbols[r]
	return ok
}

// IsOperator reports whether r is in the operator set.
func (c *Config) IsOperator(r rune) bool {
	_, ok := c.operators[r]
	return ok
}

func (c *Config) isSeparator(r rune) bool {
	return c.hasSeparator && r == c.separator
}

// Builder assembles a Config. Setters for the same option override each
// other; AddSymbol(s) and AddOperator(s) accumulate. Methods return the
// builder so calls chain.
type Builder struct {
	conf      Config
	symbols   []rune
	operators []rune
}

// NewBuilder returns a builder whose symbol set already holds '.', which
// doubles as the decimal point.
func NewBuilder() *Builder {
	return &Builder{symbols: []rune{'.'}}
}

// CharAsString makes single-quoted literals scan as strings of any length.
func (b *Builder) CharAsString(on bool) *Builder {
	b.conf.charAsString = on
	return b
}

// IgnoreNumbers turns off numeric literal scanning.
func (b *Builder) IgnoreNumbers(on bool) *Builder {
	b.conf.ignoreNumbers = on
	return b
}

// DigitSeparator allows sep between the digits of decimal literals.
func (b *Builder) DigitSeparator(sep rune) *Builder {
	b.conf.separator = sep
	b.conf.hasSeparator = true
	return b
}

// NoDigitSeparator clears a previously set digit separator.
func (b *Builder) NoDigitSeparator() *Builder {
	b.conf.separator = 0
	b.conf.hasSeparator = false
	return b
}

// Strict turns unterminated quoted literals and radix prefixes without
// digits into errors instead of best-effort tokens.
func (b *Builder) Strict(on bool) *Builder {
	b.conf.strict = on
	return b
}

// Logger sets where internal diagnostics go. nil means slog.Default().
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.conf.logger = l
	return b
}

func (b *Builder) AddSymbol(sym rune) *Builder {
	b.symbols = append(b.symbols, sym)
	return b
}

func (b *Builder) AddSymbols(syms ...rune) *Builder {
	b.symbols = append(b.symbols, syms...)
	return b
}

func (b *Builder) AddOperator(op rune) *Builder {
	b.operators = append(b.operators, op)
	return b
}

func (b *Builder) AddOperators(ops ...rune) *Builder {
	b.operators = append(b.operators, ops...)
	return b
}

// Build freezes the current options into a new Config. The builder stays
// usable; later calls do not affect configs already built.
func (b *Builder) Build() *Config {
	c := b.conf
	c.symbols = runeSet(b.symbols)
	c.operators = runeSet(b.operators)
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return &c
}

// Scanner builds a Config and returns a Scanner over input.
func (b *Builder) Scanner(input string) *Scanner {
	return New(input, b.Build())
}

func runeSet(rs []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}
