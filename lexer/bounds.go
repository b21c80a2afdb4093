package lexer

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// bound classifies a (line, column) pair against the line grid.
type bound uint8

const (
	boundWithin bound = iota // on a rune
	boundEmpty               // on a line with no runes
	boundOut                 // past the last line
)

func (s *Scanner) classify(line, col int) bound {
	if line >= len(s.lines) {
		return boundOut
	}
	if len(s.lines[line]) == 0 {
		return boundEmpty
	}
	if col >= len(s.lines[line]) {
		// Unreachable through advance; treated as exhausted.
		return boundOut
	}
	return boundWithin
}

// step returns the position one rune after (line, col). An exhausted or
// empty line steps to column 0 of the next one.
func (s *Scanner) step(line, col int) (int, int) {
	if line >= len(s.lines) {
		return line + 1, 0
	}
	if col+1 >= len(s.lines[line]) {
		return line + 1, 0
	}
	return line, col + 1
}

// advance moves the cursor n runes forward. Advancing past the end is a
// scanner bug, not an input error: it is logged and ignored.
func (s *Scanner) advance(n int) {
	for ; n > 0; n-- {
		if s.classify(s.line, s.col) == boundOut {
			s.warnOverrun()
			return
		}
		s.line, s.col = s.step(s.line, s.col)
	}
}

func (s *Scanner) nextLine() {
	s.line++
	s.col = 0
}

// peekAfter returns the rune n positions ahead without moving the cursor.
// An empty line, or any position on a later line than the cursor, reads as
// '\n'. ok is false past the end of input.
func (s *Scanner) peekAfter(n int) (r rune, ok bool) {
	line, col := s.line, s.col
	for i := 0; i < n; i++ {
		line, col = s.step(line, col)
	}
	switch s.classify(line, col) {
	case boundOut:
		return 0, false
	case boundEmpty:
		return '\n', true
	}
	if line != s.line {
		return '\n', true
	}
	return s.lines[line][col], true
}

// current returns the rune under the cursor.
func (s *Scanner) current() (rune, bool) {
	if s.classify(s.line, s.col) != boundWithin {
		return 0, false
	}
	return s.lines[s.line][s.col], true
}

// currentOn is current restricted to one line. Words and numbers never
// continue past the end of the line they started on.
func (s *Scanner) currentOn(line int) (rune, bool) {
	if s.line != line {
		return 0, false
	}
	return s.current()
}

func (s *Scanner) loc() Location {
	return Location{Line: s.line, Column: s.col}
}

func (s *Scanner) warnOverrun() {
	caller := "unknown"
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	s.log.Warn("advance called with no input left",
		"caller", caller,
		"line", s.line,
		"column", s.col,
	)
}
