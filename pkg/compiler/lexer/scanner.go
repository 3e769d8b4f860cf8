package lexer

import (
	"strconv"
	"unicode/utf8"
)

// Scanner performs raw lexical analysis over source text. It produces
// every token except the synthetic Indent/Dedent pair; see Lex for the
// full off-side pass. The scanner is a pure cursor over the input and
// keeps no state beyond its position.
type Scanner struct {
	source string
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Next returns the next raw token. Once the input is exhausted it returns
// KindEOF forever. Unrecognized input yields a single KindError token
// covering the minimal offending unit and scanning resumes right after it.
func (s *Scanner) Next() Token {
	s.skipBlanks()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Span: Span{s.cursor, s.cursor}}
	}

	start := s.cursor
	ch := s.source[s.cursor]

	switch {
	case ch == '\n':
		return s.scanNewline()
	case ch == '(':
		s.cursor++
		return Token{Kind: KindLParen, Span: Span{start, s.cursor}}
	case ch == ')':
		s.cursor++
		return Token{Kind: KindRParen, Span: Span{start, s.cursor}}
	case ch == ':':
		s.cursor++
		return Token{Kind: KindColon, Span: Span{start, s.cursor}}
	case ch == '-' && s.peek() == '>':
		s.cursor += 2
		return Token{Kind: KindArrow, Span: Span{start, s.cursor}}
	case isDigit(ch):
		return s.scanInteger()
	case isAlpha(ch):
		return s.scanIdentifier()
	}

	// One error entry per unmatched character, not per byte, so a
	// multibyte rune never splits into several entries.
	_, width := utf8.DecodeRuneInString(s.source[s.cursor:])
	s.cursor += width
	return Token{Kind: KindError, Span: Span{start, s.cursor}, Err: ErrUnrecognizedToken}
}

// skipBlanks advances past horizontal whitespace. Newlines are tokens of
// their own and are never skipped here.
func (s *Scanner) skipBlanks() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch != ' ' && ch != '\t' {
			break
		}
		s.cursor++
	}
}

// scanNewline consumes a run of newlines, any interleaved blank lines, and
// the leading whitespace of the next non-blank line. The segment after the
// final '\n' is the raw indentation of the upcoming logical line.
func (s *Scanner) scanNewline() Token {
	start := s.cursor
	s.cursor++
	for {
		for s.cursor < len(s.source) && (s.source[s.cursor] == ' ' || s.source[s.cursor] == '\t') {
			s.cursor++
		}
		if s.cursor < len(s.source) && s.source[s.cursor] == '\n' {
			s.cursor++
			continue
		}
		break
	}
	return Token{Kind: KindNewline, Span: Span{start, s.cursor}}
}

func (s *Scanner) scanInteger() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	span := Span{start, s.cursor}

	value, err := strconv.ParseInt(s.source[start:s.cursor], 10, 64)
	if err != nil {
		// Out of int64 range. Reported like any other unmatched text.
		return Token{Kind: KindError, Span: span, Err: ErrUnrecognizedToken}
	}
	return Token{Kind: KindInteger, Span: span, Value: value}
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isAlpha(s.source[s.cursor]) {
		s.cursor++
	}
	span := Span{start, s.cursor}

	// Keywords win only on an exact match, so "definitely" stays an
	// identifier (maximal munch).
	switch s.source[start:s.cursor] {
	case "def":
		return Token{Kind: KindDef, Span: span}
	case "return":
		return Token{Kind: KindReturn, Span: span}
	}
	return Token{Kind: KindIdentifier, Span: span, Text: s.source[start:s.cursor]}
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
