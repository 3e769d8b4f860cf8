package lexer

import (
	"strings"
)

// Lex tokenizes source and applies the off-side rule: every Newline token
// is followed by the synthetic Indent/Dedent tokens implied by the width of
// the upcoming line's indentation. The returned stream is ordered by span
// start; synthetic tokens carry a zero-width span at the offset where the
// new logical line begins.
//
// Errors never abort the pass. They appear as KindError entries in the
// stream and scanning continues, so callers decide whether any error is
// fatal.
func Lex(source string) []Token {
	sc := NewScanner(source)

	// Indentation widths of the currently open blocks, innermost last.
	// The bottom 0 is the implicit top-level block and is never popped.
	stack := []int{0}
	var out []Token

	for {
		tok := sc.Next()
		if tok.Kind == KindEOF {
			break
		}
		out = append(out, tok)
		if tok.Kind != KindNewline {
			continue
		}

		width := indentWidth(source, tok.Span)
		at := Span{tok.Span.End, tok.Span.End}
		switch top := stack[len(stack)-1]; {
		case width > top:
			stack = append(stack, width)
			out = append(out, Token{Kind: KindIndent, Span: at})
		case width < top:
			for stack[len(stack)-1] > width {
				stack = stack[:len(stack)-1]
				out = append(out, Token{Kind: KindDedent, Span: at})
			}
			if stack[len(stack)-1] != width {
				// The new width matches no open block.
				out = append(out, Token{Kind: KindError, Span: at, Err: ErrInconsistentDedent})
			}
		}
	}

	// Close every block still open at end of input.
	eof := Span{len(source), len(source)}
	for len(stack) > 1 {
		stack = stack[:len(stack)-1]
		out = append(out, Token{Kind: KindDedent, Span: eof})
	}
	return out
}

// indentWidth counts the characters after the final newline of a Newline
// token. Tabs count as one character each; there is no tab expansion.
func indentWidth(source string, sp Span) int {
	text := source[sp.Start:sp.End]
	return len(text) - strings.LastIndexByte(text, '\n') - 1
}
