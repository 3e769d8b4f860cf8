package lexer

import (
	"errors"
	"fmt"
)

// Kind represents the type of token identified by the lexer.
type Kind uint8

const (
	KindError Kind = iota
	KindEOF
	KindDef        // def
	KindIdentifier // one or more ASCII letters
	KindLParen     // (
	KindRParen     // )
	KindArrow      // ->
	KindColon      // :
	KindNewline    // newline run plus the next line's indentation
	KindIndent     // synthetic, block opened
	KindDedent     // synthetic, block closed
	KindReturn     // return
	KindInteger    // decimal int64 literal
)

// The two recoverable error conditions. Both appear as KindError entries in
// the stream; Token.Err tells them apart.
var (
	ErrUnrecognizedToken  = errors.New("unrecognized token")
	ErrInconsistentDedent = errors.New("inconsistent dedentation")
)

// Span is a half-open byte range [Start, End) into the source text.
// Synthetic tokens carry a zero-width span at their triggering offset.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is one entry of the output stream. Only identifiers and integers
// carry a payload: Text is a substring of the original source (shares its
// backing array, never a copy), Value is the parsed literal. Err is set
// only on KindError entries.
type Token struct {
	Kind  Kind
	Span  Span
	Text  string
	Value int64
	Err   error
}

func (t Token) String() string {
	switch t.Kind {
	case KindError:
		return fmt.Sprintf("Error(%v)", t.Err)
	case KindEOF:
		return "EOF"
	case KindDef:
		return "Definition"
	case KindIdentifier:
		return fmt.Sprintf("Identifier(%q)", t.Text)
	case KindLParen:
		return "LeftParentheses"
	case KindRParen:
		return "RightParentheses"
	case KindArrow:
		return "Arrow"
	case KindColon:
		return "Colon"
	case KindNewline:
		return "Newline"
	case KindIndent:
		return "Indentation"
	case KindDedent:
		return "Deindentation"
	case KindReturn:
		return "Return"
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", t.Value)
	}
	return fmt.Sprintf("Kind(%d)", t.Kind)
}
