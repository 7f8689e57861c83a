package nyxlang

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInternal = errors.New("internal compiler error")

type Diagnostic interface {
	error
	Pos() Span
}

type Diagnostics []Diagnostic

func (d Diagnostics) Error() string {
	var sb strings.Builder
	for i, diag := range d {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(diag.Error())
	}
	return sb.String()
}

type LexErrorKind uint8

const (
	IllegalCharacter LexErrorKind = iota + 1
	UnterminatedDelimiter
)

func (k LexErrorKind) String() string {
	switch k {
	case IllegalCharacter:
		return "illegal character"
	case UnterminatedDelimiter:
		return "unterminated delimiter"
	}
	return fmt.Sprintf("LexErrorKind(%d)", k)
}

type LexError struct {
	Kind LexErrorKind
	Text string
	Span
}

var _ Diagnostic = new(LexError)

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %q at line %d", e.Kind, e.Text, e.Line)
}

// SyntaxError reports a construct the parser required but did not find.
// Want is TokenIllegal when no specific token kind was required.
type SyntaxError struct {
	Construct string
	Want      TokenKind
	Got       Token
}

var _ Diagnostic = new(SyntaxError)

func (e *SyntaxError) Pos() Span {
	return e.Got.Span
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	sb.WriteString("expected ")
	if e.Want != TokenIllegal {
		sb.WriteString(e.Want.describe())
		sb.WriteString(" for ")
	}
	sb.WriteString(e.Construct)
	if e.Got.Kind == TokenEOF {
		sb.WriteString(", but instead reached end of input")
	} else {
		fmt.Fprintf(&sb, ", but instead found %q", e.Got.Text)
	}
	fmt.Fprintf(&sb, " at line %d", e.Got.Line)
	return sb.String()
}
