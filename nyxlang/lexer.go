package nyxlang

import (
	"strings"
	"unicode/utf8"
)

type Lexer struct {
	src  string
	pos  int
	line int

	tokens []Token
	diags  Diagnostics
}

// Lex never stops at a bad span: each one is recorded and skipped.
// The returned tokens always end with exactly one EOF token.
func Lex(source *Source) ([]Token, Diagnostics) {
	l := &Lexer{
		src:  source.Content,
		line: 1,
	}
	for l.pos < len(l.src) {
		l.scan()
	}
	l.tokens = append(l.tokens, Token{
		Kind: TokenEOF,
		Span: Span{
			Start: l.pos,
			End:   l.pos,
			Line:  l.line,
		},
	})
	return l.tokens, l.diags
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *Lexer) emit(kind TokenKind, text string, start int, line int) {
	l.tokens = append(l.tokens, Token{
		Kind: kind,
		Text: text,
		Span: Span{
			Start: start,
			End:   l.pos,
			Line:  line,
		},
	})
}

func (l *Lexer) scan() {
	c := l.src[l.pos]
	switch {
	case isSpace(c):
		l.skipSpace()
	case c == '/' && l.peekAt(1) == '/':
		l.skipLineComment()
	case c == '/' && l.peekAt(1) == '*':
		l.skipBlockComment()
	case isLetter(c) || c == '_':
		l.scanWord()
	case isDigit(c):
		l.scanNumber()
	default:
		l.scanOperator()
	}
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		if l.src[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

func (l *Lexer) skipBlockComment() {
	start, line := l.pos, l.line
	l.pos += 2
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peekAt(1) == '/' {
			l.pos += 2
			return
		}
		if l.src[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
	l.diags = append(l.diags, &LexError{
		Kind: UnterminatedDelimiter,
		Text: "/*",
		Span: Span{
			Start: start,
			End:   l.pos,
			Line:  line,
		},
	})
}

func (l *Lexer) scanWord() {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			break
		}
		l.pos++
	}
	text := l.src[start:l.pos]
	kind := TokenIdentifier
	if kw, ok := keywords[text]; ok {
		kind = kw
	}
	l.emit(kind, text, start, l.line)
}

func (l *Lexer) scanNumber() {
	start := l.pos
	kind := TokenInt
	var buf strings.Builder
loop:
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isDigit(c):
			buf.WriteByte(c)
		case c == '_':
		case c == '.' && kind == TokenInt:
			kind = TokenFloat
			buf.WriteByte(c)
		default:
			break loop
		}
		l.pos++
	}
	l.emit(kind, buf.String(), start, l.line)
}

func (l *Lexer) scanOperator() {
	start := l.pos
	rest := l.src[l.pos:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op.text) {
			l.pos += len(op.text)
			l.emit(op.kind, op.text, start, l.line)
			return
		}
	}
	_, size := utf8.DecodeRuneInString(rest)
	l.pos += size
	l.diags = append(l.diags, &LexError{
		Kind: IllegalCharacter,
		Text: rest[:size],
		Span: Span{
			Start: start,
			End:   l.pos,
			Line:  l.line,
		},
	})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
