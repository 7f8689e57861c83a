package nyxlang

import "fmt"

// Span is a half-open byte range with the 1-based line of its first byte.
type Span struct {
	Start int
	End   int
	Line  int
}

func (s Span) Pos() Span {
	return s
}

func cover(from, to Span) Span {
	return Span{
		Start: from.Start,
		End:   to.End,
		Line:  from.Line,
	}
}

type Token struct {
	Kind TokenKind
	Text string
	Span
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d-%d\t%s\t%q", t.Line, t.Start, t.End, t.Kind, t.Text)
}

type TokenKind uint8

const (
	TokenIllegal TokenKind = iota
	TokenEOF
	TokenIdentifier
	TokenInt
	TokenFloat

	TokenLet
	TokenReturn

	// two-character operators, must stay before the one-character ones
	TokenEq
	TokenNotEq
	TokenGreaterEq
	TokenLessEq
	TokenAndAnd
	TokenOrOr
	TokenIncr
	TokenDecr
	TokenPower
	TokenAddAssign
	TokenSubAssign
	TokenMulAssign
	TokenDivAssign
	TokenModAssign
	TokenShl
	TokenShr
	TokenAndAssign
	TokenOrAssign
	TokenXorAssign
	TokenArrow

	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenGreater
	TokenLess
	TokenBang
	TokenAssign
	TokenAmp
	TokenPipe
	TokenCaret
	TokenTilde
	TokenQuestion
	TokenColon
	TokenSemicolon
	TokenComma
	TokenDot
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace

	numTokenKinds
)

var tokenNames = [numTokenKinds]string{
	TokenIllegal:    "ILLEGAL",
	TokenEOF:        "EOF",
	TokenIdentifier: "IDENTIFIER",
	TokenInt:        "INT",
	TokenFloat:      "FLOAT",

	TokenLet:    "let",
	TokenReturn: "return",

	TokenEq:        "==",
	TokenNotEq:     "!=",
	TokenGreaterEq: ">=",
	TokenLessEq:    "<=",
	TokenAndAnd:    "&&",
	TokenOrOr:      "||",
	TokenIncr:      "++",
	TokenDecr:      "--",
	TokenPower:     "**",
	TokenAddAssign: "+=",
	TokenSubAssign: "-=",
	TokenMulAssign: "*=",
	TokenDivAssign: "/=",
	TokenModAssign: "%=",
	TokenShl:       "<<",
	TokenShr:       ">>",
	TokenAndAssign: "&=",
	TokenOrAssign:  "|=",
	TokenXorAssign: "^=",
	TokenArrow:     "=>",

	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenSlash:     "/",
	TokenPercent:   "%",
	TokenGreater:   ">",
	TokenLess:      "<",
	TokenBang:      "!",
	TokenAssign:    "=",
	TokenAmp:       "&",
	TokenPipe:      "|",
	TokenCaret:     "^",
	TokenTilde:     "~",
	TokenQuestion:  "?",
	TokenColon:     ":",
	TokenSemicolon: ";",
	TokenComma:     ",",
	TokenDot:       ".",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
}

func (k TokenKind) String() string {
	if k < numTokenKinds {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

func (k TokenKind) IsKeyword() bool {
	return k >= TokenLet && k <= TokenReturn
}

func (k TokenKind) IsOperator() bool {
	return k >= TokenEq && k < numTokenKinds
}

// describe renders a kind for messages: structural kinds by name, the rest quoted.
func (k TokenKind) describe() string {
	if k.IsKeyword() || k.IsOperator() {
		return "'" + k.String() + "'"
	}
	return k.String()
}

var keywords = map[string]TokenKind{
	"let":    TokenLet,
	"return": TokenReturn,
}

type operator struct {
	text string
	kind TokenKind
}

// operators is ordered for longest-prefix matching.
var operators = func() (ret []operator) {
	for kind := TokenEq; kind < numTokenKinds; kind++ {
		ret = append(ret, operator{
			text: tokenNames[kind],
			kind: kind,
		})
	}
	return
}()
