package nyxlang

import (
	"errors"
	"fmt"
)

// maxNesting bounds nested expressions, unary chains and binary folds so deep
// input is reported instead of exhausting the stack.
const maxNesting = 1000

type parser struct {
	cur   *Cursor
	depth int
}

// nest enters one nesting level; the caller must call p.depth-- when done, even on error.
func (p *parser) nest() error {
	p.depth++
	if p.depth > maxNesting {
		return p.fail(fmt.Sprintf("expression nesting of at most %d levels", maxNesting), TokenIllegal)
	}
	return nil
}

// Parse builds a Root from tokens. Syntax errors are collected statement by
// statement and returned together as Diagnostics.
func Parse(tokens []Token) (*Root, error) {
	p := &parser{
		cur: NewCursor(tokens),
	}
	block, diags := p.block()
	if len(diags) > 0 {
		return nil, diags
	}
	return &Root{
		Span:  block.Span,
		Block: block,
	}, nil
}

// ParseExpr parses tokens holding exactly one expression.
func ParseExpr(tokens []Token) (Expr, error) {
	p := &parser{
		cur: NewCursor(tokens),
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.cur.AtEnd() {
		return nil, p.fail("end of input", TokenIllegal)
	}
	return expr, nil
}

func (p *parser) fail(construct string, want TokenKind) *SyntaxError {
	return &SyntaxError{
		Construct: construct,
		Want:      want,
		Got:       p.cur.Peek(),
	}
}

func (p *parser) block() (*Block, Diagnostics) {
	var stmts []Stmt
	var diags Diagnostics
	start := p.cur.Peek().Span

	for !p.cur.AtEnd() {
		if p.cur.Is(TokenSemicolon) {
			p.cur.Next()
			continue
		}
		mark := p.cur.Mark()
		stmt, err := p.statement()
		if err != nil {
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				syntaxErr = p.fail("statement", TokenIllegal)
			}
			diags = append(diags, syntaxErr)
			p.skipStatement(mark)
			continue
		}
		stmts = append(stmts, stmt)
		if p.cur.Is(TokenSemicolon) {
			p.cur.Next()
		}
	}

	span := start
	if len(stmts) > 0 {
		span = cover(stmts[0].Pos(), stmts[len(stmts)-1].Pos())
	}
	return &Block{
		Span:  span,
		Stmts: stmts,
	}, diags
}

// skipStatement moves past a failed statement: at least one token, then up to
// and including the next ';', or up to a 'let' or the first token of a new line
// outside any brackets opened since mark.
func (p *parser) skipStatement(mark int) {
	p.cur.Reset(mark)
	open := 0
	prev := p.cur.Next()
	open += bracketDelta(prev.Kind)
	for !p.cur.AtEnd() {
		tok := p.cur.Peek()
		if tok.Kind == TokenSemicolon {
			p.cur.Next()
			return
		}
		if tok.Kind == TokenLet || (tok.Line > prev.Line && open <= 0) {
			return
		}
		prev = p.cur.Next()
		open += bracketDelta(prev.Kind)
	}
}

func bracketDelta(kind TokenKind) int {
	switch kind {
	case TokenLParen, TokenLBracket, TokenLBrace:
		return 1
	case TokenRParen, TokenRBracket, TokenRBrace:
		return -1
	}
	return 0
}
