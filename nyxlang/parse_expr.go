package nyxlang

import "strings"

var (
	logicOrOps        = []TokenKind{TokenOrOr}
	logicAndOps       = []TokenKind{TokenAndAnd}
	equalityOps       = []TokenKind{TokenEq, TokenNotEq}
	relationalOps     = []TokenKind{TokenLess, TokenLessEq, TokenGreater, TokenGreaterEq}
	additiveOps       = []TokenKind{TokenPlus, TokenMinus}
	multiplicativeOps = []TokenKind{TokenStar, TokenSlash, TokenPercent}
	unaryOps          = []TokenKind{TokenBang, TokenMinus, TokenTilde}
)

func (p *parser) expression() (Expr, error) {
	defer func() {
		p.depth--
	}()
	if err := p.nest(); err != nil {
		return nil, err
	}
	return p.logicOr()
}

func (p *parser) logicOr() (Expr, error) {
	return p.binary(logicOrOps, p.logicAnd)
}

func (p *parser) logicAnd() (Expr, error) {
	return p.binary(logicAndOps, p.equality)
}

func (p *parser) equality() (Expr, error) {
	return p.binary(equalityOps, p.relational)
}

func (p *parser) relational() (Expr, error) {
	return p.binary(relationalOps, p.additive)
}

func (p *parser) additive() (Expr, error) {
	return p.binary(additiveOps, p.multiplicative)
}

func (p *parser) multiplicative() (Expr, error) {
	return p.binary(multiplicativeOps, p.unary)
}

// binary folds a left-associative chain of operands parsed by next.
func (p *parser) binary(ops []TokenKind, next func() (Expr, error)) (Expr, error) {
	mark := p.cur.Mark()
	left, err := next()
	if err != nil {
		p.cur.Reset(mark)
		return nil, err
	}
	// each fold deepens the left spine
	folds := 0
	defer func() {
		p.depth -= folds
	}()
	for p.cur.Is(ops...) {
		folds++
		if err := p.nest(); err != nil {
			p.cur.Reset(mark)
			return nil, err
		}
		op := p.cur.Next()
		right, err := next()
		if err != nil {
			p.cur.Reset(mark)
			return nil, err
		}
		left = &Binary{
			Span:  cover(left.Pos(), right.Pos()),
			Left:  left,
			Op:    op.Kind,
			Right: right,
		}
	}
	return left, nil
}

func (p *parser) unary() (Expr, error) {
	if !p.cur.Is(unaryOps...) {
		return p.primary()
	}
	defer func() {
		p.depth--
	}()
	if err := p.nest(); err != nil {
		return nil, err
	}
	mark := p.cur.Mark()
	op := p.cur.Next()
	operand, err := p.unary()
	if err != nil {
		p.cur.Reset(mark)
		return nil, err
	}
	return &Unary{
		Span:    cover(op.Span, operand.Pos()),
		Op:      op.Kind,
		Operand: operand,
	}, nil
}

func (p *parser) primary() (Expr, error) {
	tok := p.cur.Peek()
	switch tok.Kind {

	case TokenInt:
		p.cur.Next()
		return &IntLit{
			Span: tok.Span,
			Text: tok.Text,
		}, nil

	case TokenFloat:
		p.cur.Next()
		return &FloatLit{
			Span: tok.Span,
			Text: tok.Text,
		}, nil

	case TokenIdentifier:
		mark := p.cur.Mark()
		ident, err := p.qualifiedName("expression")
		if err != nil {
			return nil, err
		}
		if !p.cur.Is(TokenLParen) {
			return ident, nil
		}
		args, closing, err := p.arguments()
		if err != nil {
			p.cur.Reset(mark)
			return nil, err
		}
		return &Call{
			Span:   cover(ident.Span, closing.Span),
			Callee: ident,
			Args:   args,
		}, nil

	case TokenLParen:
		return p.grouping()

	}
	return nil, p.fail("expression", TokenIllegal)
}

func (p *parser) grouping() (Expr, error) {
	mark := p.cur.Mark()
	open := p.cur.Next()
	inner, err := p.expression()
	if err != nil {
		p.cur.Reset(mark)
		return nil, err
	}
	if !p.cur.Is(TokenRParen) {
		err := p.fail("grouped expression", TokenRParen)
		p.cur.Reset(mark)
		return nil, err
	}
	closing := p.cur.Next()
	return &Grouping{
		Span:  cover(open.Span, closing.Span),
		Inner: inner,
	}, nil
}

// qualifiedName reads IDENTIFIER ('.' IDENTIFIER)* into a single Ident.
func (p *parser) qualifiedName(construct string) (*Ident, error) {
	mark := p.cur.Mark()
	first := p.cur.Peek()
	if first.Kind != TokenIdentifier {
		return nil, p.fail(construct, TokenIdentifier)
	}
	p.cur.Next()

	last := first
	var name strings.Builder
	name.WriteString(first.Text)
	for p.cur.Is(TokenDot) {
		p.cur.Next()
		if !p.cur.Is(TokenIdentifier) {
			err := p.fail("qualified name", TokenIdentifier)
			p.cur.Reset(mark)
			return nil, err
		}
		last = p.cur.Next()
		name.WriteByte('.')
		name.WriteString(last.Text)
	}

	return &Ident{
		Span:      cover(first.Span, last.Span),
		Qualified: last != first,
		Name:      name.String(),
	}, nil
}

// arguments parses a parenthesized argument list. A trailing comma is
// accepted; an empty argument anywhere else is not.
func (p *parser) arguments() ([]Expr, Token, error) {
	mark := p.cur.Mark()
	if !p.cur.Is(TokenLParen) {
		return nil, Token{}, p.fail("function call arguments", TokenLParen)
	}
	p.cur.Next()
	if p.cur.Is(TokenRParen) {
		return nil, p.cur.Next(), nil
	}

	var args []Expr
	arg, err := p.expression()
	if err != nil {
		p.cur.Reset(mark)
		return nil, Token{}, err
	}
	args = append(args, arg)

	for {
		switch p.cur.Peek().Kind {

		case TokenComma:
			p.cur.Next()
			if p.cur.Is(TokenRParen) {
				return args, p.cur.Next(), nil
			}
			arg, err := p.expression()
			if err != nil {
				p.cur.Reset(mark)
				return nil, Token{}, err
			}
			args = append(args, arg)

		case TokenRParen:
			return args, p.cur.Next(), nil

		default:
			err := p.fail("function call arguments", TokenRParen)
			p.cur.Reset(mark)
			return nil, Token{}, err
		}
	}
}
