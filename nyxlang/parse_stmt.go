package nyxlang

func (p *parser) statement() (Stmt, error) {
	switch p.cur.Peek().Kind {
	case TokenLet:
		return p.declaration()
	case TokenIdentifier:
		return p.callOrAssignment()
	}
	return nil, p.fail("statement", TokenIllegal)
}

func (p *parser) declaration() (Stmt, error) {
	mark := p.cur.Mark()
	let := p.cur.Next()

	ident, err := p.qualifiedName("declaration")
	if err != nil {
		p.cur.Reset(mark)
		return nil, err
	}

	if !p.cur.Is(TokenAssign) {
		err := p.fail("declaration", TokenAssign)
		p.cur.Reset(mark)
		return nil, err
	}
	p.cur.Next()

	value, err := p.expression()
	if err != nil {
		p.cur.Reset(mark)
		return nil, err
	}

	return &Decl{
		Span:  cover(let.Span, value.Pos()),
		IsNew: true,
		Ident: ident,
		Value: value,
	}, nil
}

func (p *parser) callOrAssignment() (Stmt, error) {
	mark := p.cur.Mark()
	ident, err := p.qualifiedName("statement")
	if err != nil {
		return nil, err
	}

	switch p.cur.Peek().Kind {

	case TokenLParen:
		args, closing, err := p.arguments()
		if err != nil {
			p.cur.Reset(mark)
			return nil, err
		}
		return &CallStmt{
			Span:   cover(ident.Span, closing.Span),
			Callee: ident,
			Args:   args,
		}, nil

	case TokenAssign:
		p.cur.Next()
		value, err := p.expression()
		if err != nil {
			p.cur.Reset(mark)
			return nil, err
		}
		return &Decl{
			Span:  cover(ident.Span, value.Pos()),
			IsNew: false,
			Ident: ident,
			Value: value,
		}, nil

	}

	err = p.fail("statement", TokenIllegal)
	p.cur.Reset(mark)
	return nil, err
}
