package nyxlang

// Cursor walks a token slice. It never moves past the final EOF token.
type Cursor struct {
	tokens []Token
	pos    int
}

func NewCursor(tokens []Token) *Cursor {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		var eof Token
		eof.Kind = TokenEOF
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			eof.Span = Span{
				Start: last.End,
				End:   last.End,
				Line:  last.Line,
			}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	return &Cursor{
		tokens: tokens,
	}
}

func (c *Cursor) Peek() Token {
	return c.tokens[c.pos]
}

func (c *Cursor) Next() Token {
	tok := c.tokens[c.pos]
	if tok.Kind != TokenEOF {
		c.pos++
	}
	return tok
}

func (c *Cursor) Is(kinds ...TokenKind) bool {
	kind := c.tokens[c.pos].Kind
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (c *Cursor) AtEnd() bool {
	return c.tokens[c.pos].Kind == TokenEOF
}

func (c *Cursor) Mark() int {
	return c.pos
}

func (c *Cursor) Reset(mark int) {
	c.pos = mark
}
