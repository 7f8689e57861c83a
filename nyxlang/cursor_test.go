package nyxlang

import "testing"

func TestCursor(t *testing.T) {
	tokens, _ := Lex(NewSource("test", "a b"))
	cur := NewCursor(tokens)

	mark := cur.Mark()
	if tok := cur.Next(); tok.Text != "a" {
		t.Fatalf("got %v", tok)
	}
	if !cur.Is(TokenLet, TokenIdentifier) {
		t.Fatal()
	}
	cur.Next()
	if !cur.AtEnd() {
		t.Fatal()
	}
	cur.Next()
	cur.Next()
	if tok := cur.Peek(); tok.Kind != TokenEOF {
		t.Fatalf("got %v", tok)
	}

	cur.Reset(mark)
	if tok := cur.Peek(); tok.Text != "a" {
		t.Fatalf("got %v", tok)
	}
}

func TestCursorEmpty(t *testing.T) {
	cur := NewCursor(nil)
	if !cur.AtEnd() {
		t.Fatal()
	}
	if tok := cur.Next(); tok.Kind != TokenEOF {
		t.Fatalf("got %v", tok)
	}
}
