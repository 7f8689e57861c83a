package reports

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/reusee/dscope"
	"github.com/reusee/nyx/nyxlang"
)

func init() {
	color.NoColor = true
}

func compile(name, content string) (*nyxlang.Source, error) {
	src := nyxlang.NewSource(name, content)
	tokens, diags := nyxlang.Lex(src)
	if len(diags) > 0 {
		return src, diags
	}
	_, err := nyxlang.Parse(tokens)
	return src, err
}

func TestRenderSyntaxError(t *testing.T) {
	src, err := compile("main.nyx", "print(1)\nlet x = foo(1,, 2)\n")
	if err == nil {
		t.Fatal("should error")
	}
	buf := new(bytes.Buffer)
	Render(buf, src, err)
	want := `main.nyx:2:15: error: expected expression, but instead found "," at line 2
let x = foo(1,, 2)
              ^
1 error
`
	if buf.String() != want {
		t.Fatalf("got\n%s", buf.String())
	}
}

func TestRenderLexErrors(t *testing.T) {
	src, err := compile("x.nyx", "f(1)\n\tg(é)\n/* open")
	if err == nil {
		t.Fatal("should error")
	}
	buf := new(bytes.Buffer)
	Render(buf, src, err)
	want := "x.nyx:2:4: error: illegal character \"é\" at line 2\n" +
		"\tg(é)\n" +
		"\t  ^\n" +
		"x.nyx:3:1: error: unterminated delimiter \"/*\" at line 3\n" +
		"/* open\n" +
		"^~~~~~~\n" +
		"2 errors\n"
	if buf.String() != want {
		t.Fatalf("got\n%q", buf.String())
	}
}

func TestRenderEndOfInput(t *testing.T) {
	src, err := compile("eof.nyx", "f(")
	buf := new(bytes.Buffer)
	Render(buf, src, err)
	want := `eof.nyx:1:3: error: expected expression, but instead reached end of input at line 1
f(
  ^
1 error
`
	if buf.String() != want {
		t.Fatalf("got\n%s", buf.String())
	}
}

func TestRenderPlainError(t *testing.T) {
	buf := new(bytes.Buffer)
	Render(buf, nyxlang.NewSource("a", ""), errors.New("boom"))
	if buf.String() != "error: boom\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestReport(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Output {
			return buf
		},
	).Call(func(
		report Report,
	) {
		src, err := compile("r.nyx", "let = 1")
		report(src, err)
	})
	if !bytes.Contains(buf.Bytes(), []byte("r.nyx:1:5: error: expected IDENTIFIER for declaration")) {
		t.Fatalf("got %s", buf.String())
	}
}
