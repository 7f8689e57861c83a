package debugs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/nyx/nyxlang"
)

func writeScript(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "inspect.star")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInspect(t *testing.T) {
	src := nyxlang.NewSource("test", "io.print(1, x + 2)")
	tokens, _ := nyxlang.Lex(src)
	root, err := nyxlang.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Output {
			return buf
		},
	).Call(func(
		inspect Inspect,
	) {
		script := writeScript(t, `
print(len(tokens))
print([t["Kind"] for t in tokens if t["Kind"] == "IDENTIFIER"])
stmt = ast["Block"]["Stmts"][0]
print(stmt["_type"], stmt["Callee"]["Name"], stmt["Callee"]["Qualified"])
print(stmt["Args"][1]["_type"], stmt["Args"][1]["Op"])
print(type(lower) != "NoneType")
`)
		if err := inspect(context.Background(), script, map[string]any{
			"tokens": tokens,
			"ast":    root,
			"lower":  func(s string) string { return strings.ToLower(s) },
		}); err != nil {
			t.Fatal(err)
		}
	})

	want := `11
["IDENTIFIER", "IDENTIFIER", "IDENTIFIER"]
CallStmt io.print True
Binary +
True
`
	if buf.String() != want {
		t.Fatalf("got\n%s", buf.String())
	}
}

func TestInspectScriptError(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() Output {
			return new(bytes.Buffer)
		},
	).Call(func(
		inspect Inspect,
	) {
		script := writeScript(t, "fail('no main call')\n")
		err := inspect(context.Background(), script, nil)
		if err == nil || !strings.Contains(err.Error(), "no main call") {
			t.Fatalf("got %v", err)
		}

		err = inspect(context.Background(), filepath.Join(t.TempDir(), "missing.star"), nil)
		if err == nil {
			t.Fatal("should error")
		}
	})
}
