package nyxlang

import (
	"errors"
	"strings"
	"testing"
)

func generate(t *testing.T, src string, options GenerateOptions) (string, error) {
	t.Helper()
	root, err := parse(t, src)
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	return Generate(root, options)
}

func entryBody(t *testing.T, unit string) []string {
	t.Helper()
	_, body, ok := strings.Cut(unit, "int main(void) {\n")
	if !ok {
		t.Fatalf("no entry point in %q", unit)
	}
	body, _, ok = strings.Cut(body, "}\n")
	if !ok {
		t.Fatalf("entry point not closed in %q", unit)
	}
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestGenerateSingleCall(t *testing.T) {
	unit, err := generate(t, "print(1, 2)", DefaultGenerateOptions())
	if err != nil {
		t.Fatal(err)
	}
	body := entryBody(t, unit)
	if len(body) != 1 || body[0] != "print(1, 2);" {
		t.Fatalf("got %q", body)
	}
	if strings.Count(unit, "int main(void)") != 1 {
		t.Fatalf("got %s", unit)
	}
}

func TestGenerateUnit(t *testing.T) {
	unit, err := generate(t, "print(1, 2.5)\nio.flush(f(x), -y, (a + b) * 3)", DefaultGenerateOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := `#include <stdio.h>

int main(void) {
    print(1, 2.5);
    io.flush(f(x), -y, (a + b) * 3);
}
`
	if unit != want {
		t.Fatalf("got\n%s", unit)
	}
}

func TestGenerateOptions(t *testing.T) {
	unit, err := generate(t, "run()", GenerateOptions{
		Entry:    "entry",
		Indent:   2,
		Includes: []string{"stdio.h", "stdlib.h"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "#include <stdio.h>\n#include <stdlib.h>\n\nint entry(void) {\n  run();\n}\n"
	if unit != want {
		t.Fatalf("got %q", unit)
	}

	unit, err = generate(t, "run()", GenerateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if unit != "int main(void) {\nrun();\n}\n" {
		t.Fatalf("got %q", unit)
	}
}

func TestGenerateNestedUnary(t *testing.T) {
	unit, err := generate(t, "f(- -x, !-y, 1_000.25)", GenerateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if body := entryBody(t, unit); body[0] != "f(-(-x), !(-y), 1000.25);" {
		t.Fatalf("got %q", body)
	}
}

func TestGenerateEmptyBlock(t *testing.T) {
	unit, err := generate(t, "", DefaultGenerateOptions())
	if err != nil {
		t.Fatal(err)
	}
	if body := entryBody(t, unit); len(body) != 0 {
		t.Fatalf("got %q", body)
	}
}

func TestGenerateRejectsDeclaration(t *testing.T) {
	for _, src := range []string{
		"let x = 1",
		"print(1)\nx = 2",
	} {
		_, err := generate(t, src, DefaultGenerateOptions())
		if !errors.Is(err, ErrInternal) {
			t.Fatalf("%q: got %v", src, err)
		}
		var diags Diagnostics
		if errors.As(err, &diags) {
			t.Fatalf("%q: internal error reported as diagnostics", src)
		}
	}
}

func TestGenerateRejectsForeignNodes(t *testing.T) {
	root := &Root{
		Block: &Block{
			Stmts: []Stmt{
				&Block{},
			},
		},
	}
	if _, err := Generate(root, DefaultGenerateOptions()); !errors.Is(err, ErrInternal) {
		t.Fatalf("got %v", err)
	}
	if _, err := Generate(nil, DefaultGenerateOptions()); !errors.Is(err, ErrInternal) {
		t.Fatalf("got %v", err)
	}
}

func TestHeader(t *testing.T) {
	if got := Header(DefaultGenerateOptions()); got != "#include <stdio.h>\n" {
		t.Fatalf("got %q", got)
	}
}
