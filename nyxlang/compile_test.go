package nyxlang

import (
	"errors"
	"testing"
)

func TestCompile(t *testing.T) {
	out, err := Compile(NewSource("test", "print(1, 2)\n"), DefaultGenerateOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Tokens) != 7 {
		t.Fatalf("got %v", out.Tokens)
	}
	if out.Root == nil || len(out.Root.Block.Stmts) != 1 {
		t.Fatalf("got %v", out.Root)
	}
	if out.C != "#include <stdio.h>\n\nint main(void) {\n    print(1, 2);\n}\n" {
		t.Fatalf("got %q", out.C)
	}
}

func TestCompileStopsAtLexErrors(t *testing.T) {
	out, err := Compile(NewSource("test", "print(1) @ print(2 $"), DefaultGenerateOptions())
	var diags Diagnostics
	if !errors.As(err, &diags) || len(diags) != 2 {
		t.Fatalf("got %v", err)
	}
	for _, diag := range diags {
		if _, ok := diag.(*LexError); !ok {
			t.Fatalf("got %T", diag)
		}
	}
	if out.Tokens == nil || out.Root != nil || out.C != "" {
		t.Fatalf("got %+v", out)
	}
}

func TestCompileStopsAtSyntaxErrors(t *testing.T) {
	out, err := Compile(NewSource("test", "print(1,,2)"), DefaultGenerateOptions())
	var diags Diagnostics
	if !errors.As(err, &diags) || len(diags) != 1 {
		t.Fatalf("got %v", err)
	}
	if out.Root != nil || out.C != "" {
		t.Fatalf("got %+v", out)
	}
}

func TestCompileInternalError(t *testing.T) {
	out, err := Compile(NewSource("test", "let x = 1"), DefaultGenerateOptions())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("got %v", err)
	}
	if out.Root == nil {
		t.Fatal()
	}
}
