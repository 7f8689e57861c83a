package nyxc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/reusee/nyx/nyxlang"
)

func TestEvalLine(t *testing.T) {
	color.NoColor = true
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	if err := evalLine(stdout, stderr, "put(1 + 2)", nyxlang.GenerateOptions{Indent: 1}); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "int main(void) {\n put(1 + 2);\n}\n" {
		t.Fatalf("got %q", stdout.String())
	}

	stdout.Reset()
	if err := evalLine(stdout, stderr, "put(1 +)", nyxlang.GenerateOptions{}); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "<repl>:1:8: error: expected expression") {
		t.Fatalf("got %q", stderr.String())
	}
}

type failWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestEvalLineWriteError(t *testing.T) {
	err := evalLine(failWriter{}, new(bytes.Buffer), "put(1)", nyxlang.GenerateOptions{})
	if !errors.Is(err, errWriteFailed) {
		t.Fatalf("got %v", err)
	}

	// diagnostics never touch stdout
	if err := evalLine(failWriter{}, new(bytes.Buffer), "put(", nyxlang.GenerateOptions{}); err != nil {
		t.Fatalf("got %v", err)
	}
}
