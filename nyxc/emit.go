package nyxc

import "fmt"

// Emit selects the last stage to run and the form of its output.
type Emit string

const (
	EmitTokens Emit = "tokens"
	EmitAST    Emit = "ast"
	EmitC      Emit = "c"
)

func ParseEmit(s string) (Emit, error) {
	switch Emit(s) {
	case "", EmitC:
		return EmitC, nil
	case EmitTokens, EmitAST:
		return Emit(s), nil
	}
	return "", fmt.Errorf("unknown emit form %q, want tokens, ast or c", s)
}
