package nyxc

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/nyx/nyxlang"
)

func DumpTokens(w io.Writer, tokens []nyxlang.Token) {
	for _, token := range tokens {
		fmt.Fprintln(w, token.String())
	}
}

// DumpAST writes one node per line, children indented under their parent.
func DumpAST(w io.Writer, node nyxlang.Node) {
	dumpNode(w, node, 0)
}

func dumpNode(w io.Writer, node nyxlang.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	line := func(format string, args ...any) {
		span := node.Pos()
		fmt.Fprintf(w, "%s%s @%d:%d-%d\n", indent, fmt.Sprintf(format, args...), span.Line, span.Start, span.End)
	}

	switch node := node.(type) {

	case *nyxlang.Root:
		line("Root")
		dumpNode(w, node.Block, depth+1)

	case *nyxlang.Block:
		line("Block")
		for _, stmt := range node.Stmts {
			dumpNode(w, stmt, depth+1)
		}

	case *nyxlang.Decl:
		if node.IsNew {
			line("Decl let %s", node.Ident.Name)
		} else {
			line("Decl %s", node.Ident.Name)
		}
		dumpNode(w, node.Value, depth+1)

	case *nyxlang.CallStmt:
		line("CallStmt %s", node.Callee.Name)
		for _, arg := range node.Args {
			dumpNode(w, arg, depth+1)
		}

	case *nyxlang.Call:
		line("Call %s", node.Callee.Name)
		for _, arg := range node.Args {
			dumpNode(w, arg, depth+1)
		}

	case *nyxlang.IntLit:
		line("Int %s", node.Text)

	case *nyxlang.FloatLit:
		line("Float %s", node.Text)

	case *nyxlang.Ident:
		line("Ident %s", node.Name)

	case *nyxlang.Grouping:
		line("Grouping")
		dumpNode(w, node.Inner, depth+1)

	case *nyxlang.Unary:
		line("Unary %s", node.Op)
		dumpNode(w, node.Operand, depth+1)

	case *nyxlang.Binary:
		line("Binary %s", node.Op)
		dumpNode(w, node.Left, depth+1)
		dumpNode(w, node.Right, depth+1)

	default:
		fmt.Fprintf(w, "%s%T\n", indent, node)

	}
}
