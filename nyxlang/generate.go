package nyxlang

import (
	"fmt"
	"strings"
)

type GenerateOptions struct {
	// Entry names the single function wrapping every statement.
	Entry    string
	Indent   int
	Includes []string
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Entry:    "main",
		Indent:   4,
		Includes: []string{"stdio.h"},
	}
}

// Generate lowers root into one C translation unit. Node kinds it cannot
// lower are reported as ErrInternal, never as user diagnostics.
func Generate(root *Root, options GenerateOptions) (string, error) {
	if root == nil || root.Block == nil {
		return "", wrap(fmt.Errorf("%w: nothing to generate", ErrInternal))
	}
	entry := options.Entry
	if entry == "" {
		entry = "main"
	}
	indent := strings.Repeat(" ", max(options.Indent, 0))

	var sb strings.Builder
	for _, include := range options.Includes {
		fmt.Fprintf(&sb, "#include <%s>\n", include)
	}
	if len(options.Includes) > 0 {
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "int %s(void) {\n", entry)
	for _, stmt := range root.Block.Stmts {
		line, err := lowerStmt(stmt)
		if err != nil {
			return "", err
		}
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}

// Header returns the include lines alone, for a companion header file.
func Header(options GenerateOptions) string {
	var sb strings.Builder
	for _, include := range options.Includes {
		fmt.Fprintf(&sb, "#include <%s>\n", include)
	}
	return sb.String()
}

func lowerStmt(stmt Stmt) (string, error) {
	switch stmt := stmt.(type) {
	case *CallStmt:
		return lowerCall(stmt.Callee, stmt.Args)
	}
	return "", unsupported(stmt)
}

func lowerExpr(expr Expr) (string, error) {
	switch expr := expr.(type) {

	case *IntLit:
		return expr.Text, nil

	case *FloatLit:
		return expr.Text, nil

	case *Ident:
		return expr.Name, nil

	case *Call:
		return lowerCall(expr.Callee, expr.Args)

	case *Grouping:
		inner, err := lowerExpr(expr.Inner)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil

	case *Unary:
		operand, err := lowerExpr(expr.Operand)
		if err != nil {
			return "", err
		}
		if _, ok := expr.Operand.(*Unary); ok {
			operand = "(" + operand + ")"
		}
		return expr.Op.String() + operand, nil

	case *Binary:
		left, err := lowerExpr(expr.Left)
		if err != nil {
			return "", err
		}
		right, err := lowerExpr(expr.Right)
		if err != nil {
			return "", err
		}
		return left + " " + expr.Op.String() + " " + right, nil

	}
	return "", unsupported(expr)
}

func lowerCall(callee *Ident, args []Expr) (string, error) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		s, err := lowerExpr(arg)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return callee.Name + "(" + strings.Join(parts, ", ") + ")", nil
}

func unsupported(node Node) error {
	if node == nil {
		return wrap(fmt.Errorf("%w: cannot lower nil node", ErrInternal))
	}
	return wrap(fmt.Errorf("%w: cannot lower %T at line %d", ErrInternal, node, node.Pos().Line))
}
