package nyxlang

type Node interface {
	Pos() Span
}

type Expr interface {
	Node
	exprNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type IntLit struct {
	Span
	Text string
}

type FloatLit struct {
	Span
	Text string
}

// Ident holds a plain or dotted name; a qualified name is one node, never a chain.
type Ident struct {
	Span
	Qualified bool
	Name      string
}

type Call struct {
	Span
	Callee *Ident
	Args   []Expr
}

type Grouping struct {
	Span
	Inner Expr
}

type Unary struct {
	Span
	Op      TokenKind
	Operand Expr
}

type Binary struct {
	Span
	Left  Expr
	Op    TokenKind
	Right Expr
}

func (*IntLit) exprNode()   {}
func (*FloatLit) exprNode() {}
func (*Ident) exprNode()    {}
func (*Call) exprNode()     {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}

// Decl is a `let` binding when IsNew, a reassignment otherwise.
type Decl struct {
	Span
	IsNew bool
	Ident *Ident
	Value Expr
}

type CallStmt struct {
	Span
	Callee *Ident
	Args   []Expr
}

type Block struct {
	Span
	Stmts []Stmt
}

type Root struct {
	Span
	Block *Block
}

func (*Decl) stmtNode()     {}
func (*CallStmt) stmtNode() {}
func (*Block) stmtNode()    {}
func (*Root) stmtNode()     {}
