package parser

import "github.com/adriyanbasu0/zr-sharp/pkg/token"

// Stmt represents a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() token.Position
}

// NodeInfo provides the source position common to all AST nodes.
type NodeInfo struct {
	Position token.Position
}

// Pos returns the node's source position.
func (n *NodeInfo) Pos() token.Position {
	return n.Position
}

// DeclaredType is the type tag carried by a let annotation.
type DeclaredType int

// Declared type tags. TypeNone means the let had no annotation.
const (
	TypeNone DeclaredType = iota
	TypeInt32
	TypeInt64
	TypeFloat
	TypeBool
	TypeString
)

// String returns the source spelling of the declared type.
func (d DeclaredType) String() string {
	switch d {
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	default:
		return "none"
	}
}

// MarshalYAML renders the declared type by its source spelling.
func (d DeclaredType) MarshalYAML() (any, error) {
	return d.String(), nil
}

// ---------- Expression Types ----------

// NumberLit is a numeric literal. IsFloat is set when the literal text
// contained a decimal point; otherwise the literal is an int64.
type NumberLit struct {
	NodeInfo
	Text    string `yaml:"number"`
	IsFloat bool   `yaml:"float,omitempty"`
}

func (*NumberLit) exprNode() {}
func (*NumberLit) stmtNode() {}

// StringLit is a string literal.
type StringLit struct {
	NodeInfo
	Value string `yaml:"string"`
}

func (*StringLit) exprNode() {}
func (*StringLit) stmtNode() {}

// BoolLit is a boolean literal.
type BoolLit struct {
	NodeInfo
	Value bool `yaml:"bool"`
}

func (*BoolLit) exprNode() {}
func (*BoolLit) stmtNode() {}

// Ident is a variable reference.
type Ident struct {
	NodeInfo
	Name string `yaml:"ident"`
}

func (*Ident) exprNode() {}
func (*Ident) stmtNode() {}

// BinaryOp is a binary operation. Op carries the operator spelling as it
// appeared in source.
type BinaryOp struct {
	NodeInfo
	Op    string `yaml:"op"`
	Left  Expr   `yaml:"left"`
	Right Expr   `yaml:"right"`
}

func (*BinaryOp) exprNode() {}
func (*BinaryOp) stmtNode() {}

// ---------- Statement Types ----------

// LetStmt binds a name to the value of an expression, optionally
// converting it to a declared type.
type LetStmt struct {
	NodeInfo
	Name  string       `yaml:"let"`
	Type  DeclaredType `yaml:"type,omitempty"`
	Value Expr         `yaml:"value"`
}

func (*LetStmt) stmtNode() {}

// IfStmt is a conditional with an optional else block.
type IfStmt struct {
	NodeInfo
	Cond Expr   `yaml:"if"`
	Body *Block `yaml:"then"`
	Else *Block `yaml:"else,omitempty"`
}

func (*IfStmt) stmtNode() {}

// PrintStmt writes the value of its operand to standard output.
type PrintStmt struct {
	NodeInfo
	Value Expr `yaml:"print"`
}

func (*PrintStmt) stmtNode() {}

// LoadinStmt names another source file to include. The target never
// carries the source file extension; the loader appends it.
type LoadinStmt struct {
	NodeInfo
	Target string `yaml:"loadin"`
}

func (*LoadinStmt) stmtNode() {}

// Block is an ordered list of statements. The root of every parsed file
// is a Block. Capacity is bounded by MaxBlockStatements.
type Block struct {
	NodeInfo
	Statements []Stmt `yaml:"block"`
}

func (*Block) stmtNode() {}

// ---------- Reserved Node Types ----------
//
// These kinds exist in the type system but are never produced by the
// parser. The grammar reserves their keywords (func, return, while) so
// source using them fails to parse rather than silently binding them as
// identifiers.

// FuncDecl is a reserved node kind for user-defined functions.
type FuncDecl struct {
	NodeInfo
	Name   string
	Params []string
	Body   *Block
}

func (*FuncDecl) stmtNode() {}

// CallExpr is a reserved node kind for function calls.
type CallExpr struct {
	NodeInfo
	Callee string
	Args   []Expr
}

func (*CallExpr) exprNode() {}
func (*CallExpr) stmtNode() {}

// ReturnStmt is a reserved node kind for returning from a function.
type ReturnStmt struct {
	NodeInfo
	Value Expr
}

func (*ReturnStmt) stmtNode() {}

// WhileStmt is a reserved node kind for loops.
type WhileStmt struct {
	NodeInfo
	Cond Expr
	Body *Block
}

func (*WhileStmt) stmtNode() {}
