package interp

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// IntLit is an integer constant.
//
//	int x = 10;
//	         ^^  IntLit{Value: 10}
type IntLit struct {
	Value int
	Line  int
}

func (*IntLit) exprNode()        {}
func (l *IntLit) String() string { return fmt.Sprintf("%d", l.Value) }

// VarRef is a read of a named variable.
//
//	return x;
//	       ^  VarRef{Name: "x"}
type VarRef struct {
	Name string
	Line int
}

func (*VarRef) exprNode()        {}
func (v *VarRef) String() string { return v.Name }

// UnaryExpr represents Op Operand for prefix +, -, and !.
type UnaryExpr struct {
	Op      TokenType
	Operand Expr
	Line    int
}

func (*UnaryExpr) exprNode() {}
func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", operatorText(u.Op), u.Operand)
}

// BinaryExpr represents Left Op Right. Logical && and || live here too:
// both operands are always evaluated before the combination is applied.
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
	Line  int
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, operatorText(b.Op), b.Right)
}

// operatorText renders an operator TokenType as its source spelling.
func operatorText(tt TokenType) string {
	switch tt {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case NOT:
		return "!"
	case AND_LOGICAL:
		return "&&"
	case OR_LOGICAL:
		return "||"
	case EQUALS:
		return "=="
	case NOT_EQ:
		return "!="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case ASSIGN:
		return "="
	case PLUS_ASSIGN:
		return "+="
	case MINUS_ASSIGN:
		return "-="
	case STAR_ASSIGN:
		return "*="
	case SLASH_ASSIGN:
		return "/="
	case PERCENT_ASSIGN:
		return "%="
	}
	return tt.String()
}

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	stmtNode()
	String() string
}

// VarDecl represents  int name = expr;  Init is nil when the declaration
// has no initializer (the variable starts at 0).
type VarDecl struct {
	Name string
	Init Expr
	Line int
}

func (*VarDecl) stmtNode() {}
func (d *VarDecl) String() string {
	if d.Init == nil {
		return fmt.Sprintf("VarDecl(int %s)", d.Name)
	}
	return fmt.Sprintf("VarDecl(int %s = %s)", d.Name, d.Init)
}

// AssignStmt represents  name op value;  Op is ASSIGN or one of the five
// compound-assignment operators. i++ and i-- desugar to ASSIGN with
// value i+1 / i-1 before this node is built.
type AssignStmt struct {
	Name  string
	Op    TokenType
	Value Expr
	Line  int
}

func (*AssignStmt) stmtNode() {}
func (a *AssignStmt) String() string {
	return fmt.Sprintf("Assign(%s %s %s)", a.Name, operatorText(a.Op), a.Value)
}

// PrintfStmt represents printf(format, args...); Format holds the literal
// after escape processing.
type PrintfStmt struct {
	Format string
	Args   []Expr
	Line   int
}

func (*PrintfStmt) stmtNode() {}
func (p *PrintfStmt) String() string {
	if len(p.Args) == 0 {
		return fmt.Sprintf("Printf(%q)", p.Format)
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("Printf(%q, %s)", p.Format, strings.Join(parts, ", "))
}

// IfStmt represents if (cond) body [else elseBody]. Both branches run in
// a fresh scope.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil when there is no else branch
	Line int
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	if i.Else != nil {
		return fmt.Sprintf("If(%s, then=%d, else=%d)", i.Cond, len(i.Then), len(i.Else))
	}
	return fmt.Sprintf("If(%s, then=%d)", i.Cond, len(i.Then))
}

// WhileStmt represents while (cond) body.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	Line int
}

func (*WhileStmt) stmtNode() {}
func (w *WhileStmt) String() string {
	return fmt.Sprintf("While(%s, body=%d)", w.Cond, len(w.Body))
}

// ForStmt represents for (init; cond; post) body. Init and Post may be
// nil; a nil Cond loops forever.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Stmt
	Body []Stmt
	Line int
}

func (*ForStmt) stmtNode() {}
func (f *ForStmt) String() string {
	init, cond, post := "-", "-", "-"
	if f.Init != nil {
		init = f.Init.String()
	}
	if f.Cond != nil {
		cond = f.Cond.String()
	}
	if f.Post != nil {
		post = f.Post.String()
	}
	return fmt.Sprintf("For(%s; %s; %s, body=%d)", init, cond, post, len(f.Body))
}

// ReturnStmt represents return [expr]; a nil Expr returns 0.
type ReturnStmt struct {
	Expr Expr
	Line int
}

func (*ReturnStmt) stmtNode() {}
func (r *ReturnStmt) String() string {
	if r.Expr == nil {
		return "Return()"
	}
	return fmt.Sprintf("Return(%s)", r.Expr)
}

// BlockStmt represents { statement; ... } and runs its statements in a
// fresh scope. Comma-separated declaration lists use DeclGroup instead.
type BlockStmt struct {
	Stmts []Stmt
	Line  int
}

func (*BlockStmt) stmtNode() {}
func (b *BlockStmt) String() string {
	return fmt.Sprintf("Block(len=%d)", len(b.Stmts))
}

// DeclGroup groups the declarations of a comma-separated list into one
// statement. Unlike a block, it introduces no scope.
type DeclGroup struct {
	Decls []Stmt
	Line  int
}

func (*DeclGroup) stmtNode() {}
func (g *DeclGroup) String() string {
	parts := make([]string, len(g.Decls))
	for i, d := range g.Decls {
		parts[i] = d.String()
	}
	return fmt.Sprintf("DeclGroup(%s)", strings.Join(parts, ", "))
}

// EmptyStmt is the no-op produced by a stray semicolon.
type EmptyStmt struct {
	Line int
}

func (*EmptyStmt) stmtNode()        {}
func (s *EmptyStmt) String() string { return "Empty" }
