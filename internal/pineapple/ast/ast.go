package ast

var (
	_ Expr = (*FunctionCall)(nil)
	_ Expr = (*Identifier)(nil)
	_ Expr = (*IndexAccess)(nil)
	_ Expr = (*StringLiteral)(nil)

	_ Literal = (*StringLiteral)(nil)

	_ Stmt = (*BlankStmt)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*LetStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
)

// Node is implemented by every expression and statement.
type Node interface {
	isNode()
}

type Expr interface {
	Node
	isExpr()
}

type Literal interface {
	Expr
	isLiteral()
}

type Stmt interface {
	Node
	isStmt()
}

// Program is the list of parsed statements in source order.
type Program []Stmt

type (
	FunctionCall struct {
		Callee    Expr
		Arguments []Expr
	}

	Identifier struct {
		Name string
	}

	// IndexAccess is reserved: no token sequence produces it yet.
	IndexAccess struct {
		Base  Expr
		Index Expr
	}

	StringLiteral struct {
		Value string
	}
)

type (
	// BlankStmt marks an intentionally empty line. Reserved: the parser
	// never produces it.
	BlankStmt struct{}

	ExprStmt struct {
		Expr Expr
	}

	LetStmt struct {
		Name  *Identifier
		Value Expr
	}

	// ReturnStmt is reserved: there is no return keyword yet.
	ReturnStmt struct {
		Value Expr
	}
)

func (e FunctionCall) isNode()  {}
func (e Identifier) isNode()    {}
func (e IndexAccess) isNode()   {}
func (e StringLiteral) isNode() {}

func (e FunctionCall) isExpr()  {}
func (e Identifier) isExpr()    {}
func (e IndexAccess) isExpr()   {}
func (e StringLiteral) isExpr() {}

func (e StringLiteral) isLiteral() {}

func (s BlankStmt) isNode()  {}
func (s ExprStmt) isNode()   {}
func (s LetStmt) isNode()    {}
func (s ReturnStmt) isNode() {}

func (s BlankStmt) isStmt()  {}
func (s ExprStmt) isStmt()   {}
func (s LetStmt) isStmt()    {}
func (s ReturnStmt) isStmt() {}
