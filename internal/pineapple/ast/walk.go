package ast

// Walk traverses the tree rooted at node depth-first, calling fn for each
// node. If fn returns false, the children of that node are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *LetStmt:
		if n.Name != nil {
			Walk(n.Name, fn)
		}

		Walk(n.Value, fn)

	case *ReturnStmt:
		Walk(n.Value, fn)

	case *ExprStmt:
		Walk(n.Expr, fn)

	case *FunctionCall:
		Walk(n.Callee, fn)

		for _, arg := range n.Arguments {
			Walk(arg, fn)
		}

	case *IndexAccess:
		Walk(n.Base, fn)
		Walk(n.Index, fn)
	}
}

// Inspect walks every statement of the program in order.
func Inspect(program Program, fn func(Node) bool) {
	for _, stmt := range program {
		Walk(stmt, fn)
	}
}
