package printer

import (
	"encoding/json"
	"fmt"

	"github.com/artuross/pineapple/internal/pineapple/ast"
)

type NodeKind string

const (
	NodeKindBlank  NodeKind = "blank"
	NodeKindCall   NodeKind = "call"
	NodeKindExpr   NodeKind = "expr"
	NodeKindIdent  NodeKind = "ident"
	NodeKindIndex  NodeKind = "index"
	NodeKindLet    NodeKind = "let"
	NodeKindReturn NodeKind = "return"
	NodeKindString NodeKind = "string"
)

type jsonNode struct {
	Kind      NodeKind   `json:"kind"`
	Name      string     `json:"name,omitempty"`
	Value     *string    `json:"value,omitempty"`
	Expr      *jsonNode  `json:"expr,omitempty"`
	Callee    *jsonNode  `json:"callee,omitempty"`
	Arguments []jsonNode `json:"arguments,omitempty"`
	Base      *jsonNode  `json:"base,omitempty"`
	Index     *jsonNode  `json:"index,omitempty"`
}

// MarshalJSON encodes the program as an indented array of tagged nodes.
func MarshalJSON(program ast.Program) ([]byte, error) {
	nodes := make([]jsonNode, 0, len(program))

	for index, stmt := range program {
		node, err := stmtToJSON(stmt)
		if err != nil {
			return nil, fmt.Errorf("encode statement %d: %w", index, err)
		}

		nodes = append(nodes, node)
	}

	return json.MarshalIndent(nodes, "", "  ")
}

func stmtToJSON(stmt ast.Stmt) (jsonNode, error) {
	switch stmt := stmt.(type) {
	case *ast.BlankStmt:
		return jsonNode{Kind: NodeKindBlank}, nil

	case *ast.LetStmt:
		if stmt.Name == nil {
			return jsonNode{}, fmt.Errorf("let without name: %w", ErrUnsupportedNode)
		}

		value, err := exprToJSON(stmt.Value)
		if err != nil {
			return jsonNode{}, err
		}

		return jsonNode{Kind: NodeKindLet, Name: stmt.Name.Name, Expr: &value}, nil

	case *ast.ReturnStmt:
		value, err := exprToJSON(stmt.Value)
		if err != nil {
			return jsonNode{}, err
		}

		return jsonNode{Kind: NodeKindReturn, Expr: &value}, nil

	case *ast.ExprStmt:
		value, err := exprToJSON(stmt.Expr)
		if err != nil {
			return jsonNode{}, err
		}

		return jsonNode{Kind: NodeKindExpr, Expr: &value}, nil

	default:
		return jsonNode{}, fmt.Errorf("statement %T: %w", stmt, ErrUnsupportedNode)
	}
}

func exprToJSON(expr ast.Expr) (jsonNode, error) {
	switch expr := expr.(type) {
	case *ast.Identifier:
		return jsonNode{Kind: NodeKindIdent, Name: expr.Name}, nil

	case *ast.StringLiteral:
		value := expr.Value

		return jsonNode{Kind: NodeKindString, Value: &value}, nil

	case *ast.IndexAccess:
		base, err := exprToJSON(expr.Base)
		if err != nil {
			return jsonNode{}, err
		}

		index, err := exprToJSON(expr.Index)
		if err != nil {
			return jsonNode{}, err
		}

		return jsonNode{Kind: NodeKindIndex, Base: &base, Index: &index}, nil

	case *ast.FunctionCall:
		callee, err := exprToJSON(expr.Callee)
		if err != nil {
			return jsonNode{}, err
		}

		args := make([]jsonNode, 0, len(expr.Arguments))
		for _, arg := range expr.Arguments {
			node, err := exprToJSON(arg)
			if err != nil {
				return jsonNode{}, err
			}

			args = append(args, node)
		}

		return jsonNode{Kind: NodeKindCall, Callee: &callee, Arguments: args}, nil

	default:
		return jsonNode{}, fmt.Errorf("expression %T: %w", expr, ErrUnsupportedNode)
	}
}
