package ast_test

import (
	"fmt"
	"testing"

	"github.com/artuross/pineapple/internal/pineapple/ast"
	"github.com/stretchr/testify/assert"
)

func TestWalk(t *testing.T) {
	program := ast.Program{
		&ast.LetStmt{
			Name:  &ast.Identifier{Name: "a"},
			Value: &ast.StringLiteral{Value: "x"},
		},
		&ast.BlankStmt{},
		&ast.ExprStmt{
			Expr: &ast.FunctionCall{
				Callee: &ast.Identifier{Name: "print"},
				Arguments: []ast.Expr{
					&ast.IndexAccess{
						Base:  &ast.Identifier{Name: "a"},
						Index: &ast.Identifier{Name: "b"},
					},
				},
			},
		},
		&ast.ReturnStmt{
			Value: &ast.Identifier{Name: "a"},
		},
	}

	t.Run("visits every node in order", func(t *testing.T) {
		visited := make([]string, 0)

		ast.Inspect(program, func(node ast.Node) bool {
			visited = append(visited, describe(node))
			return true
		})

		expected := []string{
			"let",
			"ident a",
			"string x",
			"blank",
			"expr",
			"call",
			"ident print",
			"index",
			"ident a",
			"ident b",
			"return",
			"ident a",
		}

		assert.Equal(t, expected, visited)
	})

	t.Run("skips children", func(t *testing.T) {
		visited := make([]string, 0)

		ast.Inspect(program, func(node ast.Node) bool {
			visited = append(visited, describe(node))

			_, isCall := node.(*ast.FunctionCall)
			return !isCall
		})

		expected := []string{
			"let",
			"ident a",
			"string x",
			"blank",
			"expr",
			"call",
			"return",
			"ident a",
		}

		assert.Equal(t, expected, visited)
	})

	t.Run("nil children", func(t *testing.T) {
		count := 0

		ast.Walk(&ast.LetStmt{}, func(node ast.Node) bool {
			count++
			return true
		})

		assert.Equal(t, 1, count)
	})
}

func describe(node ast.Node) string {
	switch n := node.(type) {
	case *ast.LetStmt:
		return "let"
	case *ast.BlankStmt:
		return "blank"
	case *ast.ExprStmt:
		return "expr"
	case *ast.ReturnStmt:
		return "return"
	case *ast.FunctionCall:
		return "call"
	case *ast.IndexAccess:
		return "index"
	case *ast.Identifier:
		return "ident " + n.Name
	case *ast.StringLiteral:
		return "string " + n.Value
	default:
		return fmt.Sprintf("%T", n)
	}
}
