package printer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/artuross/pineapple/internal/pineapple/ast"
)

var ErrUnsupportedNode = errors.New("unsupported node")

// Fprint writes the program as source, one statement per line. Strings are
// written verbatim because the language has no escape sequences.
func Fprint(w io.Writer, program ast.Program) error {
	for index, stmt := range program {
		line, err := formatStmt(stmt)
		if err != nil {
			return fmt.Errorf("format statement %d: %w", index, err)
		}

		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write statement %d: %w", index, err)
		}
	}

	return nil
}

// Sprint is Fprint into a string.
func Sprint(program ast.Program) (string, error) {
	var sb strings.Builder

	if err := Fprint(&sb, program); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func formatStmt(stmt ast.Stmt) (string, error) {
	switch stmt := stmt.(type) {
	case *ast.BlankStmt:
		return "", nil

	case *ast.LetStmt:
		if stmt.Name == nil {
			return "", fmt.Errorf("let without name: %w", ErrUnsupportedNode)
		}

		value, err := formatExpr(stmt.Value)
		if err != nil {
			return "", err
		}

		return "let " + stmt.Name.Name + " = " + value, nil

	case *ast.ReturnStmt:
		value, err := formatExpr(stmt.Value)
		if err != nil {
			return "", err
		}

		return "return " + value, nil

	case *ast.ExprStmt:
		return formatExpr(stmt.Expr)

	default:
		return "", fmt.Errorf("statement %T: %w", stmt, ErrUnsupportedNode)
	}
}

func formatExpr(expr ast.Expr) (string, error) {
	switch expr := expr.(type) {
	case *ast.Identifier:
		return expr.Name, nil

	case *ast.StringLiteral:
		return `"` + expr.Value + `"`, nil

	case *ast.IndexAccess:
		base, err := formatExpr(expr.Base)
		if err != nil {
			return "", err
		}

		index, err := formatExpr(expr.Index)
		if err != nil {
			return "", err
		}

		return base + "[" + index + "]", nil

	case *ast.FunctionCall:
		callee, err := formatExpr(expr.Callee)
		if err != nil {
			return "", err
		}

		args := make([]string, 0, len(expr.Arguments))
		for _, arg := range expr.Arguments {
			value, err := formatExpr(arg)
			if err != nil {
				return "", err
			}

			args = append(args, value)
		}

		return callee + "(" + strings.Join(args, ", ") + ")", nil

	default:
		return "", fmt.Errorf("expression %T: %w", expr, ErrUnsupportedNode)
	}
}
