package provider

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
)

// evalExpr evaluates a Go constant expression to an integer value.
// Identifiers resolve through lookup, which providers bind to the members
// declared earlier in the same definition (so "Y = X" aliases X).
func evalExpr(src string, lookup func(name string) (constant.Value, bool)) (constant.Value, error) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", src, err)
	}

	v, err := evalNode(expr, lookup)
	if err != nil {
		return nil, err
	}
	if v.Kind() != constant.Int {
		return nil, fmt.Errorf("expression %q is not an integer constant", src)
	}
	return v, nil
}

func evalNode(n ast.Expr, lookup func(name string) (constant.Value, bool)) (constant.Value, error) {
	switch e := n.(type) {
	case *ast.BasicLit:
		switch e.Kind {
		case token.INT, token.CHAR:
			v := constant.MakeFromLiteral(e.Value, e.Kind, 0)
			if v.Kind() == constant.Unknown {
				return nil, fmt.Errorf("malformed literal %s", e.Value)
			}
			return v, nil
		default:
			return nil, fmt.Errorf("unsupported literal %s", e.Value)
		}

	case *ast.Ident:
		v, ok := lookup(e.Name)
		if !ok {
			return nil, fmt.Errorf("unknown identifier %s (only previously declared constants may be referenced)", e.Name)
		}
		return v, nil

	case *ast.ParenExpr:
		return evalNode(e.X, lookup)

	case *ast.UnaryExpr:
		x, err := evalNode(e.X, lookup)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case token.ADD, token.SUB, token.XOR:
			return constant.UnaryOp(e.Op, x, 0), nil
		default:
			return nil, fmt.Errorf("unsupported unary operator %s", e.Op)
		}

	case *ast.BinaryExpr:
		x, err := evalNode(e.X, lookup)
		if err != nil {
			return nil, err
		}
		y, err := evalNode(e.Y, lookup)
		if err != nil {
			return nil, err
		}

		switch e.Op {
		case token.SHL, token.SHR:
			s, ok := constant.Uint64Val(y)
			if !ok {
				return nil, fmt.Errorf("invalid shift count %s", y)
			}
			return constant.Shift(x, e.Op, uint(s)), nil
		case token.ADD, token.SUB, token.MUL, token.AND, token.OR, token.XOR, token.AND_NOT:
			return constant.BinaryOp(x, e.Op, y), nil
		case token.REM:
			if constant.Sign(y) == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return constant.BinaryOp(x, e.Op, y), nil
		case token.QUO:
			if constant.Sign(y) == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			// QUO_ASSIGN forces integer division of Int operands.
			return constant.BinaryOp(x, token.QUO_ASSIGN, y), nil
		default:
			return nil, fmt.Errorf("unsupported binary operator %s", e.Op)
		}

	default:
		return nil, fmt.Errorf("unsupported expression %T", n)
	}
}
