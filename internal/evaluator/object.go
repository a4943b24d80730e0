package evaluator

import (
	"github.com/funvibe/sysf/internal/ast"
)

// Value is an expression in normal form: a constant, a tuple of values, a
// closure, or a stuck binary node whose operands are values.
type Value = ast.Expression

// Closure is a lambda together with the frame it was evaluated in.
type Closure struct {
	*ast.Lambda
	Env Frame
}

func (c *Closure) Unwrap() ast.Expression { return c.Lambda }

// TypeClosure is a universal abstraction together with the frame it was
// evaluated in.
type TypeClosure struct {
	*ast.TypeAbstraction
	Env Frame
}

func (c *TypeClosure) Unwrap() ast.Expression { return c.TypeAbstraction }

// IsValue reports whether v is in normal form.
func IsValue(v ast.Expression) bool {
	switch v := v.(type) {
	case *ast.Constant, *Closure, *TypeClosure:
		return true
	case *ast.Tuple:
		for _, el := range v.Elements {
			if !IsValue(el) {
				return false
			}
		}
		return true
	case *ast.Binary:
		return IsValue(v.Left) && IsValue(v.Right)
	}
	return false
}
