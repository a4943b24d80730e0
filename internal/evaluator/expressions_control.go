package evaluator

import (
	"github.com/funvibe/sysf/internal/ast"
)

// evalLet evaluates the bound expression where the let stands, so it cannot
// see the pattern's own names, then evaluates the body in a copy of the
// frame holding the pattern's bindings.
func (e *Evaluator) evalLet(node *ast.Let) (Value, error) {
	value, err := e.Eval(node.Value)
	if err != nil {
		return nil, err
	}
	return Adventure(e.Store, func() (Value, error) {
		if err := e.bindPattern(value, node.Pattern); err != nil {
			return nil, err
		}
		return e.Eval(node.Body)
	})
}

// evalIf evaluates the condition in a frame of its own and then exactly one
// branch in the frame the conditional stands in.
func (e *Evaluator) evalIf(node *ast.If) (Value, error) {
	cond, err := Adventure(e.Store, func() (Value, error) {
		return e.Eval(node.Condition)
	})
	if err != nil {
		return nil, err
	}
	b, ok := asBool(cond)
	if !ok {
		return nil, newInternalError(node.Condition, "condition is not a boolean")
	}
	if b {
		return e.Eval(node.Consequence)
	}
	return e.Eval(node.Alternative)
}

func asBool(v Value) (bool, bool) {
	c, ok := v.(*ast.Constant)
	if !ok {
		return false, false
	}
	b, ok := c.Value.(ast.Boolean)
	return bool(b), ok
}

func asInt(v Value) (int64, bool) {
	c, ok := v.(*ast.Constant)
	if !ok {
		return 0, false
	}
	i, ok := c.Value.(ast.Integer)
	return int64(i), ok
}
