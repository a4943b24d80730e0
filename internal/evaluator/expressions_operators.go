package evaluator

import (
	"github.com/funvibe/sysf/internal/ast"
)

// evalBinary reduces both operands, left first, whatever the operator.
// Boolean operators do not short-circuit. When an operand is not a constant
// of the operator's family the node comes back with its operands reduced.
func (e *Evaluator) evalBinary(node *ast.Binary) (Value, error) {
	left, err := e.Eval(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right)
	if err != nil {
		return nil, err
	}

	if node.Operator.IsInteger() {
		l, lok := asInt(left)
		r, rok := asInt(right)
		if lok && rok {
			return integerOp(node, l, r)
		}
	} else if node.Operator.IsBoolean() {
		l, lok := asBool(left)
		r, rok := asBool(right)
		if lok && rok {
			return booleanOp(node, l, r)
		}
	}

	return &ast.Binary{Span: node.Span, Operator: node.Operator, Left: left, Right: right}, nil
}

// integerOp wraps around on overflow like the machine's signed integers.
func integerOp(node *ast.Binary, l, r int64) (Value, error) {
	switch node.Operator {
	case ast.OpAdd:
		return integer(node, l+r), nil
	case ast.OpSub:
		return integer(node, l-r), nil
	case ast.OpMul:
		return integer(node, l*r), nil
	case ast.OpEq:
		return boolean(node, l == r), nil
	case ast.OpLt:
		return boolean(node, l < r), nil
	case ast.OpGt:
		return boolean(node, l > r), nil
	case ast.OpNe:
		return boolean(node, l != r), nil
	}
	return nil, newInternalError(node, "unknown integer operator %s", node.Operator)
}

func booleanOp(node *ast.Binary, l, r bool) (Value, error) {
	switch node.Operator {
	case ast.OpAnd:
		return boolean(node, l && r), nil
	case ast.OpOr:
		return boolean(node, l || r), nil
	}
	return nil, newInternalError(node, "unknown boolean operator %s", node.Operator)
}

func integer(at ast.Node, v int64) *ast.Constant {
	return &ast.Constant{Span: at.GetSpan(), Value: ast.Integer(v)}
}

func boolean(at ast.Node, v bool) *ast.Constant {
	return &ast.Constant{Span: at.GetSpan(), Value: ast.Boolean(v)}
}
