package ast

import "github.com/funvibe/sysf/internal/typesystem"

// Constructors for nodes without source positions, used by embedders and
// tests that build trees directly instead of parsing them.

func NewInt(v int64) *Constant { return &Constant{Value: Integer(v)} }

func NewBool(v bool) *Constant { return &Constant{Value: Boolean(v)} }

func NewVar(name string) *Variable { return &Variable{Name: name} }

func NewLet(pat Pattern, value, body Expression) *Let {
	return &Let{Pattern: pat, Value: value, Body: body}
}

// NewApply applies fn to args left to right: NewApply(f, a, b) is (f a) b.
func NewApply(fn Expression, args ...Expression) Expression {
	out := fn
	for _, arg := range args {
		out = &Application{Function: out, Argument: arg}
	}
	return out
}

func NewTypeApply(fn Expression, arg typesystem.Type) *TypeApplication {
	return &TypeApplication{Function: fn, Argument: arg}
}

func NewTuple(elements ...Expression) *Tuple { return &Tuple{Elements: elements} }

func NewBinary(op Operator, left, right Expression) *Binary {
	return &Binary{Operator: op, Left: left, Right: right}
}

func NewLambda(param string, typ typesystem.Type, body Expression) *Lambda {
	return &Lambda{Param: param, ParamType: typ, Body: body}
}

func NewTypeAbstraction(param string, body Expression) *TypeAbstraction {
	return &TypeAbstraction{TypeParam: param, Body: body}
}

func NewIf(cond, then, els Expression) *If {
	return &If{Condition: cond, Consequence: then, Alternative: els}
}

func NewWildcard() *Wildcard { return &Wildcard{} }

func NewBinding(name string, typ typesystem.Type) *Binding {
	return &Binding{Name: name, Type: typ}
}

func NewTuplePattern(elements ...Pattern) *TuplePattern {
	return &TuplePattern{Elements: elements}
}
