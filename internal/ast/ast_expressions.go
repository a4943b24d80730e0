package ast

import (
	"github.com/funvibe/sysf/internal/token"
	"github.com/funvibe/sysf/internal/typesystem"
)

// ConstantValue is the payload of a Constant: Integer or Boolean.
type ConstantValue interface {
	constantValue()
}

type Integer int64

type Boolean bool

func (Integer) constantValue() {}
func (Boolean) constantValue() {}

// Constant is an integer or boolean literal.
type Constant struct {
	Span  token.Span
	Value ConstantValue
}

func (c *Constant) expressionNode()     {}
func (c *Constant) GetSpan() token.Span { return c.Span }

// Variable is a reference to a name bound by a pattern, a lambda or a
// top-level declaration.
type Variable struct {
	Span token.Span
	Name string
}

func (v *Variable) expressionNode()     {}
func (v *Variable) GetSpan() token.Span { return v.Span }

// Let binds Pattern to the value of Value inside Body.
// let (a, b) = Value in Body
type Let struct {
	Span    token.Span
	Pattern Pattern
	Value   Expression
	Body    Expression
}

func (l *Let) expressionNode()     {}
func (l *Let) GetSpan() token.Span { return l.Span }

// Application is term application: Function Argument.
type Application struct {
	Span     token.Span
	Function Expression
	Argument Expression
}

func (a *Application) expressionNode()     {}
func (a *Application) GetSpan() token.Span { return a.Span }

// TypeApplication instantiates a universal abstraction: Function [Argument].
type TypeApplication struct {
	Span     token.Span
	Function Expression
	Argument typesystem.Type
}

func (a *TypeApplication) expressionNode()     {}
func (a *TypeApplication) GetSpan() token.Span { return a.Span }

// Tuple is an ordered, fixed-arity product.
type Tuple struct {
	Span     token.Span
	Elements []Expression
}

func (t *Tuple) expressionNode()     {}
func (t *Tuple) GetSpan() token.Span { return t.Span }

// Binary is a primitive binary operation.
type Binary struct {
	Span     token.Span
	Operator Operator
	Left     Expression
	Right    Expression
}

func (b *Binary) expressionNode()     {}
func (b *Binary) GetSpan() token.Span { return b.Span }

// Lambda is a term abstraction with an annotated parameter.
// lambda Param: ParamType. Body
type Lambda struct {
	Span      token.Span
	Param     string
	ParamType typesystem.Type
	Body      Expression
}

func (l *Lambda) expressionNode()     {}
func (l *Lambda) GetSpan() token.Span { return l.Span }

// TypeAbstraction is a universal abstraction over a type variable.
// any TypeParam. Body
type TypeAbstraction struct {
	Span      token.Span
	TypeParam string
	Body      Expression
}

func (t *TypeAbstraction) expressionNode()     {}
func (t *TypeAbstraction) GetSpan() token.Span { return t.Span }

// If is a conditional expression; both branches are required.
type If struct {
	Span        token.Span
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (i *If) expressionNode()     {}
func (i *If) GetSpan() token.Span { return i.Span }
