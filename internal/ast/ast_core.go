package ast

import (
	"github.com/funvibe/sysf/internal/token"
	"github.com/funvibe/sysf/internal/typesystem"
)

// Node is the base interface for all AST nodes. Nodes are immutable trees:
// no sharing is required and no cycles are possible.
type Node interface {
	GetSpan() token.Span
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is the left-hand side of a let binding.
type Pattern interface {
	Node
	patternNode()
}

// Declaration is a top-level binding with an explicit signature.
// let name : Signature = Body
type Declaration struct {
	Span      token.Span
	Name      string
	Signature typesystem.Type
	Body      Expression
}

func (d *Declaration) GetSpan() token.Span {
	if d == nil {
		return token.Span{}
	}
	return d.Span
}

// Program is an ordered set of declarations. Order lists declaration names
// in evaluation order; every name must be a key of Declarations.
type Program struct {
	File         string
	Order        []string
	Declarations map[string]*Declaration
}

// NewProgram builds a program evaluating decls in the given order.
func NewProgram(decls ...*Declaration) *Program {
	p := &Program{Declarations: make(map[string]*Declaration, len(decls))}
	for _, d := range decls {
		p.Order = append(p.Order, d.Name)
		p.Declarations[d.Name] = d
	}
	return p
}

// NewDeclaration creates a declaration without source position.
func NewDeclaration(name string, sig typesystem.Type, body Expression) *Declaration {
	return &Declaration{Name: name, Signature: sig, Body: body}
}

// Wrapper is implemented by runtime values that carry a syntax node together
// with evaluation state (for example a closure and its captured frame).
// Syntax-directed passes look through it.
type Wrapper interface {
	Expression
	Unwrap() Expression
}

// Unwrap strips any Wrapper layers from e.
func Unwrap(e Expression) Expression {
	for {
		w, ok := e.(Wrapper)
		if !ok {
			return e
		}
		e = w.Unwrap()
	}
}
