package ast

import (
	"github.com/funvibe/sysf/internal/token"
	"github.com/funvibe/sysf/internal/typesystem"
)

// Wildcard matches anything and binds nothing.
type Wildcard struct {
	Span token.Span
}

func (w *Wildcard) patternNode()        {}
func (w *Wildcard) GetSpan() token.Span { return w.Span }

// Binding binds Name with the declared Type.
type Binding struct {
	Span token.Span
	Name string
	Type typesystem.Type
}

func (b *Binding) patternNode()        {}
func (b *Binding) GetSpan() token.Span { return b.Span }

// TuplePattern destructures a tuple element-wise.
type TuplePattern struct {
	Span     token.Span
	Elements []Pattern
}

func (t *TuplePattern) patternNode()        {}
func (t *TuplePattern) GetSpan() token.Span { return t.Span }
