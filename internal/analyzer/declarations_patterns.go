package analyzer

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/diagnostics"
	"github.com/funvibe/sysf/internal/symbols"
	"github.com/funvibe/sysf/internal/typesystem"
)

// bindPattern checks pattern against the type of the value it destructures
// and defines its binders in table.
func (a *Analyzer) bindPattern(pattern ast.Pattern, t typesystem.Type, table *symbols.SymbolTable) *diagnostics.DiagnosticError {
	return a.bindPatternIn(pattern, t, table, set.New[string](0))
}

func (a *Analyzer) bindPatternIn(pattern ast.Pattern, t typesystem.Type, table *symbols.SymbolTable, seen *set.Set[string]) *diagnostics.DiagnosticError {
	switch p := pattern.(type) {
	case *ast.Wildcard:
		return nil

	case *ast.Binding:
		if seen.Contains(p.Name) {
			return diagnostics.NewError(diagnostics.ErrA007, p.Span, "%s is bound more than once in this pattern", p.Name)
		}
		seen.Insert(p.Name)
		// The enclosing scope sees the annotation the way the value's type
		// was computed, so resolve against the outer table.
		annotated, err := resolveType(p.Type, p.Span, table.Outer())
		if err != nil {
			return err
		}
		if !typesystem.Equal(annotated, t) {
			return diagnostics.NewError(diagnostics.ErrA006, p.Span,
				"pattern %s expects %s, but the value has type %s", p.Name, annotated, t).
				WithLabel("annotated here")
		}
		table.Define(p.Name, t, p)
		return nil

	case *ast.TuplePattern:
		tuple, ok := t.(typesystem.TTuple)
		if !ok {
			return diagnostics.NewError(diagnostics.ErrA006, p.Span,
				"tuple pattern cannot match a value of type %s", t)
		}
		if len(tuple.Elements) != len(p.Elements) {
			return diagnostics.NewError(diagnostics.ErrA006, p.Span,
				"tuple pattern has %d elements, but the value has %d", len(p.Elements), len(tuple.Elements)).
				WithLabel("the value has type %s", t)
		}
		for i, el := range p.Elements {
			if err := a.bindPatternIn(el, tuple.Elements[i], table, seen); err != nil {
				return err
			}
		}
		return nil
	}

	return diagnostics.NewError(diagnostics.ErrA006, pattern.GetSpan(), "unsupported pattern %T", pattern)
}
