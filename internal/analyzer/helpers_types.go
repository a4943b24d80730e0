package analyzer

import (
	"github.com/funvibe/sysf/internal/diagnostics"
	"github.com/funvibe/sysf/internal/symbols"
	"github.com/funvibe/sysf/internal/token"
	"github.com/funvibe/sysf/internal/typesystem"
)

// resolveType maps the source type variables of an annotation to the
// internal variables of the scopes that bind them.
func resolveType(t typesystem.Type, span token.Span, table *symbols.SymbolTable) (typesystem.Type, *diagnostics.DiagnosticError) {
	if t == nil {
		return nil, diagnostics.NewError(diagnostics.ErrA002, span, "missing type annotation")
	}
	for _, tv := range t.FreeTypeVariables() {
		if _, ok := table.FindTypeVar(tv.Name); !ok {
			return nil, diagnostics.NewError(diagnostics.ErrA002, span, "type variable %s is not in scope", tv.Name).
				WithLabel("in the annotation %s", t)
		}
	}
	return t.Apply(table.Subst()), nil
}
