package analyzer

import (
	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/diagnostics"
	"github.com/funvibe/sysf/internal/typesystem"
)

// CheckDeclaration verifies that the signature of decl is closed and that its
// body has exactly that type. Recursive references are not in scope: a
// declaration may only mention names bound before it.
func (a *Analyzer) CheckDeclaration(decl *ast.Declaration) *diagnostics.DiagnosticError {
	if decl == nil {
		return diagnostics.NewError(diagnostics.ErrA008, decl.GetSpan(), "missing declaration")
	}
	signature, err := resolveType(decl.Signature, decl.Span, a.symbolTable)
	if err != nil {
		return err
	}
	if decl.Body == nil {
		return diagnostics.NewError(diagnostics.ErrA008, decl.Span, "declaration %s has no body", decl.Name)
	}
	bodyType, err := a.CheckExpression(decl.Body)
	if err != nil {
		return err
	}
	if !typesystem.Equal(signature, bodyType) {
		return diagnostics.NewError(diagnostics.ErrA008, decl.Body.GetSpan(),
			"declaration %s has signature %s, but its body has type %s", decl.Name, signature, bodyType).
			WithLabel("this has type %s", bodyType).
			WithNote(decl.Span, "declared here")
	}
	a.TypeMap[decl] = signature
	return nil
}
