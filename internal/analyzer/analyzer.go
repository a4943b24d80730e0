package analyzer

import (
	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/symbols"
	"github.com/funvibe/sysf/internal/typesystem"
)

// Analyzer type-checks expressions and declarations against the types of
// the session's top-level bindings. A successful check guarantees that
// evaluation will not hit a type mismatch.
type Analyzer struct {
	symbolTable *symbols.SymbolTable
	TypeMap     map[ast.Node]typesystem.Type // Stores inferred types
}

// New creates an Analyzer whose global scope holds globals.
func New(globals map[string]typesystem.Type) *Analyzer {
	return &Analyzer{
		symbolTable: symbols.NewGlobalSymbolTable(globals),
		TypeMap:     make(map[ast.Node]typesystem.Type),
	}
}

// Checker is a stateless front for Analyzer. Each call analyzes with a fresh
// Analyzer so that checks never see each other's local scopes.
type Checker struct{}

func NewChecker() Checker { return Checker{} }

func (Checker) CheckExpression(expr ast.Expression, globals map[string]typesystem.Type) (typesystem.Type, error) {
	t, err := New(globals).CheckExpression(expr)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (Checker) CheckDeclaration(decl *ast.Declaration, globals map[string]typesystem.Type) error {
	if err := New(globals).CheckDeclaration(decl); err != nil {
		return err
	}
	return nil
}
