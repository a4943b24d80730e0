package symbols

import (
	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/typesystem"
)

type ScopeType int

const (
	ScopeGlobal          ScopeType = iota // Top-level declarations of the session
	ScopeFunction                         // Lambda parameter
	ScopeBlock                            // Let body
	ScopeTypeAbstraction                  // Universal abstraction body
)

type Symbol struct {
	Name           string
	Type           typesystem.Type
	DefinitionNode ast.Node // The AST node where this symbol was defined, nil for globals
}

// SymbolTable is one lexical scope of the checker. Term names and type
// variables live in separate namespaces.
type SymbolTable struct {
	store     map[string]Symbol
	typeVars  map[string]typesystem.TVar // source name -> internal name
	outer     *SymbolTable
	scopeType ScopeType
}

func NewEmptySymbolTable() *SymbolTable {
	return &SymbolTable{
		store:     make(map[string]Symbol),
		typeVars:  make(map[string]typesystem.TVar),
		scopeType: ScopeGlobal,
	}
}

// NewGlobalSymbolTable defines every entry of globals as a variable.
func NewGlobalSymbolTable(globals map[string]typesystem.Type) *SymbolTable {
	st := NewEmptySymbolTable()
	for name, t := range globals {
		st.Define(name, t, nil)
	}
	return st
}

func NewEnclosedSymbolTable(outer *SymbolTable, scopeType ScopeType) *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = outer
	st.scopeType = scopeType
	return st
}

// Outer returns the outer scope symbol table
func (s *SymbolTable) Outer() *SymbolTable {
	return s.outer
}

// Scope returns the kind of construct that opened this scope.
func (s *SymbolTable) Scope() ScopeType {
	return s.scopeType
}

// IsGlobalScope returns true if this symbol table is the root (global) scope.
func (s *SymbolTable) IsGlobalScope() bool {
	return s.outer == nil
}

func (s *SymbolTable) Define(name string, t typesystem.Type, node ast.Node) {
	s.store[name] = Symbol{Name: name, Type: t, DefinitionNode: node}
}

// DefineTypeVar brings a type variable into scope. When the source name
// would capture a variable already visible (through shadowing or through a
// type mentioned by an outer binding), it is given a fresh internal name.
// The internal variable is returned.
func (s *SymbolTable) DefineTypeVar(name string) typesystem.TVar {
	inUse := s.internalTypeVars()
	internal := typesystem.TVar{Name: typesystem.Fresh(name, inUse)}
	s.typeVars[name] = internal
	return internal
}

// Find looks up a term variable through the enclosing scopes.
func (s *SymbolTable) Find(name string) (Symbol, bool) {
	sym, ok := s.store[name]
	if !ok && s.outer != nil {
		return s.outer.Find(name)
	}
	return sym, ok
}

// FindTypeVar resolves a source type variable name to its internal variable.
func (s *SymbolTable) FindTypeVar(name string) (typesystem.TVar, bool) {
	tv, ok := s.typeVars[name]
	if !ok && s.outer != nil {
		return s.outer.FindTypeVar(name)
	}
	return tv, ok
}

// internalTypeVars collects every internal type variable name that is
// reachable from this scope, either as a binding or as a free variable of a
// visible term's type.
func (s *SymbolTable) internalTypeVars() map[string]bool {
	names := map[string]bool{}
	for scope := s; scope != nil; scope = scope.outer {
		for _, tv := range scope.typeVars {
			names[tv.Name] = true
		}
		for _, sym := range scope.store {
			if sym.Type != nil {
				for _, fv := range sym.Type.FreeTypeVariables() {
					names[fv.Name] = true
				}
			}
		}
	}
	return names
}

// Subst maps every visible source type variable to its internal variable.
func (s *SymbolTable) Subst() typesystem.Subst {
	subst := typesystem.Subst{}
	var chain []*SymbolTable
	for scope := s; scope != nil; scope = scope.outer {
		chain = append(chain, scope)
	}
	// Outermost first so inner scopes overwrite shadowed names.
	for i := len(chain) - 1; i >= 0; i-- {
		for name, tv := range chain[i].typeVars {
			subst[name] = tv
		}
	}
	return subst
}
