package ast

import (
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// Binders returns the names bound by p.
func Binders(p Pattern) *set.Set[string] {
	names := set.New[string](0)
	collectBinders(p, names)
	return names
}

func collectBinders(p Pattern, names *set.Set[string]) {
	switch p := p.(type) {
	case *Binding:
		names.Insert(p.Name)
	case *TuplePattern:
		for _, el := range p.Elements {
			collectBinders(el, names)
		}
	}
}

// Binds reports whether pattern p binds name.
func Binds(p Pattern, name string) bool {
	switch p := p.(type) {
	case *Binding:
		return p.Name == name
	case *TuplePattern:
		return slices.ContainsFunc(p.Elements, func(el Pattern) bool { return Binds(el, name) })
	}
	return false
}

// OccursFree reports whether name occurs free in expr.
//
// Universal abstraction binds a type, not a term, so it never hides name.
func OccursFree(name string, expr Expression) bool {
	switch e := Unwrap(expr).(type) {
	case *Constant:
		return false
	case *Variable:
		return e.Name == name
	case *Let:
		return OccursFree(name, e.Value) || (!Binds(e.Pattern, name) && OccursFree(name, e.Body))
	case *Application:
		return OccursFree(name, e.Function) || OccursFree(name, e.Argument)
	case *TypeApplication:
		return OccursFree(name, e.Function)
	case *Tuple:
		return slices.ContainsFunc(e.Elements, func(el Expression) bool { return OccursFree(name, el) })
	case *Binary:
		return OccursFree(name, e.Left) || OccursFree(name, e.Right)
	case *Lambda:
		return e.Param != name && OccursFree(name, e.Body)
	case *TypeAbstraction:
		return OccursFree(name, e.Body)
	case *If:
		return OccursFree(name, e.Condition) ||
			OccursFree(name, e.Consequence) ||
			OccursFree(name, e.Alternative)
	}
	return false
}

// FreeVariables returns every name occurring free in expr.
func FreeVariables(expr Expression) *set.Set[string] {
	free := set.New[string](0)
	collectFree(expr, set.New[string](0), free)
	return free
}

func collectFree(expr Expression, bound, free *set.Set[string]) {
	switch e := Unwrap(expr).(type) {
	case *Variable:
		if !bound.Contains(e.Name) {
			free.Insert(e.Name)
		}
	case *Let:
		collectFree(e.Value, bound, free)
		collectFree(e.Body, with(bound, Binders(e.Pattern).Slice()...), free)
	case *Application:
		collectFree(e.Function, bound, free)
		collectFree(e.Argument, bound, free)
	case *TypeApplication:
		collectFree(e.Function, bound, free)
	case *Tuple:
		for _, el := range e.Elements {
			collectFree(el, bound, free)
		}
	case *Binary:
		collectFree(e.Left, bound, free)
		collectFree(e.Right, bound, free)
	case *Lambda:
		collectFree(e.Body, with(bound, e.Param), free)
	case *TypeAbstraction:
		collectFree(e.Body, bound, free)
	case *If:
		collectFree(e.Condition, bound, free)
		collectFree(e.Consequence, bound, free)
		collectFree(e.Alternative, bound, free)
	}
}

func with(s *set.Set[string], names ...string) *set.Set[string] {
	out := s.Copy()
	for _, n := range names {
		out.Insert(n)
	}
	return out
}

// SortedNames returns the members of s in lexical order.
func SortedNames(s *set.Set[string]) []string {
	names := s.Slice()
	slices.Sort(names)
	return names
}
