package typesystem

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/funvibe/sysf/internal/config"
)

// Type is the interface for all types in our system.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []TVar
	typeNode()
}

// TVar represents a type variable bound by a universal quantifier.
type TVar struct {
	Name string
}

func (t TVar) typeNode()      {}
func (t TVar) String() string { return t.Name }

func (t TVar) Apply(s Subst) Type {
	if replacement, ok := s[t.Name]; ok {
		return replacement
	}
	return t
}

func (t TVar) FreeTypeVariables() []TVar { return []TVar{t} }

// TCon is a ground type constructor (Int, Bool).
type TCon struct {
	Name string
}

var (
	Int  = TCon{Name: config.IntTypeName}
	Bool = TCon{Name: config.BoolTypeName}
)

func (t TCon) typeNode()                 {}
func (t TCon) String() string            { return t.Name }
func (t TCon) Apply(Subst) Type          { return t }
func (t TCon) FreeTypeVariables() []TVar { return nil }

// TTuple is a fixed-arity product type.
type TTuple struct {
	Elements []Type
}

func (t TTuple) typeNode() {}

func (t TTuple) String() string {
	return "(" + strings.Join(lo.Map(t.Elements, func(e Type, _ int) string { return e.String() }), ", ") + ")"
}

func (t TTuple) Apply(s Subst) Type {
	return TTuple{Elements: lo.Map(t.Elements, func(e Type, _ int) Type { return e.Apply(s) })}
}

func (t TTuple) FreeTypeVariables() []TVar {
	vars := []TVar{}
	for _, e := range t.Elements {
		vars = append(vars, e.FreeTypeVariables()...)
	}
	return uniqueTVars(vars)
}

// TFunc represents a function type (e.g. Int -> Bool). Arrows associate to
// the right.
type TFunc struct {
	Param      Type
	ReturnType Type
}

func (t TFunc) typeNode() {}

func (t TFunc) String() string {
	param := t.Param.String()
	switch t.Param.(type) {
	case TFunc, TForall:
		param = "(" + param + ")"
	}
	return fmt.Sprintf("%s -> %s", param, t.ReturnType.String())
}

func (t TFunc) Apply(s Subst) Type {
	return TFunc{Param: t.Param.Apply(s), ReturnType: t.ReturnType.Apply(s)}
}

func (t TFunc) FreeTypeVariables() []TVar {
	vars := append(t.Param.FreeTypeVariables(), t.ReturnType.FreeTypeVariables()...)
	return uniqueTVars(vars)
}

// TForall represents a universally quantified type.
// e.g. forall T. T -> T
type TForall struct {
	Var  TVar
	Type Type
}

func (t TForall) typeNode() {}

func (t TForall) String() string {
	return fmt.Sprintf("forall %s. %s", t.Var.Name, t.Type.String())
}

// Apply substitutes under the quantifier without capturing: the bound
// variable shadows the substitution, and it is renamed when a replacement
// mentions it freely.
func (t TForall) Apply(s Subst) Type {
	inner := make(Subst, len(s))
	for k, v := range s {
		if k != t.Var.Name {
			inner[k] = v
		}
	}
	if len(inner) == 0 {
		return t
	}

	bound := t.Var
	body := t.Type
	if inner.mentions(bound.Name, body) {
		avoid := map[string]bool{bound.Name: true}
		for _, v := range body.FreeTypeVariables() {
			avoid[v.Name] = true
		}
		for _, v := range inner {
			for _, fv := range v.FreeTypeVariables() {
				avoid[fv.Name] = true
			}
		}
		renamed := TVar{Name: Fresh(bound.Name, avoid)}
		body = body.Apply(Subst{bound.Name: renamed})
		bound = renamed
	}
	return TForall{Var: bound, Type: body.Apply(inner)}
}

func (t TForall) FreeTypeVariables() []TVar {
	return lo.Filter(t.Type.FreeTypeVariables(), func(v TVar, _ int) bool {
		return v.Name != t.Var.Name
	})
}

// Subst is a mapping from Type Variables to Types.
type Subst map[string]Type

// mentions reports whether any replacement that would actually be applied
// inside body refers to name.
func (s Subst) mentions(name string, body Type) bool {
	for _, v := range body.FreeTypeVariables() {
		replacement, ok := s[v.Name]
		if !ok {
			continue
		}
		for _, fv := range replacement.FreeTypeVariables() {
			if fv.Name == name {
				return true
			}
		}
	}
	return false
}

// Fresh returns a variant of base, suffixed with primes, that is not in avoid.
func Fresh(base string, avoid map[string]bool) string {
	name := base
	for avoid[name] {
		name += "'"
	}
	return name
}

func uniqueTVars(vars []TVar) []TVar {
	return lo.UniqBy(vars, func(v TVar) string { return v.Name })
}
