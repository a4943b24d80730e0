package typesystem

import (
	"testing"
)

func TestTypeStrings(t *testing.T) {
	a := TVar{Name: "a"}
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"Int", Int, "Int"},
		{"arrow", TFunc{Param: Int, ReturnType: Bool}, "Int -> Bool"},
		{"right assoc", TFunc{Param: Int, ReturnType: TFunc{Param: Int, ReturnType: Int}}, "Int -> Int -> Int"},
		{"left nested", TFunc{Param: TFunc{Param: Int, ReturnType: Int}, ReturnType: Int}, "(Int -> Int) -> Int"},
		{"tuple", TTuple{Elements: []Type{Int, Bool}}, "(Int, Bool)"},
		{"forall", TForall{Var: a, Type: TFunc{Param: a, ReturnType: a}}, "forall a. a -> a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqualAlpha(t *testing.T) {
	a, b := TVar{Name: "a"}, TVar{Name: "b"}
	idA := TForall{Var: a, Type: TFunc{Param: a, ReturnType: a}}
	idB := TForall{Var: b, Type: TFunc{Param: b, ReturnType: b}}

	if !Equal(idA, idB) {
		t.Errorf("%s and %s should be alpha-equivalent", idA, idB)
	}
	if Equal(idA, TForall{Var: a, Type: TFunc{Param: a, ReturnType: b}}) {
		t.Errorf("bound and free variables must not be equal")
	}
	if Equal(a, b) {
		t.Errorf("distinct free variables must not be equal")
	}
	if Equal(TTuple{Elements: []Type{Int}}, TTuple{Elements: []Type{Int, Int}}) {
		t.Errorf("tuples of different arity must not be equal")
	}
}

func TestInstantiate(t *testing.T) {
	a := TVar{Name: "a"}
	id := TForall{Var: a, Type: TFunc{Param: a, ReturnType: a}}

	got := Instantiate(id, Int)
	want := TFunc{Param: Int, ReturnType: Int}
	if !Equal(got, want) {
		t.Errorf("Instantiate() = %s, want %s", got, want)
	}
}

func TestApplyAvoidsCapture(t *testing.T) {
	a, b := TVar{Name: "a"}, TVar{Name: "b"}
	// forall b. a -> b  with  a := b  must not become forall b. b -> b
	inner := TForall{Var: b, Type: TFunc{Param: a, ReturnType: b}}

	got := inner.Apply(Subst{"a": b})
	forall, ok := got.(TForall)
	if !ok {
		t.Fatalf("Apply() = %T, want TForall", got)
	}
	if forall.Var.Name == "b" {
		t.Errorf("bound variable was not renamed: %s", got)
	}
	want := TForall{Var: TVar{Name: "c"}, Type: TFunc{Param: b, ReturnType: TVar{Name: "c"}}}
	if !Equal(got, want) {
		t.Errorf("Apply() = %s, want alpha-equivalent of %s", got, want)
	}
}

func TestApplyShadowedVariable(t *testing.T) {
	a := TVar{Name: "a"}
	shadow := TForall{Var: a, Type: a}
	if got := shadow.Apply(Subst{"a": Int}); !Equal(got, shadow) {
		t.Errorf("Apply() = %s, want %s unchanged", got, shadow)
	}
}
