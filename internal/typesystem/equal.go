package typesystem

// Equal reports whether a and b are the same type up to renaming of bound
// type variables (alpha-equivalence).
func Equal(a, b Type) bool {
	return alphaEqual(a, b, map[string]int{}, map[string]int{}, 0)
}

// alphaEqual compares under two binder environments mapping a bound name to
// the depth of its quantifier.
func alphaEqual(a, b Type, left, right map[string]int, depth int) bool {
	switch ta := a.(type) {
	case TCon:
		tb, ok := b.(TCon)
		return ok && ta.Name == tb.Name
	case TVar:
		tb, ok := b.(TVar)
		if !ok {
			return false
		}
		la, boundA := left[ta.Name]
		lb, boundB := right[tb.Name]
		if boundA || boundB {
			return boundA && boundB && la == lb
		}
		return ta.Name == tb.Name
	case TFunc:
		tb, ok := b.(TFunc)
		return ok &&
			alphaEqual(ta.Param, tb.Param, left, right, depth) &&
			alphaEqual(ta.ReturnType, tb.ReturnType, left, right, depth)
	case TTuple:
		tb, ok := b.(TTuple)
		if !ok || len(ta.Elements) != len(tb.Elements) {
			return false
		}
		for i := range ta.Elements {
			if !alphaEqual(ta.Elements[i], tb.Elements[i], left, right, depth) {
				return false
			}
		}
		return true
	case TForall:
		tb, ok := b.(TForall)
		if !ok {
			return false
		}
		return alphaEqual(ta.Type, tb.Type,
			extend(left, ta.Var.Name, depth+1),
			extend(right, tb.Var.Name, depth+1),
			depth+1)
	}
	return false
}

func extend(env map[string]int, name string, depth int) map[string]int {
	out := make(map[string]int, len(env)+1)
	for k, v := range env {
		out[k] = v
	}
	out[name] = depth
	return out
}

// Instantiate eliminates one quantifier: (forall a. T)[arg] = T[a := arg].
func Instantiate(t TForall, arg Type) Type {
	return t.Type.Apply(Subst{t.Var.Name: arg})
}
