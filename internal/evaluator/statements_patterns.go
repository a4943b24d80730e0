package evaluator

import (
	"github.com/funvibe/sysf/internal/ast"
)

// bindPattern destructures value against pattern into the current frame.
func (e *Evaluator) bindPattern(value Value, pattern ast.Pattern) error {
	switch p := pattern.(type) {
	case *ast.Wildcard:
		return nil

	case *ast.Binding:
		frame := e.Store.Current()
		frame.Bind(p.Name, value, frame.Resolve(p.Type))
		return nil

	case *ast.TuplePattern:
		tuple, ok := value.(*ast.Tuple)
		if !ok {
			return newInternalError(p, "tuple pattern against a non-tuple value")
		}
		if len(tuple.Elements) != len(p.Elements) {
			return newInternalError(p, "tuple pattern of %d elements against a tuple of %d",
				len(p.Elements), len(tuple.Elements))
		}
		for i, el := range p.Elements {
			if err := e.bindPattern(tuple.Elements[i], el); err != nil {
				return err
			}
		}
		return nil
	}

	return newInternalError(pattern, "unsupported pattern %T", pattern)
}
