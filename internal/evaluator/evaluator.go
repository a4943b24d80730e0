package evaluator

import (
	"fmt"

	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/config"
)

// Evaluator reduces checked expressions to values against a Snapshot.
// It is single-threaded; one Evaluator serves one evaluation at a time.
type Evaluator struct {
	Store *Snapshot

	// Scoped runs function and type application bodies in the frame the
	// closure captured. When false, parameters are bound into the caller's
	// current frame instead and stay there until that frame is popped.
	Scoped bool

	// MaxDepth bounds the nesting of Eval calls. Zero means unbounded.
	MaxDepth int

	evalDepth int
}

// New creates an Evaluator over store configured by cfg. A nil cfg selects
// the defaults.
func New(store *Snapshot, cfg *config.Config) *Evaluator {
	return &Evaluator{
		Store:    store,
		Scoped:   cfg.ScopedApplication(),
		MaxDepth: cfg.Depth(),
	}
}

func (e *Evaluator) Eval(expr ast.Expression) (Value, error) {
	// Check recursion depth to prevent Go stack overflow
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.MaxDepth > 0 && e.evalDepth > e.MaxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepthExceeded, e.MaxDepth)
	}
	return e.evalCore(expr)
}

func (e *Evaluator) evalCore(expr ast.Expression) (Value, error) {
	switch node := expr.(type) {
	case *ast.Constant, *Closure, *TypeClosure:
		return node, nil

	case *ast.Variable:
		v, ok := e.Store.Current().Lookup(node.Name)
		if !ok {
			return nil, newInternalError(node, "unbound variable %s", node.Name)
		}
		return v, nil

	case *ast.Let:
		return e.evalLet(node)

	case *ast.Application:
		return e.evalApplication(node)

	case *ast.TypeApplication:
		return e.evalTypeApplication(node)

	case *ast.Tuple:
		elements := make([]ast.Expression, len(node.Elements))
		for i, el := range node.Elements {
			v, err := e.Eval(el)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return &ast.Tuple{Span: node.Span, Elements: elements}, nil

	case *ast.Binary:
		return e.evalBinary(node)

	case *ast.Lambda:
		return &Closure{Lambda: node, Env: *e.Store.Current()}, nil

	case *ast.TypeAbstraction:
		return &TypeClosure{TypeAbstraction: node, Env: *e.Store.Current()}, nil

	case *ast.If:
		return e.evalIf(node)

	case nil:
		return nil, newInternalError(nil, "missing expression")
	}

	return nil, newInternalError(expr, "unsupported expression %T", expr)
}
