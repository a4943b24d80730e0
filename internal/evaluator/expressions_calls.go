package evaluator

import (
	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/prettyprinter"
)

// evalApplication reduces the callee, then the argument, then the body with
// the parameter bound.
func (e *Evaluator) evalApplication(node *ast.Application) (Value, error) {
	callee, err := e.Eval(node.Function)
	if err != nil {
		return nil, err
	}
	arg, err := e.Eval(node.Argument)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*Closure)
	if !ok {
		return nil, newInternalError(node, "cannot apply %s", prettyprinter.Print(callee))
	}

	if !e.Scoped {
		frame := e.Store.Current()
		frame.Bind(fn.Param, arg, frame.Resolve(fn.ParamType))
		return e.Eval(fn.Body)
	}
	return Sojourn(e.Store, fn.Env, func() (Value, error) {
		frame := e.Store.Current()
		frame.Bind(fn.Param, arg, frame.Resolve(fn.ParamType))
		return e.Eval(fn.Body)
	})
}

// evalTypeApplication instantiates a universal abstraction. The term is not
// rewritten: the type variable is bound in the frame the body runs in.
func (e *Evaluator) evalTypeApplication(node *ast.TypeApplication) (Value, error) {
	callee, err := e.Eval(node.Function)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*TypeClosure)
	if !ok {
		return nil, newInternalError(node, "cannot instantiate %s", prettyprinter.Print(callee))
	}
	arg := e.Store.Current().Resolve(node.Argument)

	if !e.Scoped {
		e.Store.Current().BindTypeVar(fn.TypeParam, arg)
		return e.Eval(fn.Body)
	}
	return Sojourn(e.Store, fn.Env, func() (Value, error) {
		e.Store.Current().BindTypeVar(fn.TypeParam, arg)
		return e.Eval(fn.Body)
	})
}
