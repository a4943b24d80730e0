package analyzer

import (
	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/diagnostics"
	"github.com/funvibe/sysf/internal/symbols"
	"github.com/funvibe/sysf/internal/typesystem"
)

// CheckExpression returns the type of expr in the global scope.
func (a *Analyzer) CheckExpression(expr ast.Expression) (typesystem.Type, *diagnostics.DiagnosticError) {
	return a.infer(expr, a.symbolTable)
}

func (a *Analyzer) infer(expr ast.Expression, table *symbols.SymbolTable) (typesystem.Type, *diagnostics.DiagnosticError) {
	t, err := a.inferCore(expr, table)
	if err != nil {
		return nil, err
	}
	a.TypeMap[expr] = t
	return t, nil
}

func (a *Analyzer) inferCore(expr ast.Expression, table *symbols.SymbolTable) (typesystem.Type, *diagnostics.DiagnosticError) {
	switch e := expr.(type) {
	case *ast.Constant:
		return inferConstant(e)

	case *ast.Variable:
		sym, ok := table.Find(e.Name)
		if !ok {
			return nil, diagnostics.NewError(diagnostics.ErrA001, e.Span, "undeclared identifier %s", e.Name).
				WithLabel("not found in this scope")
		}
		return sym.Type, nil

	case *ast.Let:
		valueType, err := a.infer(e.Value, table)
		if err != nil {
			return nil, err
		}
		body := symbols.NewEnclosedSymbolTable(table, symbols.ScopeBlock)
		if err := a.bindPattern(e.Pattern, valueType, body); err != nil {
			return nil, err
		}
		return a.infer(e.Body, body)

	case *ast.Application:
		return a.inferApplication(e, table)

	case *ast.TypeApplication:
		fnType, err := a.infer(e.Function, table)
		if err != nil {
			return nil, err
		}
		forall, ok := fnType.(typesystem.TForall)
		if !ok {
			return nil, diagnostics.NewError(diagnostics.ErrA005, e.Function.GetSpan(),
				"cannot apply a type to a value of type %s", fnType).
				WithLabel("expected a polymorphic value")
		}
		arg, err := resolveType(e.Argument, e.Span, table)
		if err != nil {
			return nil, err
		}
		return typesystem.Instantiate(forall, arg), nil

	case *ast.Tuple:
		elements := make([]typesystem.Type, 0, len(e.Elements))
		for _, el := range e.Elements {
			t, err := a.infer(el, table)
			if err != nil {
				return nil, err
			}
			elements = append(elements, t)
		}
		return typesystem.TTuple{Elements: elements}, nil

	case *ast.Binary:
		return a.inferBinary(e, table)

	case *ast.Lambda:
		paramType, err := resolveType(e.ParamType, e.Span, table)
		if err != nil {
			return nil, err
		}
		fn := symbols.NewEnclosedSymbolTable(table, symbols.ScopeFunction)
		fn.Define(e.Param, paramType, e)
		bodyType, err := a.infer(e.Body, fn)
		if err != nil {
			return nil, err
		}
		return typesystem.TFunc{Param: paramType, ReturnType: bodyType}, nil

	case *ast.TypeAbstraction:
		scope := symbols.NewEnclosedSymbolTable(table, symbols.ScopeTypeAbstraction)
		tv := scope.DefineTypeVar(e.TypeParam)
		bodyType, err := a.infer(e.Body, scope)
		if err != nil {
			return nil, err
		}
		return typesystem.TForall{Var: tv, Type: bodyType}, nil

	case *ast.If:
		condType, err := a.infer(e.Condition, table)
		if err != nil {
			return nil, err
		}
		if err := expect(typesystem.Bool, condType, e.Condition); err != nil {
			return nil, err
		}
		thenType, err := a.infer(e.Consequence, table)
		if err != nil {
			return nil, err
		}
		elseType, err := a.infer(e.Alternative, table)
		if err != nil {
			return nil, err
		}
		if !typesystem.Equal(thenType, elseType) {
			return nil, diagnostics.NewError(diagnostics.ErrA003, e.Alternative.GetSpan(),
				"if branches have different types: %s and %s", thenType, elseType).
				WithLabel("this branch has type %s", elseType).
				WithNote(e.Consequence.GetSpan(), "the other branch has type %s", thenType)
		}
		return thenType, nil
	}

	return nil, diagnostics.NewError(diagnostics.ErrA003, expr.GetSpan(), "unsupported expression %T", expr)
}

func inferConstant(c *ast.Constant) (typesystem.Type, *diagnostics.DiagnosticError) {
	switch c.Value.(type) {
	case ast.Integer:
		return typesystem.Int, nil
	case ast.Boolean:
		return typesystem.Bool, nil
	}
	return nil, diagnostics.NewError(diagnostics.ErrA003, c.Span, "invalid constant %v", c.Value)
}

func (a *Analyzer) inferApplication(e *ast.Application, table *symbols.SymbolTable) (typesystem.Type, *diagnostics.DiagnosticError) {
	fnType, err := a.infer(e.Function, table)
	if err != nil {
		return nil, err
	}
	fn, ok := fnType.(typesystem.TFunc)
	if !ok {
		return nil, diagnostics.NewError(diagnostics.ErrA004, e.Function.GetSpan(),
			"cannot call a value of type %s", fnType).
			WithLabel("expected a function")
	}
	argType, err := a.infer(e.Argument, table)
	if err != nil {
		return nil, err
	}
	if err := expect(fn.Param, argType, e.Argument); err != nil {
		return nil, noteBinding(noteBinding(err, e.Function, table), e.Argument, table)
	}
	return fn.ReturnType, nil
}

func (a *Analyzer) inferBinary(e *ast.Binary, table *symbols.SymbolTable) (typesystem.Type, *diagnostics.DiagnosticError) {
	operand := typesystem.Type(typesystem.Int)
	if e.Operator.IsBoolean() {
		operand = typesystem.Bool
	}
	for _, side := range []ast.Expression{e.Left, e.Right} {
		t, err := a.infer(side, table)
		if err != nil {
			return nil, err
		}
		if err := expect(operand, t, side); err != nil {
			return nil, noteBinding(err.WithNote(e.Span, "operands of %s must be %s", e.Operator, operand), side, table)
		}
	}
	if e.Operator.IsArithmetic() {
		return typesystem.Int, nil
	}
	return typesystem.Bool, nil
}

// expect reports a mismatch between the type a context requires and the
// type found at node.
func expect(want, got typesystem.Type, node ast.Node) *diagnostics.DiagnosticError {
	if typesystem.Equal(want, got) {
		return nil
	}
	return diagnostics.NewError(diagnostics.ErrA003, node.GetSpan(),
		"type mismatch: expected %s, found %s", want, got).
		WithLabel("this has type %s", got)
}

// noteBinding points err at the binder of expr when expr is a local
// variable. Globals carry no binder.
func noteBinding(err *diagnostics.DiagnosticError, expr ast.Expression, table *symbols.SymbolTable) *diagnostics.DiagnosticError {
	v, ok := expr.(*ast.Variable)
	if !ok {
		return err
	}
	if sym, ok := table.Find(v.Name); ok && sym.DefinitionNode != nil {
		return err.WithNote(sym.DefinitionNode.GetSpan(), "%s is bound here with type %s", v.Name, sym.Type)
	}
	return err
}
