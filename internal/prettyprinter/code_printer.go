package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/sysf/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[ast.Operator]int{
	ast.OpOr:  1,
	ast.OpAnd: 2,
	ast.OpEq:  3,
	ast.OpNe:  3,
	ast.OpLt:  3,
	ast.OpGt:  3,
	ast.OpAdd: 4,
	ast.OpSub: 4,
	ast.OpMul: 5,
}

const (
	precBinder = 0  // let, lambda, any, if: extend as far right as possible
	precApply  = 10 // juxtaposition, left-associative
	precAtom   = 11
)

func getPrecedence(op ast.Operator) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return precApply - 1
}

type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders an expression, pattern or declaration as source text.
func Print(node ast.Node) string {
	p := NewCodePrinter()
	p.printNode(node)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) printNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.Declaration:
		p.write("let " + n.Name + ": " + n.Signature.String() + " = ")
		p.printExpr(n.Body, precBinder)
	case ast.Pattern:
		p.printPattern(n)
	case ast.Expression:
		p.printExpr(n, precBinder)
	}
}

func precedence(expr ast.Expression) int {
	switch e := expr.(type) {
	case *ast.Constant, *ast.Variable, *ast.Tuple:
		return precAtom
	case *ast.Application, *ast.TypeApplication:
		return precApply
	case *ast.Binary:
		return getPrecedence(e.Operator)
	default:
		return precBinder
	}
}

// printExpr prints expr, parenthesizing it when it binds looser than
// minPrec.
func (p *CodePrinter) printExpr(expr ast.Expression, minPrec int) {
	expr = ast.Unwrap(expr)
	if expr == nil {
		p.write("<nil>")
		return
	}
	if precedence(expr) < minPrec {
		p.write("(")
		defer p.write(")")
	}

	switch e := expr.(type) {
	case *ast.Constant:
		p.printConstant(e)
	case *ast.Variable:
		p.write(e.Name)
	case *ast.Let:
		p.write("let ")
		p.printPattern(e.Pattern)
		p.write(" = ")
		p.printExpr(e.Value, precBinder)
		p.write(" in ")
		p.printExpr(e.Body, precBinder)
	case *ast.Application:
		p.printExpr(e.Function, precApply)
		p.write(" ")
		p.printExpr(e.Argument, precAtom)
	case *ast.TypeApplication:
		p.printExpr(e.Function, precApply)
		p.write(" [" + e.Argument.String() + "]")
	case *ast.Tuple:
		p.write("(")
		for i, el := range e.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(el, precBinder)
		}
		p.write(")")
	case *ast.Binary:
		prec := getPrecedence(e.Operator)
		// Left-associative: the right operand needs parens at equal precedence.
		p.printExpr(e.Left, prec)
		p.write(" " + e.Operator.String() + " ")
		p.printExpr(e.Right, prec+1)
	case *ast.Lambda:
		p.write("lambda " + e.Param + ": " + e.ParamType.String() + ". ")
		p.printExpr(e.Body, precBinder)
	case *ast.TypeAbstraction:
		p.write("any " + e.TypeParam + ". ")
		p.printExpr(e.Body, precBinder)
	case *ast.If:
		p.write("if ")
		p.printExpr(e.Condition, precBinder)
		p.write(" then ")
		p.printExpr(e.Consequence, precBinder)
		p.write(" else ")
		p.printExpr(e.Alternative, precBinder)
	default:
		p.write("<unknown expression>")
	}
}

func (p *CodePrinter) printConstant(c *ast.Constant) {
	switch v := c.Value.(type) {
	case ast.Integer:
		p.write(strconv.FormatInt(int64(v), 10))
	case ast.Boolean:
		p.write(strconv.FormatBool(bool(v)))
	default:
		p.write("<invalid constant>")
	}
}

func (p *CodePrinter) printPattern(pat ast.Pattern) {
	switch pt := pat.(type) {
	case *ast.Wildcard:
		p.write("_")
	case *ast.Binding:
		p.write(pt.Name + ": " + pt.Type.String())
	case *ast.TuplePattern:
		p.write("(")
		for i, el := range pt.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.printPattern(el)
		}
		p.write(")")
	default:
		p.write("<unknown pattern>")
	}
}
