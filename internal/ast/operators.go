package ast

import "fmt"

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpEq
	OpLt
	OpGt
	OpNe
	OpAnd
	OpOr
)

var operatorSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpEq:  "==",
	OpLt:  "<",
	OpGt:  ">",
	OpNe:  "!=",
	OpAnd: "&&",
	OpOr:  "||",
}

func (op Operator) String() string {
	if op < OpAdd || op > OpOr {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return operatorSymbols[op]
}

// IsInteger reports whether op takes two integers (arithmetic and
// comparisons).
func (op Operator) IsInteger() bool {
	return op >= OpAdd && op <= OpNe
}

// IsArithmetic reports whether op maps two integers to an integer.
func (op Operator) IsArithmetic() bool {
	return op == OpAdd || op == OpSub || op == OpMul
}

// IsBoolean reports whether op takes two booleans.
func (op Operator) IsBoolean() bool {
	return op == OpAnd || op == OpOr
}
