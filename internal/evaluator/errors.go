package evaluator

import (
	"errors"
	"fmt"

	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/prettyprinter"
)

var (
	// ErrInternal is wrapped by every evaluation failure on input the
	// checker should have rejected.
	ErrInternal = errors.New("internal evaluator error")

	ErrNoOpenFrame        = fmt.Errorf("%w: no open frame to exit", ErrInternal)
	ErrDepthExceeded      = errors.New("maximum evaluation depth exceeded")
	ErrUnknownDeclaration = errors.New("unknown declaration")
)

// InternalError reports a checked term that still went wrong at run time.
type InternalError struct {
	Node    ast.Node
	Message string
}

func newInternalError(node ast.Node, format string, a ...interface{}) *InternalError {
	return &InternalError{Node: node, Message: fmt.Sprintf(format, a...)}
}

func (e *InternalError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%s: %s", ErrInternal, e.Message)
	}
	if span := e.Node.GetSpan(); !span.IsZero() {
		return fmt.Sprintf("%s: %s at %s in %s", ErrInternal, e.Message, span, prettyprinter.Print(e.Node))
	}
	return fmt.Sprintf("%s: %s in %s", ErrInternal, e.Message, prettyprinter.Print(e.Node))
}

func (e *InternalError) Unwrap() error { return ErrInternal }
