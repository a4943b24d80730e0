package diagnostics

import (
	"fmt"
	"strings"

	"github.com/funvibe/sysf/internal/token"
)

type ErrorCode string

const (
	ErrA001 ErrorCode = "A001" // Undeclared identifier
	ErrA002 ErrorCode = "A002" // Unbound type variable in annotation
	ErrA003 ErrorCode = "A003" // Type mismatch
	ErrA004 ErrorCode = "A004" // Application of a non-function
	ErrA005 ErrorCode = "A005" // Type application of a non-polymorphic value
	ErrA006 ErrorCode = "A006" // Pattern does not match the bound value's type
	ErrA007 ErrorCode = "A007" // Name bound twice in one pattern
	ErrA008 ErrorCode = "A008" // Declaration body disagrees with its signature
)

// Severity of an annotation.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityNote  Severity = "note"
)

// Annotation labels one source span of a diagnostic.
type Annotation struct {
	Span     token.Span
	Label    string
	Severity Severity
}

// DiagnosticError is a structured error with a title and span annotations.
// It is returned, never thrown, by the checker and the evaluator boundary.
type DiagnosticError struct {
	Code        ErrorCode
	Title       string
	Annotations []Annotation
}

// NewError creates a diagnostic whose primary annotation points at span.
func NewError(code ErrorCode, span token.Span, title string, a ...interface{}) *DiagnosticError {
	msg := title
	if len(a) > 0 {
		msg = fmt.Sprintf(title, a...)
	}
	return &DiagnosticError{
		Code:        code,
		Title:       msg,
		Annotations: []Annotation{{Span: span, Severity: SeverityError}},
	}
}

// WithLabel sets the label of the primary annotation.
func (e *DiagnosticError) WithLabel(format string, a ...interface{}) *DiagnosticError {
	if len(e.Annotations) == 0 {
		e.Annotations = append(e.Annotations, Annotation{Severity: SeverityError})
	}
	e.Annotations[0].Label = fmt.Sprintf(format, a...)
	return e
}

// WithNote adds a secondary annotation.
func (e *DiagnosticError) WithNote(span token.Span, format string, a ...interface{}) *DiagnosticError {
	e.Annotations = append(e.Annotations, Annotation{
		Span:     span,
		Label:    fmt.Sprintf(format, a...),
		Severity: SeverityNote,
	})
	return e
}

// Span returns the primary span, or the zero span.
func (e *DiagnosticError) Span() token.Span {
	if len(e.Annotations) == 0 {
		return token.Span{}
	}
	return e.Annotations[0].Span
}

func (e *DiagnosticError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "error[%s]: %s", e.Code, e.Title)
	for _, a := range e.Annotations {
		if a.Label == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n  %s %s: %s", a.Severity, a.Span, a.Label)
	}
	return sb.String()
}
