package token

import "fmt"

// Position is a location in source text. Line and Column are 1-based;
// a zero Position means "unknown".
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers the half-open range [Start, End) of a node in its source.
// Nodes built programmatically carry the zero Span.
type Span struct {
	Start Position
	End   Position
}

func (s Span) IsZero() bool { return !s.Start.IsValid() }

func (s Span) String() string {
	if s.IsZero() {
		return "<unknown>"
	}
	if !s.End.IsValid() || s.End == s.Start {
		return s.Start.String()
	}
	return s.Start.String() + "-" + s.End.String()
}
