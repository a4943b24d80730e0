package pipeline

import (
	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/typesystem"
)

// PipelineContext carries one declaration through the stages that check,
// evaluate and bind it.
type PipelineContext struct {
	Declaration *ast.Declaration

	// Globals are the types of the names already bound at top level.
	Globals map[string]typesystem.Type

	// Value is the evaluated body, set by the evaluation stage.
	Value ast.Expression

	Errors []error
}

func NewPipelineContext(decl *ast.Declaration, globals map[string]typesystem.Type) *PipelineContext {
	return &PipelineContext{Declaration: decl, Globals: globals}
}

// Err returns the first error recorded, or nil.
func (c *PipelineContext) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors[0]
}

// Processor is one stage of a pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. A stage that records an error ends the run:
// later stages assume the earlier ones succeeded.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if len(ctx.Errors) > 0 {
			break
		}
	}
	return ctx
}
