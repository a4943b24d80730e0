package evaluator

import (
	"fmt"

	"github.com/funvibe/sysf/internal/pipeline"
)

// CheckerProcessor runs the static checker over the declaration.
type CheckerProcessor struct {
	Checker Checker
}

func (cp *CheckerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if cp.Checker == nil {
		return ctx
	}
	if err := cp.Checker.CheckDeclaration(ctx.Declaration, ctx.Globals); err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}

// EvaluatorProcessor evaluates the declaration body in a frame of its own.
type EvaluatorProcessor struct {
	Evaluator *Evaluator
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Declaration == nil {
		ctx.Errors = append(ctx.Errors, newInternalError(nil, "missing declaration"))
		return ctx
	}
	value, err := Adventure(ep.Evaluator.Store, func() (Value, error) {
		return ep.Evaluator.Eval(ctx.Declaration.Body)
	})
	if err != nil {
		ctx.Errors = append(ctx.Errors, fmt.Errorf("evaluating %s: %w", ctx.Declaration.Name, err))
		return ctx
	}
	ctx.Value = value
	return ctx
}

// BinderProcessor adds the evaluated declaration to the root frame.
type BinderProcessor struct {
	Store *Snapshot
}

func (bp *BinderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	bp.Store.Root().Bind(ctx.Declaration.Name, ctx.Value, ctx.Declaration.Signature)
	return ctx
}
