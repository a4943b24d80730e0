package evaluator

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/config"
	"github.com/funvibe/sysf/internal/log"
	"github.com/funvibe/sysf/internal/pipeline"
	"github.com/funvibe/sysf/internal/prettyprinter"
	"github.com/funvibe/sysf/internal/typesystem"
)

// Checker is the static type checker run before anything is evaluated.
// globals holds the types of the top-level names in scope. If a check
// succeeds, evaluation will not hit a type mismatch.
type Checker interface {
	CheckExpression(expr ast.Expression, globals map[string]typesystem.Type) (typesystem.Type, error)
	CheckDeclaration(decl *ast.Declaration, globals map[string]typesystem.Type) error
}

// Session is one evaluation session: a store whose root frame collects the
// declarations evaluated so far.
type Session struct {
	ID    uuid.UUID
	Store *Snapshot
}

func NewSession() *Session {
	return &Session{ID: uuid.New(), Store: NewSnapshot()}
}

// Interpreter checks and evaluates expressions, declarations and programs.
type Interpreter struct {
	checker Checker
	config  *config.Config
	logger  *log.Logger

	// ownLogger is set when the logger was built from config.Log and must
	// be closed with the interpreter.
	ownLogger bool
}

type Option func(*Interpreter)

func WithConfig(cfg *config.Config) Option {
	return func(i *Interpreter) { i.config = cfg }
}

func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// NewInterpreter creates an interpreter that checks input with checker.
// A nil checker trusts its input. Unless WithLogger is given, the logger is
// built from the config's log section; if its file cannot be opened the
// interpreter logs to stderr instead.
func NewInterpreter(checker Checker, opts ...Option) *Interpreter {
	i := &Interpreter{checker: checker, config: config.Default()}
	for _, opt := range opts {
		opt(i)
	}
	if i.config == nil {
		i.config = config.Default()
	}
	if i.logger == nil {
		i.logger = loggerFromConfig(i.config.Log)
		i.ownLogger = true
	}
	return i
}

func loggerFromConfig(cfg config.LogConfig) *log.Logger {
	l, err := log.FromConfig(cfg)
	if err != nil {
		l = log.New(os.Stderr, log.ParseLevel(cfg.Level), cfg.Color)
		l.Warn("%v, logging to stderr", err)
	}
	return l
}

// Close releases the log file opened from the config. A logger passed with
// WithLogger is left to its owner.
func (i *Interpreter) Close() error {
	if !i.ownLogger {
		return nil
	}
	return i.logger.Close()
}

// EvaluateExpression checks expr against the session's declarations and
// evaluates it. Whatever the evaluation binds is gone when it returns.
func (i *Interpreter) EvaluateExpression(session *Session, expr ast.Expression) (Value, error) {
	logger := i.sessionLogger(session)
	if i.checker != nil {
		if _, err := i.checker.CheckExpression(expr, session.Store.Root().Types()); err != nil {
			logger.Debug("rejected %s: %v", prettyprinter.Print(expr), err)
			return nil, err
		}
	}

	ev := New(session.Store, i.config)
	value, err := Adventure(session.Store, func() (Value, error) {
		return ev.Eval(expr)
	})
	if err != nil {
		i.report(logger, err)
		return nil, err
	}
	logger.Trace("%s => %s", prettyprinter.Print(expr), prettyprinter.Print(value))
	return value, nil
}

// EvaluateDeclaration checks and evaluates decl, then binds its name to the
// value and the signature in the session's root frame.
func (i *Interpreter) EvaluateDeclaration(session *Session, decl *ast.Declaration) error {
	logger := i.sessionLogger(session)
	ctx := pipeline.New(
		&CheckerProcessor{Checker: i.checker},
		&EvaluatorProcessor{Evaluator: New(session.Store, i.config)},
		&BinderProcessor{Store: session.Store},
	).Run(pipeline.NewPipelineContext(decl, session.Store.Root().Types()))

	if err := ctx.Err(); err != nil {
		i.report(logger, err)
		return err
	}
	logger.Debug("declared %s : %s", decl.Name, decl.Signature)
	if logger.Enabled(log.TRACE) {
		logger.Trace("root frame:\n%s", session.Store.Root())
	}
	return nil
}

// EvaluateProgram evaluates the declarations of prog in order in a fresh
// session, stopping at the first failure. The session is returned even on
// failure and holds the declarations that succeeded.
func (i *Interpreter) EvaluateProgram(prog *ast.Program) (*Session, error) {
	session := NewSession()
	if prog == nil {
		return session, nil
	}
	i.sessionLogger(session).Info("evaluating %d declarations from %s", len(prog.Order), programName(prog))
	for _, id := range prog.Order {
		decl, ok := prog.Declarations[id]
		if !ok {
			return session, fmt.Errorf("%w: %s", ErrUnknownDeclaration, id)
		}
		if err := i.EvaluateDeclaration(session, decl); err != nil {
			return session, err
		}
	}
	return session, nil
}

// EvaluateClosed evaluates expr in a fresh session.
func (i *Interpreter) EvaluateClosed(expr ast.Expression) (Value, error) {
	return i.EvaluateExpression(NewSession(), expr)
}

func (i *Interpreter) sessionLogger(session *Session) *log.Logger {
	return i.logger.With("session", session.ID)
}

// report logs evaluation failures. Checker errors are the caller's problem;
// internal errors mean the checker let something through.
func (i *Interpreter) report(logger *log.Logger, err error) {
	if errors.Is(err, ErrInternal) || errors.Is(err, ErrDepthExceeded) {
		logger.Error("%v", err)
		return
	}
	logger.Debug("%v", err)
}

func programName(prog *ast.Program) string {
	if prog.File == "" {
		return "<program>"
	}
	return prog.File
}
