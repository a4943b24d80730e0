package evaluator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/sysf/internal/analyzer"
	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/config"
	"github.com/funvibe/sysf/internal/diagnostics"
	"github.com/funvibe/sysf/internal/log"
	"github.com/funvibe/sysf/internal/prettyprinter"
	"github.com/funvibe/sysf/internal/typesystem"
)

func intToInt() typesystem.Type { return typesystem.TFunc{Param: intT, ReturnType: intT} }

func sampleProgram() *ast.Program {
	return ast.NewProgram(
		ast.NewDeclaration("one", intT, num(1)),
		ast.NewDeclaration("inc", intToInt(), ast.NewLambda("x", intT, bin(ast.OpAdd, ref("x"), ref("one")))),
		ast.NewDeclaration("two", intT, ast.NewApply(ref("inc"), ref("one"))),
		ast.NewDeclaration("id",
			typesystem.TForall{Var: tvA, Type: typesystem.TFunc{Param: tvA, ReturnType: tvA}},
			ast.NewTypeAbstraction("a", ast.NewLambda("x", tvA, ref("x")))),
	)
}

func TestEvaluateProgram(t *testing.T) {
	interp := checked()
	session, err := interp.EvaluateProgram(sampleProgram())
	if err != nil {
		t.Fatalf("EvaluateProgram() error: %v", err)
	}

	if got := strings.Join(session.Store.Root().Names(), ","); got != "id,inc,one,two" {
		t.Errorf("root names = %s", got)
	}
	if typ, ok := session.Store.Root().LookupType("inc"); !ok || !typesystem.Equal(typ, intToInt()) {
		t.Errorf("type of inc = %v, %v", typ, ok)
	}
	if !strings.Contains(session.Store.Root().String(), "two : Int := 2\n") {
		t.Errorf("root frame dump:\n%s", session.Store.Root())
	}

	tests := []struct {
		expr ast.Expression
		want string
	}{
		{ast.NewApply(ref("inc"), ref("two")), "3"},
		{ast.NewApply(ast.NewTypeApply(ref("id"), boolT), bl(true)), "true"},
		{ast.NewApply(ast.NewTypeApply(ref("id"), intToInt()), ref("inc"), num(41)), "42"},
	}
	for _, tt := range tests {
		got, err := interp.EvaluateExpression(session, tt.expr)
		if err != nil {
			t.Errorf("%s: %v", prettyprinter.Print(tt.expr), err)
			continue
		}
		if s := prettyprinter.Print(got); s != tt.want {
			t.Errorf("%s = %s, want %s", prettyprinter.Print(tt.expr), s, tt.want)
		}
	}
}

func TestEvaluateExpressionLeavesStoreUntouched(t *testing.T) {
	interp := checked()
	session := NewSession()
	if err := interp.EvaluateDeclaration(session, ast.NewDeclaration("one", intT, num(1))); err != nil {
		t.Fatal(err)
	}

	got, err := interp.EvaluateExpression(session, ast.NewLet(bind("x", intT), num(5), bin(ast.OpAdd, ref("x"), ref("one"))))
	if err != nil {
		t.Fatal(err)
	}
	if s := prettyprinter.Print(got); s != "6" {
		t.Errorf("got %s, want 6", s)
	}
	if _, ok := session.Store.Current().Lookup("x"); ok {
		t.Error("let binding is observable in the session store")
	}
	if names := session.Store.Root().Names(); len(names) != 1 {
		t.Errorf("root names = %v, want [one]", names)
	}
	if session.Store.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", session.Store.Depth())
	}
}

func TestEvaluateDeclarationTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		decl *ast.Declaration
		code diagnostics.ErrorCode
	}{
		{"signature mismatch", ast.NewDeclaration("b", boolT, num(1)), diagnostics.ErrA008},
		{"undeclared", ast.NewDeclaration("b", intT, ref("missing")), diagnostics.ErrA001},
		{"open signature", ast.NewDeclaration("b", tvA, num(1)), diagnostics.ErrA002},
		{"self reference", ast.NewDeclaration("b", intT, ref("b")), diagnostics.ErrA001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSession()
			err := checked().EvaluateDeclaration(session, tt.decl)
			var diag *diagnostics.DiagnosticError
			if !errors.As(err, &diag) {
				t.Fatalf("error = %v, want a diagnostic", err)
			}
			if diag.Code != tt.code {
				t.Errorf("code = %s, want %s", diag.Code, tt.code)
			}
			if len(session.Store.Root().Names()) != 0 {
				t.Error("rejected declaration was bound")
			}
		})
	}
}

func TestEvaluateProgramStopsAtFirstFailure(t *testing.T) {
	prog := ast.NewProgram(
		ast.NewDeclaration("a", intT, num(1)),
		ast.NewDeclaration("b", boolT, ref("a")),
		ast.NewDeclaration("c", intT, num(3)),
	)
	session, err := checked().EvaluateProgram(prog)
	var diag *diagnostics.DiagnosticError
	if !errors.As(err, &diag) || diag.Code != diagnostics.ErrA008 {
		t.Fatalf("error = %v, want A008", err)
	}
	if got := strings.Join(session.Store.Root().Names(), ","); got != "a" {
		t.Errorf("root names = %s, want a", got)
	}
}

func TestEvaluateProgramUnknownDeclaration(t *testing.T) {
	prog := ast.NewProgram(ast.NewDeclaration("a", intT, num(1)))
	prog.Order = append(prog.Order, "ghost")

	_, err := checked().EvaluateProgram(prog)
	if !errors.Is(err, ErrUnknownDeclaration) {
		t.Fatalf("error = %v, want ErrUnknownDeclaration", err)
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error %q does not name the declaration", err)
	}
}

func TestEvaluateExpressionTypeError(t *testing.T) {
	_, err := checked().EvaluateClosed(bin(ast.OpAdd, num(1), bl(true)))
	var diag *diagnostics.DiagnosticError
	if !errors.As(err, &diag) {
		t.Fatalf("error = %v, want a diagnostic", err)
	}
	if diag.Code != diagnostics.ErrA003 {
		t.Errorf("code = %s, want A003", diag.Code)
	}
}

func TestInternalErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	interp := NewInterpreter(nil, WithLogger(log.New(&buf, log.DEBUG, false)))
	session := NewSession()

	if _, err := interp.EvaluateExpression(session, ast.NewApply(num(1), num(2))); err == nil {
		t.Fatal("expected an internal error")
	}
	out := buf.String()
	if !strings.Contains(out, "[ERROR]") {
		t.Errorf("internal error not logged at error level:\n%s", out)
	}
	if !strings.Contains(out, "session="+session.ID.String()) {
		t.Errorf("log line lacks the session id:\n%s", out)
	}
	if !strings.Contains(out, "1 2") {
		t.Errorf("log line lacks the offending node:\n%s", out)
	}
}

func TestDeclarationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	interp := NewInterpreter(analyzer.NewChecker(), WithLogger(log.New(&buf, log.TRACE, false)))

	if _, err := interp.EvaluateProgram(ast.NewProgram(ast.NewDeclaration("one", intT, num(1)))); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"[INFO]", "[DEBUG]", "declared one : Int", "one : Int := 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
}

func TestLoggerFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysf.log")
	cfg, err := config.ParseConfig([]byte(fmt.Sprintf("log:\n  level: debug\n  file: %q\n", path)), "sysf.yaml")
	if err != nil {
		t.Fatal(err)
	}

	interp := NewInterpreter(nil, WithConfig(cfg))
	if _, err := interp.EvaluateClosed(ast.NewApply(num(1), num(2))); !errors.Is(err, ErrInternal) {
		t.Fatalf("error = %v, want an internal error", err)
	}
	if err := interp.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"[ERROR]", "cannot apply"} {
		if !strings.Contains(out, want) {
			t.Errorf("log file lacks %q:\n%s", want, out)
		}
	}
}

func TestLoggerFromConfigFallsBackToStderr(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "none"
	cfg.Log.File = filepath.Join(t.TempDir(), "missing", "sysf.log")

	interp := NewInterpreter(nil, WithConfig(cfg))
	defer interp.Close()
	if interp.logger == nil {
		t.Fatal("no logger after the log file failed to open")
	}
	if got, err := interp.EvaluateClosed(num(1)); err != nil || prettyprinter.Print(got) != "1" {
		t.Errorf("EvaluateClosed() = %v, %v", got, err)
	}
}

func TestCloseLeavesGivenLoggerOpen(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, log.ERROR, false)
	interp := NewInterpreter(nil, WithLogger(logger))
	if err := interp.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	logger.Error("still open")
	if !strings.Contains(buf.String(), "still open") {
		t.Error("logger passed with WithLogger stopped writing after Close")
	}
}
