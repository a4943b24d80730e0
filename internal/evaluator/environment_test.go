package evaluator

import (
	"errors"
	"strings"
	"testing"

	"github.com/funvibe/sysf/internal/ast"
	"github.com/funvibe/sysf/internal/typesystem"
)

func TestFrameBindAndLookup(t *testing.T) {
	f := NewFrame()
	f.Bind("x", ast.NewInt(1), typesystem.Int)
	f.Bind("flag", ast.NewBool(true), nil)

	v, ok := f.Lookup("x")
	if !ok || v.(*ast.Constant).Value != ast.Integer(1) {
		t.Fatalf("Lookup(x) = %v, %v", v, ok)
	}
	if typ, ok := f.LookupType("x"); !ok || !typesystem.Equal(typ, typesystem.Int) {
		t.Errorf("LookupType(x) = %v, %v", typ, ok)
	}
	if _, ok := f.LookupType("flag"); ok {
		t.Error("flag was bound without a type but LookupType found one")
	}
	if _, ok := f.Lookup("y"); ok {
		t.Error("Lookup(y) found an unbound name")
	}
	if got := strings.Join(f.Names(), ","); got != "flag,x" {
		t.Errorf("Names() = %s, want flag,x", got)
	}
}

func TestFrameCopiesAreIndependent(t *testing.T) {
	f := NewFrame()
	f.Bind("x", ast.NewInt(1), typesystem.Int)

	g := f
	g.Bind("y", ast.NewInt(2), typesystem.Int)
	g.Bind("x", ast.NewInt(3), typesystem.Int)

	if _, ok := f.Lookup("y"); ok {
		t.Error("binding in the copy leaked into the original")
	}
	if v, _ := f.Lookup("x"); v.(*ast.Constant).Value != ast.Integer(1) {
		t.Errorf("original x = %v, want 1", v)
	}
}

func TestFrameResolve(t *testing.T) {
	f := NewFrame()
	f.BindTypeVar("a", typesystem.Bool)

	got := f.Resolve(typesystem.TFunc{Param: typesystem.TVar{Name: "a"}, ReturnType: typesystem.TVar{Name: "b"}})
	want := typesystem.TFunc{Param: typesystem.Bool, ReturnType: typesystem.TVar{Name: "b"}}
	if !typesystem.Equal(got, want) {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestFrameString(t *testing.T) {
	f := NewFrame()
	f.Bind("b", ast.NewBool(false), typesystem.Bool)
	f.Bind("a", ast.NewInt(1), typesystem.Int)

	want := "a : Int := 1\nb : Bool := false\n"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSnapshotEnterExeunt(t *testing.T) {
	s := NewSnapshot()
	s.Current().Bind("x", ast.NewInt(1), typesystem.Int)

	s.Enter()
	if s.Depth() != 1 {
		t.Fatalf("Depth() = %d after Enter, want 1", s.Depth())
	}
	if _, ok := s.Current().Lookup("x"); !ok {
		t.Error("entered frame does not see the outer binding")
	}
	s.Current().Bind("y", ast.NewInt(2), typesystem.Int)

	if err := s.Exeunt(); err != nil {
		t.Fatalf("Exeunt() = %v", err)
	}
	if _, ok := s.Current().Lookup("y"); ok {
		t.Error("binding survived Exeunt")
	}
	if _, ok := s.Current().Lookup("x"); !ok {
		t.Error("outer binding lost after Exeunt")
	}
}

func TestSnapshotRootCannotBePopped(t *testing.T) {
	s := NewSnapshot()
	err := s.Exeunt()
	if !errors.Is(err, ErrNoOpenFrame) {
		t.Fatalf("Exeunt() on root = %v, want ErrNoOpenFrame", err)
	}
	if !errors.Is(err, ErrInternal) {
		t.Error("ErrNoOpenFrame should be an internal error")
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
}

func TestAdventureDiscardsBindings(t *testing.T) {
	s := NewSnapshot()

	v, err := Adventure(s, func() (int, error) {
		s.Current().Bind("tmp", ast.NewInt(1), typesystem.Int)
		return 42, nil
	})
	if err != nil || v != 42 {
		t.Fatalf("Adventure() = %d, %v", v, err)
	}
	if _, ok := s.Current().Lookup("tmp"); ok {
		t.Error("binding made during the adventure is still visible")
	}

	failure := errors.New("boom")
	_, err = Adventure(s, func() (int, error) {
		s.Current().Bind("tmp", ast.NewInt(1), typesystem.Int)
		return 0, failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("Adventure() error = %v, want boom", err)
	}
	if s.Depth() != 0 {
		t.Errorf("frame left open after failing adventure: depth %d", s.Depth())
	}
}

func TestSojournRunsInGivenFrame(t *testing.T) {
	s := NewSnapshot()
	s.Current().Bind("outer", ast.NewInt(1), typesystem.Int)

	captured := NewFrame()
	captured.Bind("inner", ast.NewInt(2), typesystem.Int)

	_, err := Sojourn(s, captured, func() (struct{}, error) {
		if _, ok := s.Current().Lookup("outer"); ok {
			t.Error("sojourn frame sees the caller's bindings")
		}
		if _, ok := s.Current().Lookup("inner"); !ok {
			t.Error("sojourn frame lacks the captured binding")
		}
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Current().Lookup("outer"); !ok {
		t.Error("caller frame not restored")
	}
}
