package evaluator

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/raviqqe/hamt"

	"github.com/funvibe/sysf/internal/prettyprinter"
	"github.com/funvibe/sysf/internal/typesystem"
)

// key is a hamt entry for a bound name.
type key string

func (k key) Hash() uint32 {
	h := fnv.New32a()
	h.Write([]byte(k))
	return h.Sum32()
}

func (k key) Equal(e hamt.Entry) bool {
	other, ok := e.(key)
	return ok && other == k
}

// Frame is one scope of the store. It maps names to values and to the
// types they were declared with, and type variables to the types they were
// instantiated with.
//
// The maps are persistent, so copying a Frame is O(1) and later bindings in
// the copy never show through to the original.
type Frame struct {
	values   hamt.Map
	types    hamt.Map
	typeVars hamt.Map
}

func NewFrame() Frame {
	return Frame{values: hamt.NewMap(), types: hamt.NewMap(), typeVars: hamt.NewMap()}
}

// Bind binds name to value and to its declared type. A nil type only binds
// the value.
func (f *Frame) Bind(name string, value Value, t typesystem.Type) {
	f.values = f.values.Insert(key(name), value)
	if t != nil {
		f.types = f.types.Insert(key(name), t)
	}
}

// BindTypeVar records the type a type variable stands for.
func (f *Frame) BindTypeVar(name string, t typesystem.Type) {
	f.typeVars = f.typeVars.Insert(key(name), t)
}

func (f *Frame) Lookup(name string) (Value, bool) {
	v := f.values.Find(key(name))
	if v == nil {
		return nil, false
	}
	return v.(Value), true
}

func (f *Frame) LookupType(name string) (typesystem.Type, bool) {
	t := f.types.Find(key(name))
	if t == nil {
		return nil, false
	}
	return t.(typesystem.Type), true
}

func (f *Frame) LookupTypeVar(name string) (typesystem.Type, bool) {
	t := f.typeVars.Find(key(name))
	if t == nil {
		return nil, false
	}
	return t.(typesystem.Type), true
}

// Types exports the name to type mapping, the environment a checker needs.
func (f *Frame) Types() map[string]typesystem.Type {
	out := make(map[string]typesystem.Type, f.types.Size())
	each(f.types, func(name string, v interface{}) {
		out[name] = v.(typesystem.Type)
	})
	return out
}

// Names returns the bound value names in lexical order.
func (f *Frame) Names() []string {
	var names []string
	each(f.values, func(name string, _ interface{}) {
		names = append(names, name)
	})
	slices.Sort(names)
	return names
}

// Resolve replaces the type variables of t that this frame has
// instantiated.
func (f *Frame) Resolve(t typesystem.Type) typesystem.Type {
	if t == nil || f.typeVars.Size() == 0 {
		return t
	}
	subst := typesystem.Subst{}
	each(f.typeVars, func(name string, v interface{}) {
		subst[name] = v.(typesystem.Type)
	})
	return t.Apply(subst)
}

// String dumps the frame one binding per line as "name : type := value".
func (f *Frame) String() string {
	var sb strings.Builder
	for _, name := range f.Names() {
		v, _ := f.Lookup(name)
		t, ok := f.LookupType(name)
		typ := "?"
		if ok {
			typ = t.String()
		}
		fmt.Fprintf(&sb, "%s : %s := %s\n", name, typ, prettyprinter.Print(v))
	}
	return sb.String()
}

func each(m hamt.Map, fn func(name string, v interface{})) {
	for k, v, rest := m.FirstRest(); k != nil; k, v, rest = rest.FirstRest() {
		fn(string(k.(key)), v)
	}
}

// Snapshot is the stack of frames an evaluation runs against. Lookups and
// bindings go to the top frame, which already contains everything visible
// from the frames below it.
type Snapshot struct {
	frames []Frame
}

// NewSnapshot returns a snapshot holding only the root frame. The root
// frame accumulates top-level declarations and is never popped.
func NewSnapshot() *Snapshot {
	return &Snapshot{frames: []Frame{NewFrame()}}
}

// Enter pushes a copy of the current frame.
func (s *Snapshot) Enter() {
	s.frames = append(s.frames, s.frames[len(s.frames)-1])
}

// Push makes f the current frame, such as the frame a closure captured.
func (s *Snapshot) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Exeunt pops the current frame, discarding every binding made since the
// matching Enter or Push.
func (s *Snapshot) Exeunt() error {
	if len(s.frames) <= 1 {
		return ErrNoOpenFrame
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Current returns the top frame. Bindings made through it stay in the
// snapshot until the frame is popped.
func (s *Snapshot) Current() *Frame {
	return &s.frames[len(s.frames)-1]
}

// Root returns the frame holding the top-level declarations.
func (s *Snapshot) Root() *Frame {
	return &s.frames[0]
}

// Depth is the number of open frames above the root.
func (s *Snapshot) Depth() int {
	return len(s.frames) - 1
}

// Adventure runs fn in a copy of the current frame and pops that frame on
// every exit path, so nothing fn binds outlives it.
func Adventure[T any](s *Snapshot, fn func() (T, error)) (T, error) {
	s.Enter()
	return leave(s, fn)
}

// Sojourn is Adventure with an arbitrary frame in place of the copy.
func Sojourn[T any](s *Snapshot, f Frame, fn func() (T, error)) (T, error) {
	s.Push(f)
	return leave(s, fn)
}

func leave[T any](s *Snapshot, fn func() (T, error)) (result T, err error) {
	defer func() {
		if exitErr := s.Exeunt(); exitErr != nil && err == nil {
			err = exitErr
		}
	}()
	return fn()
}
