package capfn

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap/zapcore"
)

// Unit is the captured state of a callable that captures nothing.
type Unit = struct{}

var (
	// ErrConsumed is raised when a once callable is used after its single call.
	ErrConsumed = errors.New("capfn: once callable used after consumption")

	// ErrNilFunction is raised when a callable is constructed without a function.
	ErrNilFunction = errors.New("capfn: nil function")
)

// Cloner is implemented by captured states that need more than a shallow copy
// when their callable is cloned.
type Cloner[C any] interface {
	Clone() C
}

// Equaler is implemented by captured states with their own notion of equality.
type Equaler[C any] interface {
	Equal(C) bool
}

func cloneCaptured[C any](c C) C {
	if cl, ok := any(c).(Cloner[C]); ok {
		return cl.Clone()
	}
	return c
}

func deref[C any](p *C) (C, bool) {
	if p == nil {
		var zero C
		return zero, false
	}
	return *p, true
}

// capturedEqual prefers Equal, then ==, and otherwise walks the value. Pointers
// compare by identity as with ==. Func values met on the way compare by code
// pointer, so a state holding another callable equals itself.
func capturedEqual[C any](a, b C) bool {
	if eq, ok := any(a).(Equaler[C]); ok {
		return eq.Equal(b)
	}
	return valueEqual(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem(), map[visit]bool{})
}

type visit struct {
	a, b uintptr
	typ  reflect.Type
}

var boolType = reflect.TypeFor[bool]()

// equalMethod returns the result of a.Equal(b) when a's type declares
// Equal(T) bool for its own type T.
func equalMethod(a, b reflect.Value) (equal, ok bool) {
	if !a.CanInterface() || !b.CanInterface() {
		return false, false
	}
	switch a.Kind() {
	case reflect.Interface:
		return false, false
	case reflect.Pointer:
		if a.IsNil() {
			return false, false
		}
	}
	m := a.MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.In(0) != a.Type() || mt.NumOut() != 1 || mt.Out(0) != boolType {
		return false, false
	}
	return m.Call([]reflect.Value{b})[0].Bool(), true
}

func valueEqual(a, b reflect.Value, visited map[visit]bool) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	if eq, ok := equalMethod(a, b); ok {
		return eq
	}
	if a.Comparable() && b.Comparable() {
		return a.Equal(b)
	}

	switch a.Kind() {
	case reflect.Func:
		return funcValuePointer(a) == funcValuePointer(b)
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return valueEqual(a.Elem(), b.Elem(), visited)
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !valueEqual(a.Field(i), b.Field(i), visited) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !valueEqual(a.Index(i), b.Index(i), visited) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		if a.Len() == 0 || a.Pointer() == b.Pointer() {
			return true
		}
		if seen(a, b, visited) {
			return true
		}
		for i := 0; i < a.Len(); i++ {
			if !valueEqual(a.Index(i), b.Index(i), visited) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		if seen(a, b, visited) {
			return true
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !valueEqual(iter.Value(), bv, visited) {
				return false
			}
		}
		return true
	}
	return false
}

// seen records the pair so cyclic states terminate.
func seen(a, b reflect.Value, visited map[visit]bool) bool {
	v := visit{a: a.Pointer(), b: b.Pointer(), typ: a.Type()}
	if visited[v] {
		return true
	}
	visited[v] = true
	return false
}

func funcPointer(f any) uintptr {
	v := reflect.ValueOf(f)
	if !v.IsValid() {
		return 0
	}
	return funcValuePointer(v)
}

func funcValuePointer(v reflect.Value) uintptr {
	if v.IsNil() {
		return 0
	}
	return v.Pointer()
}

// sameFunction compares code pointers. Two closures built from the same
// literal share a pointer, which is why environment belongs in captured.
func sameFunction(a, b any) bool {
	return funcPointer(a) == funcPointer(b)
}

func funcName(f any) string {
	pc := funcPointer(f)
	if pc == 0 {
		return "<nil>"
	}
	return runtime.FuncForPC(pc).Name()
}

// FuncID returns a stable identifier for function, derived from its runtime
// name rather than its address so it survives process restarts.
func FuncID(function any) uint64 {
	return xxhash.Sum64String(funcName(function))
}

type kind string

const (
	kindRead kind = "read"
	kindMut  kind = "mut"
	kindOnce kind = "once"
)

// shape is the common description used by String and MarshalLogObject.
type shape struct {
	kind     kind
	arity    int
	function any
	captured any
	consumed bool
}

func (s shape) String() string {
	if s.consumed {
		return fmt.Sprintf("%s%d{consumed, function: %s}", s.kind, s.arity, funcName(s.function))
	}
	return fmt.Sprintf("%s%d{captured: %v, function: %s}", s.kind, s.arity, s.captured, funcName(s.function))
}

func (s shape) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", string(s.kind))
	enc.AddInt("arity", s.arity)
	enc.AddString("function", funcName(s.function))
	enc.AddUint64("function_id", FuncID(s.function))
	if s.kind == kindOnce {
		enc.AddBool("consumed", s.consumed)
		if s.consumed {
			return nil
		}
	}
	return enc.AddReflected("captured", s.captured)
}
