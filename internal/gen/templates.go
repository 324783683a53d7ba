package main

const readTemplate = `// Code generated by internal/gen; DO NOT EDIT.

package {{.Package}}

import "go.uber.org/zap/zapcore"

// MaxArity is the largest parameter count with a generated callable type.
const MaxArity = {{.Max}}
{{range .Arities}}
// Read{{.N}} is a read-only callable taking {{.Word}}.
// The function receives a copy of the captured state on every call.
type Read{{.N}}[{{.TypeParams}} any] struct {
	captured C
	function func(C{{.ParamTail}}) R
}

// NewRead{{.N}} binds captured to function.
// It panics with ErrNilFunction if function is nil.
func NewRead{{.N}}[{{.TypeParams}} any](captured C, function func(C{{.ParamTail}}) R) Read{{.N}}[{{.TypeParams}}] {
	if function == nil {
		panic(ErrNilFunction)
	}
	return Read{{.N}}[{{.TypeParams}}]{captured: captured, function: function}
}

// Call invokes the function with the captured state and the arguments.
func (r Read{{.N}}[{{.TypeParams}}]) Call({{.Params}}) R {
	return r.function(r.captured{{.ArgTail}})
}

// Func returns a plain function bound to a private clone of r.
func (r Read{{.N}}[{{.TypeParams}}]) Func() func({{.ParamTypes}}) R {
	return r.Clone().Call
}

func (r Read{{.N}}[{{.TypeParams}}]) Captured() C {
	return r.captured
}

func (r Read{{.N}}[{{.TypeParams}}]) Arity() int {
	return {{.N}}
}

// Clone duplicates the captured state and keeps the function.
func (r Read{{.N}}[{{.TypeParams}}]) Clone() Read{{.N}}[{{.TypeParams}}] {
	return Read{{.N}}[{{.TypeParams}}]{captured: cloneCaptured(r.captured), function: r.function}
}

// Equal reports whether both callables share captured state and function.
func (r Read{{.N}}[{{.TypeParams}}]) Equal(other Read{{.N}}[{{.TypeParams}}]) bool {
	return sameFunction(r.function, other.function) && capturedEqual(r.captured, other.captured)
}

func (r Read{{.N}}[{{.TypeParams}}]) String() string {
	return shape{kind: kindRead, arity: {{.N}}, function: r.function, captured: r.captured}.String()
}

func (r Read{{.N}}[{{.TypeParams}}]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return shape{kind: kindRead, arity: {{.N}}, function: r.function, captured: r.captured}.MarshalLogObject(enc)
}
{{end}}
`

const mutTemplate = `// Code generated by internal/gen; DO NOT EDIT.

package {{.Package}}

import "go.uber.org/zap/zapcore"
{{range .Arities}}
// Mut{{.N}} is a stateful callable taking {{.Word}}.
// The function receives a pointer to the captured state, so changes persist
// across calls.
type Mut{{.N}}[{{.TypeParams}} any] struct {
	captured C
	function func(*C{{.ParamTail}}) R
}

// NewMut{{.N}} binds captured to function.
// It panics with ErrNilFunction if function is nil.
func NewMut{{.N}}[{{.TypeParams}} any](captured C, function func(*C{{.ParamTail}}) R) Mut{{.N}}[{{.TypeParams}}] {
	if function == nil {
		panic(ErrNilFunction)
	}
	return Mut{{.N}}[{{.TypeParams}}]{captured: captured, function: function}
}

// Call invokes the function with a pointer to the captured state.
// Calls on the same value must not run concurrently.
func (m *Mut{{.N}}[{{.TypeParams}}]) Call({{.Params}}) R {
	return m.function(&m.captured{{.ArgTail}})
}

// Func returns a plain function owning a private copy of m.
// The copy keeps its own state between invocations.
func (m Mut{{.N}}[{{.TypeParams}}]) Func() func({{.ParamTypes}}) R {
	c := m.Clone()
	return c.Call
}

func (m Mut{{.N}}[{{.TypeParams}}]) Captured() C {
	return m.captured
}

func (m Mut{{.N}}[{{.TypeParams}}]) Arity() int {
	return {{.N}}
}

// Clone duplicates the captured state and keeps the function.
func (m Mut{{.N}}[{{.TypeParams}}]) Clone() Mut{{.N}}[{{.TypeParams}}] {
	return Mut{{.N}}[{{.TypeParams}}]{captured: cloneCaptured(m.captured), function: m.function}
}

// Equal reports whether both callables share captured state and function.
func (m Mut{{.N}}[{{.TypeParams}}]) Equal(other Mut{{.N}}[{{.TypeParams}}]) bool {
	return sameFunction(m.function, other.function) && capturedEqual(m.captured, other.captured)
}

func (m Mut{{.N}}[{{.TypeParams}}]) String() string {
	return shape{kind: kindMut, arity: {{.N}}, function: m.function, captured: m.captured}.String()
}

func (m Mut{{.N}}[{{.TypeParams}}]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return shape{kind: kindMut, arity: {{.N}}, function: m.function, captured: m.captured}.MarshalLogObject(enc)
}
{{end}}
`

const onceTemplate = `// Code generated by internal/gen; DO NOT EDIT.

package {{.Package}}

import (
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)
{{range .Arities}}
// Once{{.N}} is a consuming callable taking {{.Word}}.
// The captured state is moved into the function by the single call.
// All methods are safe to call concurrently; exactly one consuming call wins.
type Once{{.N}}[{{.TypeParams}} any] struct {
	captured atomic.Pointer[C]
	function func(C{{.ParamTail}}) R
}

// NewOnce{{.N}} binds captured to function.
// It panics with ErrNilFunction if function is nil.
func NewOnce{{.N}}[{{.TypeParams}} any](captured C, function func(C{{.ParamTail}}) R) *Once{{.N}}[{{.TypeParams}}] {
	if function == nil {
		panic(ErrNilFunction)
	}
	o := &Once{{.N}}[{{.TypeParams}}]{function: function}
	o.captured.Store(&captured)
	return o
}

// take claims the captured state. The stored value is never written, so
// readers holding the old pointer see it intact.
func (o *Once{{.N}}[{{.TypeParams}}]) take() (C, bool) {
	return deref(o.captured.Swap(nil))
}

func (o *Once{{.N}}[{{.TypeParams}}]) load() (C, bool) {
	return deref(o.captured.Load())
}

// Call moves the captured state into the function.
// It panics with ErrConsumed if o was already consumed.
func (o *Once{{.N}}[{{.TypeParams}}]) Call({{.Params}}) R {
	captured, ok := o.take()
	if !ok {
		panic(ErrConsumed)
	}
	return o.function(captured{{.ArgTail}})
}

// TryCall is like Call but returns ErrConsumed instead of panicking.
func (o *Once{{.N}}[{{.TypeParams}}]) TryCall({{.Params}}) (R, error) {
	captured, ok := o.take()
	if !ok {
		var zero R
		return zero, ErrConsumed
	}
	return o.function(captured{{.ArgTail}}), nil
}

// Func consumes o and returns a single-use plain function.
// It panics with ErrConsumed if o was already consumed, and so does the
// returned function on its second invocation.
func (o *Once{{.N}}[{{.TypeParams}}]) Func() func({{.ParamTypes}}) R {
	captured, ok := o.take()
	if !ok {
		panic(ErrConsumed)
	}
	return NewOnce{{.N}}(captured, o.function).Call
}

// Discard consumes o without calling the function.
func (o *Once{{.N}}[{{.TypeParams}}]) Discard() {
	o.take()
}

func (o *Once{{.N}}[{{.TypeParams}}]) Consumed() bool {
	return o.captured.Load() == nil
}

// Captured returns the captured state, or its zero value once consumed.
func (o *Once{{.N}}[{{.TypeParams}}]) Captured() C {
	captured, _ := o.load()
	return captured
}

func (o *Once{{.N}}[{{.TypeParams}}]) Arity() int {
	return {{.N}}
}

// Clone returns an unconsumed duplicate of o.
// It panics with ErrConsumed if o was already consumed.
func (o *Once{{.N}}[{{.TypeParams}}]) Clone() *Once{{.N}}[{{.TypeParams}}] {
	captured, ok := o.load()
	if !ok {
		panic(ErrConsumed)
	}
	return NewOnce{{.N}}(cloneCaptured(captured), o.function)
}

// Equal reports whether both callables share consumption, captured state and function.
func (o *Once{{.N}}[{{.TypeParams}}]) Equal(other *Once{{.N}}[{{.TypeParams}}]) bool {
	a, aok := o.load()
	b, bok := other.load()
	return aok == bok &&
		sameFunction(o.function, other.function) &&
		capturedEqual(a, b)
}

func (o *Once{{.N}}[{{.TypeParams}}]) String() string {
	captured, ok := o.load()
	return shape{kind: kindOnce, arity: {{.N}}, function: o.function, captured: captured, consumed: !ok}.String()
}

func (o *Once{{.N}}[{{.TypeParams}}]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	captured, ok := o.load()
	return shape{kind: kindOnce, arity: {{.N}}, function: o.function, captured: captured, consumed: !ok}.MarshalLogObject(enc)
}
{{end}}
`

const tupleTemplate = `// Code generated by internal/gen; DO NOT EDIT.

package {{.Package}}
{{range .Arities}}
// T{{.N}} holds {{.Word}} in declaration order.
type T{{.N}}[{{.TypeParams}} any] struct {
{{.StructFields}}
}

// Of{{.N}} builds a T{{.N}} from its values.
func Of{{.N}}[{{.TypeParams}} any]({{.Params}}) T{{.N}}[{{.TypeParams}}] {
	return {{.Literal}}
}

// Unpack returns the values in declaration order.
func (t T{{.N}}[{{.TypeParams}}]) Unpack() ({{.ParamTypes}}) {
	return {{.Values}}
}
{{end}}
`

