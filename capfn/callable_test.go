package capfn_test

import (
	"testing"

	"github.com/on-the-ground/capture_ive_go/capfn"
	"github.com/on-the-ground/capture_ive_go/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type counter struct {
	n int
}

func (c *counter) Clone() *counter {
	return &counter{n: c.n}
}

// caseless compares names ignoring ASCII case.
type caseless string

func (c caseless) Equal(other caseless) bool {
	if len(c) != len(other) {
		return false
	}
	for i := 0; i < len(c); i++ {
		a, b := c[i], other[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

func greet(name caseless) string {
	return "hello " + string(name)
}

func TestEqual_UsesEqualer(t *testing.T) {
	a := capfn.NewRead0(caseless("Gopher"), greet)

	assert.True(t, a.Equal(capfn.NewRead0(caseless("gOPHER"), greet)))
	assert.False(t, a.Equal(capfn.NewRead0(caseless("gophers"), greet)))
}

func TestEqual_InterfaceCapture(t *testing.T) {
	describe := func(v any) string { return "" }
	a := capfn.NewRead0[any](nil, describe)

	assert.True(t, a.Equal(capfn.NewRead0[any](nil, describe)))
	assert.False(t, a.Equal(capfn.NewRead0[any](1, describe)))
	assert.True(t, capfn.NewRead0[any]([]int{1}, describe).Equal(capfn.NewRead0[any]([]int{1}, describe)))
}

func TestFuncID(t *testing.T) {
	assert.Equal(t, capfn.FuncID(addMul), capfn.FuncID(addMul))
	assert.NotEqual(t, capfn.FuncID(addMul), capfn.FuncID(subMul))
}

func TestMarshalLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, capfn.NewRead2(3, addMul).MarshalLogObject(enc))

	assert.Equal(t, "read", enc.Fields["kind"])
	assert.Equal(t, 2, enc.Fields["arity"])
	assert.Equal(t, "github.com/on-the-ground/capture_ive_go/capfn_test.addMul", enc.Fields["function"])
	assert.Equal(t, capfn.FuncID(addMul), enc.Fields["function_id"])
	assert.Equal(t, 3, enc.Fields["captured"])
}

func TestMarshalLogObject_ConsumedOnce(t *testing.T) {
	fn := capfn.NewOnce2(3, addMul)
	fn.Discard()

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, fn.MarshalLogObject(enc))

	assert.Equal(t, "once", enc.Fields["kind"])
	assert.Equal(t, true, enc.Fields["consumed"])
	assert.NotContains(t, enc.Fields, "captured")
}

func TestMarshalLogObject_ThroughLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	c := capfn.NewMut0(0, increment)
	c.Call()
	logger.Debug("counter", zap.Object("callable", c))

	entries := logs.FilterMessage("counter").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()["callable"].(map[string]any)
	assert.Equal(t, "mut", fields["kind"])
	assert.Equal(t, 1, fields["captured"])
}

type adder = capfn.Read2[int, int, int, int]

func applyInner(c tuple.T2[int, adder], x int) int {
	return c.V2.Call(c.V1, x)
}

func TestEqual_CallableCapturingCallable(t *testing.T) {
	inner := capfn.NewRead2(3, addMul)
	a := capfn.NewRead1(tuple.Of2(1, inner), applyInner)

	assert.Equal(t, 9, a.Call(2))
	assert.True(t, inner.Equal(inner))
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(a.Clone()))
	assert.True(t, a.Equal(capfn.NewRead1(tuple.Of2(1, capfn.NewRead2(3, addMul)), applyInner)))
	assert.False(t, a.Equal(capfn.NewRead1(tuple.Of2(1, capfn.NewRead2(4, addMul)), applyInner)))
	assert.False(t, a.Equal(capfn.NewRead1(tuple.Of2(1, capfn.NewRead2(3, subMul)), applyInner)))
}

type hooks struct {
	name   string
	onDone func(int) int
	seen   []int
}

func double(n int) int {
	return n * 2
}

func triple(n int) int {
	return n * 3
}

func runHooks(h hooks, n int) int {
	return h.onDone(n) + len(h.seen)
}

func TestEqual_FuncFieldsCompareByPointer(t *testing.T) {
	a := capfn.NewRead1(hooks{name: "x", onDone: double, seen: []int{1}}, runHooks)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(capfn.NewRead1(hooks{name: "x", onDone: double, seen: []int{1}}, runHooks)))
	assert.False(t, a.Equal(capfn.NewRead1(hooks{name: "x", onDone: triple, seen: []int{1}}, runHooks)))
	assert.False(t, a.Equal(capfn.NewRead1(hooks{name: "x", onDone: double, seen: []int{2}}, runHooks)))
	assert.False(t, a.Equal(capfn.NewRead1(hooks{name: "x", seen: []int{1}}, runHooks)))
}

func TestEqual_CallableInsideInterfaceSlice(t *testing.T) {
	build := func(coeff int) capfn.Mut0[[]any, int] {
		return capfn.NewMut0([]any{coeff, capfn.NewRead2(coeff, addMul)}, func(c *[]any) int {
			return len(*c)
		})
	}

	assert.True(t, build(3).Equal(build(3)))
	assert.False(t, build(3).Equal(build(4)))
}

func TestMaxArity(t *testing.T) {
	assert.Equal(t, capfn.MaxArity, capfn.NewRead8(0, func(c, a, b, d, e, f, g, h, i int) int {
		return 0
	}).Arity())
}
