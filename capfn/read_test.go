package capfn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/capture_ive_go/capfn"
	"github.com/on-the-ground/capture_ive_go/tuple"
	"github.com/stretchr/testify/assert"
)

func addMul(coeff, a, b int) int {
	return (a + b) * coeff
}

func subMul(coeff, a, b int) int {
	return (a - b) * coeff
}

func answer(capfn.Unit) int {
	return 42
}

func TestRead_AddMul(t *testing.T) {
	fn := capfn.NewRead2(3, addMul)

	assert.Equal(t, 9, fn.Call(1, 2))
	assert.Equal(t, 9, fn.Call(1, 2))
	assert.Equal(t, 3, fn.Captured())
	assert.Equal(t, 2, fn.Arity())
}

func TestRead_ConstantWithoutCaptures(t *testing.T) {
	fn := capfn.NewRead0(capfn.Unit{}, answer)

	for i := 0; i < 5; i++ {
		assert.Equal(t, 42, fn.Call())
	}
}

func TestRead_CallDoesNotChangeCaptured(t *testing.T) {
	fn := capfn.NewRead1([2]int{1, 2}, func(c [2]int, i int) int {
		c[i] = 100
		return c[0] + c[1]
	})

	assert.Equal(t, 102, fn.Call(0))
	assert.Equal(t, 101, fn.Call(1))
	assert.Equal(t, [2]int{1, 2}, fn.Captured())
}

func TestRead_AllArities(t *testing.T) {
	c := 1000
	assert.Equal(t, 1000, capfn.NewRead0(c, func(c int) int { return c }).Call())
	assert.Equal(t, 1001, capfn.NewRead1(c, func(c, a int) int { return c + a }).Call(1))
	assert.Equal(t, 1003, capfn.NewRead2(c, func(c, a, b int) int { return c + a + b }).Call(1, 2))
	assert.Equal(t, 1006, capfn.NewRead3(c, func(c, a, b, d int) int {
		return c + a + b + d
	}).Call(1, 2, 3))
	assert.Equal(t, 1010, capfn.NewRead4(c, func(c, a, b, d, e int) int {
		return c + a + b + d + e
	}).Call(1, 2, 3, 4))
	assert.Equal(t, 1015, capfn.NewRead5(c, func(c, a, b, d, e, f int) int {
		return c + a + b + d + e + f
	}).Call(1, 2, 3, 4, 5))
	assert.Equal(t, 1021, capfn.NewRead6(c, func(c, a, b, d, e, f, g int) int {
		return c + a + b + d + e + f + g
	}).Call(1, 2, 3, 4, 5, 6))
	assert.Equal(t, 1028, capfn.NewRead7(c, func(c, a, b, d, e, f, g, h int) int {
		return c + a + b + d + e + f + g + h
	}).Call(1, 2, 3, 4, 5, 6, 7))
	assert.Equal(t, 1036, capfn.NewRead8(c, func(c, a, b, d, e, f, g, h, i int) int {
		return c + a + b + d + e + f + g + h + i
	}).Call(1, 2, 3, 4, 5, 6, 7, 8))
}

func TestRead_MixedParameterTypes(t *testing.T) {
	fn := capfn.NewRead3(
		tuple.Of2("item", 2),
		func(c tuple.T2[string, int], sep string, n float64, upper bool) string {
			name, width := c.Unpack()
			s := fmt.Sprintf("%s%s%.*f", name, sep, width, n)
			if upper {
				return "[" + s + "]"
			}
			return s
		},
	)

	assert.Equal(t, "item=3.14", fn.Call("=", 3.14159, false))
	assert.Equal(t, "[item:1.00]", fn.Call(":", 1, true))
}

func TestRead_Func(t *testing.T) {
	fn := capfn.NewRead2(3, addMul)
	native := fn.Func()

	var plain func(int, int) int = native
	assert.Equal(t, 9, plain(1, 2))
	assert.Equal(t, fn.Call(4, 5), plain(4, 5))

	// The original stays usable.
	assert.Equal(t, 9, fn.Call(1, 2))
}

func TestRead_FuncOwnsClone(t *testing.T) {
	fn := capfn.NewRead0(&counter{n: 1}, func(c *counter) int { return c.n })
	native := fn.Func()

	fn.Captured().n = 10
	assert.Equal(t, 10, fn.Call())
	assert.Equal(t, 1, native())
}

func TestRead_Equal(t *testing.T) {
	a := capfn.NewRead2(3, addMul)
	b := capfn.NewRead2(3, addMul)
	copied := a

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(copied))
	assert.False(t, a.Equal(capfn.NewRead2(4, addMul)))
	assert.False(t, a.Equal(capfn.NewRead2(3, subMul)))
}

func TestRead_EqualNonComparableCapture(t *testing.T) {
	sum := func(c []int, i int) int { return c[i] }
	a := capfn.NewRead1([]int{1, 2}, sum)

	assert.True(t, a.Equal(capfn.NewRead1([]int{1, 2}, sum)))
	assert.False(t, a.Equal(capfn.NewRead1([]int{1, 3}, sum)))
}

func TestRead_Clone(t *testing.T) {
	a := capfn.NewRead0(&counter{n: 1}, func(c *counter) int { return c.n })
	b := a.Clone()

	a.Captured().n = 5
	assert.Equal(t, 5, a.Call())
	assert.Equal(t, 1, b.Call())
}

func TestRead_NilFunctionPanics(t *testing.T) {
	assert.PanicsWithValue(t, capfn.ErrNilFunction, func() {
		capfn.NewRead1[int, int, int](1, nil)
	})
}

func TestRead_String(t *testing.T) {
	fn := capfn.NewRead2(3, addMul)

	assert.Equal(t, "read2{captured: 3, function: github.com/on-the-ground/capture_ive_go/capfn_test.addMul}", fn.String())
}
