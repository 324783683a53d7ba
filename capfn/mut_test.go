package capfn_test

import (
	"testing"

	"github.com/on-the-ground/capture_ive_go/capfn"
	"github.com/on-the-ground/capture_ive_go/tuple"
	"github.com/stretchr/testify/assert"
)

func increment(n *int) int {
	*n++
	return *n
}

func decrement(n *int) int {
	*n--
	return *n
}

func TestMut_Counter(t *testing.T) {
	c := capfn.NewMut0(0, increment)

	assert.Equal(t, 1, c.Call())
	assert.Equal(t, 2, c.Call())
	assert.Equal(t, 3, c.Call())
	assert.Equal(t, 3, c.Captured())
}

func TestMut_Accumulator(t *testing.T) {
	acc := capfn.NewMut2(
		tuple.Of2(0, []string{}),
		func(s *tuple.T2[int, []string], n int, label string) int {
			s.V1 += n
			s.V2 = append(s.V2, label)
			return s.V1
		},
	)

	assert.Equal(t, 2, acc.Call(2, "a"))
	assert.Equal(t, 7, acc.Call(5, "b"))
	assert.Equal(t, []string{"a", "b"}, acc.Captured().V2)
}

func TestMut_AllArities(t *testing.T) {
	m0 := capfn.NewMut0(0, func(c *int) int { *c++; return *c })
	m1 := capfn.NewMut1(0, func(c *int, a int) int { *c += a; return *c })
	m2 := capfn.NewMut2(0, func(c *int, a, b int) int { *c += a + b; return *c })
	m3 := capfn.NewMut3(0, func(c *int, a, b, d int) int { *c += a + b + d; return *c })
	m4 := capfn.NewMut4(0, func(c *int, a, b, d, e int) int { *c += a + b + d + e; return *c })
	m5 := capfn.NewMut5(0, func(c *int, a, b, d, e, f int) int { *c += a + b + d + e + f; return *c })
	m6 := capfn.NewMut6(0, func(c *int, a, b, d, e, f, g int) int { *c += a + b + d + e + f + g; return *c })
	m7 := capfn.NewMut7(0, func(c *int, a, b, d, e, f, g, h int) int { *c += a + b + d + e + f + g + h; return *c })
	m8 := capfn.NewMut8(0, func(c *int, a, b, d, e, f, g, h, i int) int { *c += a + b + d + e + f + g + h + i; return *c })

	for round := 1; round <= 3; round++ {
		assert.Equal(t, round, m0.Call())
		assert.Equal(t, round, m1.Call(1))
		assert.Equal(t, round*2, m2.Call(1, 1))
		assert.Equal(t, round*3, m3.Call(1, 1, 1))
		assert.Equal(t, round*4, m4.Call(1, 1, 1, 1))
		assert.Equal(t, round*5, m5.Call(1, 1, 1, 1, 1))
		assert.Equal(t, round*6, m6.Call(1, 1, 1, 1, 1, 1))
		assert.Equal(t, round*7, m7.Call(1, 1, 1, 1, 1, 1, 1))
		assert.Equal(t, round*8, m8.Call(1, 1, 1, 1, 1, 1, 1, 1))
	}
}

func TestMut_FuncKeepsState(t *testing.T) {
	c := capfn.NewMut0(0, increment)
	c.Call()

	next := c.Func()
	assert.Equal(t, 2, next())
	assert.Equal(t, 3, next())
	assert.Equal(t, 4, next())

	// The original evolves on its own.
	assert.Equal(t, 2, c.Call())
}

func TestMut_CloneIsIndependent(t *testing.T) {
	a := capfn.NewMut0(0, increment)
	a.Call()
	b := a.Clone()

	assert.Equal(t, 2, b.Call())
	assert.Equal(t, 3, b.Call())
	assert.Equal(t, 2, a.Call())
}

func TestMut_CopyIsIndependent(t *testing.T) {
	a := capfn.NewMut0(10, increment)
	b := a

	assert.Equal(t, 11, b.Call())
	assert.Equal(t, 10, a.Captured())
}

func TestMut_CloneUsesCloner(t *testing.T) {
	a := capfn.NewMut0(&counter{}, func(c **counter) int {
		(*c).n++
		return (*c).n
	})
	b := a.Clone()

	assert.Equal(t, 1, a.Call())
	assert.Equal(t, 2, a.Call())
	assert.Equal(t, 1, b.Call())
}

func TestMut_Equal(t *testing.T) {
	a := capfn.NewMut0(0, increment)
	b := capfn.NewMut0(0, increment)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(capfn.NewMut0(0, decrement)))

	a.Call()
	assert.False(t, a.Equal(b))
	b.Call()
	assert.True(t, a.Equal(b))
}

func TestMut_NilFunctionPanics(t *testing.T) {
	assert.PanicsWithValue(t, capfn.ErrNilFunction, func() {
		capfn.NewMut0[int, int](0, nil)
	})
}
