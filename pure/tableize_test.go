package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/capture_ive_go/capfn"
	"github.com/on-the-ground/capture_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestTableize1(t *testing.T) {
	count := 0
	fn := pure.Tableize1(capfn.NewRead1(&count, func(count *int, i int) int {
		*count++
		return i * 2
	}), 2)

	assert.Equal(t, 4, fn.Call(2))
	assert.Equal(t, 4, fn.Call(2)) // cached
	assert.Equal(t, 1, count)
	assert.Equal(t, 6, fn.Call(3))
	assert.Equal(t, 2, count)
}

func TestTableize2(t *testing.T) {
	count := 0
	fn := pure.Tableize2(capfn.NewRead2(3, func(coeff, a, b int) int {
		count++
		return (a + b) * coeff
	}), 2)

	assert.Equal(t, 9, fn.Call(1, 2))
	assert.Equal(t, 9, fn.Call(1, 2))
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, fn.Captured().Inner().Captured())
}

func TestTableize3(t *testing.T) {
	count := 0
	fn := pure.Tableize3(capfn.NewRead3(capfn.Unit{}, func(_ capfn.Unit, a, b, c int) int {
		count++
		return a * b * c
	}), 2)

	assert.Equal(t, 24, fn.Call(2, 3, 4))
	assert.Equal(t, 24, fn.Call(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableize4(t *testing.T) {
	count := 0
	fn := pure.Tableize4(capfn.NewRead4("sum", func(label string, a, b, c, d int) string {
		count++
		return fmt.Sprintf("%s=%d", label, a+b+c+d)
	}), 2)

	assert.Equal(t, "sum=10", fn.Call(1, 2, 3, 4))
	assert.Equal(t, "sum=10", fn.Call(1, 2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableize_CopiesShareTable(t *testing.T) {
	count := 0
	fn := pure.Tableize1(capfn.NewRead1(capfn.Unit{}, func(_ capfn.Unit, s string) int {
		count++
		return len(s)
	}), 4)
	native := fn.Func()

	assert.Equal(t, 5, fn.Call("hello"))
	assert.Equal(t, 5, native("hello"))
	assert.Equal(t, 1, count)
	assert.True(t, fn.Equal(fn.Clone()))
}

func TestTableize_EqualRequiresSameTable(t *testing.T) {
	inner := capfn.NewRead1(capfn.Unit{}, func(_ capfn.Unit, i int) int { return i })

	a := pure.Tableize1(inner, 2)
	b := pure.Tableize1(inner, 2)

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTableizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := pure.Tableize1(capfn.NewRead1(capfn.Unit{}, func(_ capfn.Unit, n NonComparable) int {
		count++
		return len(n.Field)
	}), 2)

	val := fn.Call(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn.Call(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestTableizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	fn := pure.Tableize1(capfn.NewRead1(capfn.Unit{}, func(_ capfn.Unit, t TotallyInvalid) int {
		return len(t.Field)
	}), 2)

	assert.PanicsWithError(t, "pure: argument is neither comparable nor fmt.Stringer: pure_test.TotallyInvalid", func() {
		_ = fn.Call(TotallyInvalid{Field: []int{1}})
	})
}

type label string

func (l label) String() string {
	return string(l)
}

type tag string

func (t tag) String() string {
	return string(t)
}

func TestTableize_StringerKeyedByType(t *testing.T) {
	fn := pure.Tableize1(capfn.NewRead1(capfn.Unit{}, func(_ capfn.Unit, v any) string {
		return fmt.Sprintf("%T", v)
	}), 8)

	assert.Equal(t, "pure_test.label", fn.Call(label("k")))
	assert.Equal(t, "string", fn.Call("k"))
	assert.Equal(t, "pure_test.tag", fn.Call(tag("k")))
	assert.Equal(t, "pure_test.label", fn.Call(label("k")))
}
