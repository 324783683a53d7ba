package pure

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/on-the-ground/capture_ive_go/capfn"
)

// ErrUnkeyable is raised when an argument is neither comparable nor a fmt.Stringer.
var ErrUnkeyable = errors.New("pure: argument is neither comparable nor fmt.Stringer")

// Table is the captured state of a tableized callable: the wrapped callable
// and the memo shared by all copies of it.
type Table[F interface{ Equal(F) bool }, R any] struct {
	inner F
	memo  *Trie[R]
}

func newTable[R any, F interface{ Equal(F) bool }](inner F, maxTableSize uint32) Table[F, R] {
	return Table[F, R]{inner: inner, memo: NewTrie[R](maxTableSize)}
}

// Inner returns the wrapped callable.
func (t Table[F, R]) Inner() F {
	return t.inner
}

// Equal reports whether both tables wrap equal callables and share a memo.
func (t Table[F, R]) Equal(other Table[F, R]) bool {
	return t.memo == other.memo && t.inner.Equal(other.inner)
}

func (t Table[F, R]) lookup(keys []Key, compute func() R) R {
	v, ok := t.memo.Load(keys)
	if !ok {
		v = compute()
		t.memo.Store(keys, v)
	}
	return v
}

// stringerKey tags a String() result with its dynamic type so it never
// collides with a plain string or another Stringer printing the same text.
type stringerKey struct {
	typ reflect.Type
	s   string
}

func tableKey(arg any) Key {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringerKey{typ: reflect.TypeOf(arg), s: stringer.String()}
	}
	if typ := reflect.TypeOf(arg); typ != nil && !typ.Comparable() {
		panic(fmt.Errorf("%w: %T", ErrUnkeyable, arg))
	}
	return arg
}

// Tableize1 memoizes a pure read callable by its argument.
// Do not use it on functions depending on time, I/O or other outside state.
func Tableize1[C, P1, R any](
	r capfn.Read1[C, P1, R],
	maxTableSize uint32,
) capfn.Read1[Table[capfn.Read1[C, P1, R], R], P1, R] {
	return capfn.NewRead1(newTable[R](r, maxTableSize), callTable1[C, P1, R])
}

func callTable1[C, P1, R any](t Table[capfn.Read1[C, P1, R], R], p1 P1) R {
	return t.lookup([]Key{tableKey(p1)}, func() R {
		return t.inner.Call(p1)
	})
}

func Tableize2[C, P1, P2, R any](
	r capfn.Read2[C, P1, P2, R],
	maxTableSize uint32,
) capfn.Read2[Table[capfn.Read2[C, P1, P2, R], R], P1, P2, R] {
	return capfn.NewRead2(newTable[R](r, maxTableSize), callTable2[C, P1, P2, R])
}

func callTable2[C, P1, P2, R any](t Table[capfn.Read2[C, P1, P2, R], R], p1 P1, p2 P2) R {
	return t.lookup([]Key{tableKey(p1), tableKey(p2)}, func() R {
		return t.inner.Call(p1, p2)
	})
}

func Tableize3[C, P1, P2, P3, R any](
	r capfn.Read3[C, P1, P2, P3, R],
	maxTableSize uint32,
) capfn.Read3[Table[capfn.Read3[C, P1, P2, P3, R], R], P1, P2, P3, R] {
	return capfn.NewRead3(newTable[R](r, maxTableSize), callTable3[C, P1, P2, P3, R])
}

func callTable3[C, P1, P2, P3, R any](t Table[capfn.Read3[C, P1, P2, P3, R], R], p1 P1, p2 P2, p3 P3) R {
	return t.lookup([]Key{tableKey(p1), tableKey(p2), tableKey(p3)}, func() R {
		return t.inner.Call(p1, p2, p3)
	})
}

func Tableize4[C, P1, P2, P3, P4, R any](
	r capfn.Read4[C, P1, P2, P3, P4, R],
	maxTableSize uint32,
) capfn.Read4[Table[capfn.Read4[C, P1, P2, P3, P4, R], R], P1, P2, P3, P4, R] {
	return capfn.NewRead4(newTable[R](r, maxTableSize), callTable4[C, P1, P2, P3, P4, R])
}

func callTable4[C, P1, P2, P3, P4, R any](t Table[capfn.Read4[C, P1, P2, P3, P4, R], R], p1 P1, p2 P2, p3 P3, p4 P4) R {
	return t.lookup([]Key{tableKey(p1), tableKey(p2), tableKey(p3), tableKey(p4)}, func() R {
		return t.inner.Call(p1, p2, p3, p4)
	})
}
