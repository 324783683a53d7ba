package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallableArity(t *testing.T) {
	a := callableArity(2)
	assert.Equal(t, "two parameters", a.Word)
	assert.Equal(t, "C, P1, P2, R", a.TypeParams)
	assert.Equal(t, "P1, P2", a.ParamTypes)
	assert.Equal(t, ", P1, P2", a.ParamTail)
	assert.Equal(t, "p1 P1, p2 P2", a.Params)
	assert.Equal(t, ", p1, p2", a.ArgTail)

	zero := callableArity(0)
	assert.Equal(t, "C, R", zero.TypeParams)
	assert.Empty(t, zero.Params)
	assert.Empty(t, zero.ArgTail)
}

func TestTupleArity(t *testing.T) {
	a := tupleArity(3)
	assert.Equal(t, "A, B, C", a.TypeParams)
	assert.Equal(t, "a A, b B, c C", a.Params)
	assert.Equal(t, "T3[A, B, C]{V1: a, V2: b, V3: c}", a.Literal)
	assert.Equal(t, "t.V1, t.V2, t.V3", a.Values)
}

func TestRender_Read(t *testing.T) {
	src, err := render("read", "capfn", 2)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func (r Read2[C, P1, P2, R]) Call(p1 P1, p2 P2) R {")
	assert.Contains(t, string(src), "func NewRead0[C, R any](captured C, function func(C) R) Read0[C, R] {")
	assert.NotContains(t, string(src), "Read3")
	assert.Contains(t, string(src), "const MaxArity = 2\n")
}

func TestRender_MaxArityOnlyInRead(t *testing.T) {
	for _, kind := range []string{"mut", "once"} {
		src, err := render(kind, "capfn", 3)
		require.NoError(t, err)
		assert.NotContains(t, string(src), "MaxArity", kind)
	}
}

func TestRender_Errors(t *testing.T) {
	_, err := render("closure", "capfn", 8)
	assert.ErrorIs(t, err, errUnknownKind)

	_, err = render("tuple", "tuple", 1)
	assert.ErrorIs(t, err, errArityRange)

	_, err = render("read", "capfn", 100)
	assert.ErrorIs(t, err, errArityRange)
}

// The checked-in files must match what go generate would write.
func TestRender_UpToDate(t *testing.T) {
	cases := []struct {
		kind, pkg, file string
	}{
		{"read", "capfn", "../../capfn/read_gen.go"},
		{"mut", "capfn", "../../capfn/mut_gen.go"},
		{"once", "capfn", "../../capfn/once_gen.go"},
		{"tuple", "tuple", "../../tuple/tuple_gen.go"},
	}
	for _, c := range cases {
		t.Run(c.kind, func(t *testing.T) {
			want, err := os.ReadFile(filepath.FromSlash(c.file))
			require.NoError(t, err)
			got, err := render(c.kind, c.pkg, 8)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got))
		})
	}
}
