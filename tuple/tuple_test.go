package tuple_test

import (
	"testing"

	"github.com/on-the-ground/capture_ive_go/tuple"
	"github.com/stretchr/testify/assert"
)

func TestOf2_Unpack(t *testing.T) {
	d, name := tuple.Of2(32, "thirty-two").Unpack()

	assert.Equal(t, 32, d)
	assert.Equal(t, "thirty-two", name)
}

func TestOf8_KeepsDeclarationOrder(t *testing.T) {
	v := tuple.Of8(1, "2", 3.0, '4', uint8(5), true, []int{7}, struct{}{})

	assert.Equal(t, 1, v.V1)
	assert.Equal(t, "2", v.V2)
	assert.Equal(t, 3.0, v.V3)
	assert.Equal(t, '4', v.V4)
	assert.Equal(t, uint8(5), v.V5)
	assert.True(t, v.V6)
	assert.Equal(t, []int{7}, v.V7)
	assert.Equal(t, struct{}{}, v.V8)
}

func TestTuplesAreComparable(t *testing.T) {
	assert.True(t, tuple.Of3(1, "a", true) == tuple.Of3(1, "a", true))
	assert.False(t, tuple.Of3(1, "a", true) == tuple.Of3(1, "b", true))
}
