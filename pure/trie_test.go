package pure_test

import (
	"testing"

	"github.com/on-the-ground/capture_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := pure.NewTrie[string](1)

	// store a value
	trie.Store([]pure.Key{"a", "b", "c"}, "final")

	// load it back
	val, ok := trie.Load([]pure.Key{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]pure.Key{"a", "b", "x"})
	assert.False(t, ok)
	_, ok = trie.Load([]pure.Key{"z", "b", "c"})
	assert.False(t, ok)

	// overwrite existing
	trie.Store([]pure.Key{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]pure.Key{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_RotatesGenerations(t *testing.T) {
	trie := pure.NewTrie[int](2)

	trie.Store([]pure.Key{"a"}, 1)
	trie.Store([]pure.Key{"b"}, 2)
	trie.Store([]pure.Key{"c"}, 3) // new head, a and b now in the old generation

	v, ok := trie.Load([]pure.Key{"a"})
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	trie.Store([]pure.Key{"d"}, 4)
	trie.Store([]pure.Key{"e"}, 5) // clears the generation holding a and b

	_, ok = trie.Load([]pure.Key{"a"})
	assert.False(t, ok)
	_, ok = trie.Load([]pure.Key{"b"})
	assert.False(t, ok)
	for key, want := range map[string]int{"c": 3, "d": 4, "e": 5} {
		v, ok := trie.Load([]pure.Key{key})
		assert.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty keys, but didn't panic")
		}
	}()
	trie := pure.NewTrie[int](2)
	trie.Load([]pure.Key{})
}

func TestTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		pure.NewTrie[int](0)
	})
}
