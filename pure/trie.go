package pure

import (
	"sync"
	"sync/atomic"
)

// Key is one level of a Trie path. It must be comparable.
type Key any

// Trie is a bounded memo keyed by paths of keys. It keeps two generations:
// when the head generation reaches maxSize entries the other one is cleared
// and becomes the head, so lookups still see the most recent entries.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx.Load()
	for _, idx := range [2]uint32{headIdx, 1 - headIdx} {
		if v, ok := find(t.memos[idx].Load(), keys); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []Key, value O) {
	if t.size.CompareAndSwap(t.maxSize, 0) {
		next := 1 - t.headIdx.Load()
		t.memos[next].Store(&sync.Map{})
		t.headIdx.Store(next)
	}
	m, k := traverse(t.memos[t.headIdx.Load()].Load(), keys)
	m.Store(k, value)
	t.size.Add(1)
}

func find(m *sync.Map, keys []Key) (any, bool) {
	mustHaveKeys(keys)
	for _, k := range keys[:len(keys)-1] {
		next, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = next.(*sync.Map)
	}
	return m.Load(keys[len(keys)-1])
}

// traverse walks to the map holding the last key, creating levels as needed.
func traverse(m *sync.Map, keys []Key) (*sync.Map, Key) {
	mustHaveKeys(keys)
	for _, k := range keys[:len(keys)-1] {
		next, _ := m.LoadOrStore(k, &sync.Map{})
		m = next.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}

func mustHaveKeys(keys []Key) {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}
}
