package pure

import "sync"

// Table is a bounded memo table keyed by K.
//
// It keeps two generations. Stores go to the head generation; once maxSize
// stores have landed there the generations swap and the new head is cleared,
// so the table never holds more than 2*maxSize entries and recently stored
// keys survive one rotation. Safe for concurrent use.
type Table[K comparable, O any] struct {
	mu      sync.RWMutex
	memos   [2]map[K]O
	headIdx int
	size    uint32
	maxSize uint32
}

func NewTable[K comparable, O any](maxSize uint32) *Table[K, O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[K, O]{
		memos:   [2]map[K]O{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Table[K, O]) Load(key K) (O, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if v, ok := t.memos[t.headIdx][key]; ok {
		return v, true
	}
	v, ok := t.memos[1-t.headIdx][key]
	return v, ok
}

func (t *Table[K, O]) Store(key K, value O) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		clear(t.memos[t.headIdx])
		t.size = 0
	}
	t.memos[t.headIdx][key] = value
	t.size++
}

// Len returns the number of entries across both generations.
func (t *Table[K, O]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.memos[0]) + len(t.memos[1])
}
