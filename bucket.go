package radixheap

// bucket holds every entry whose key currently shares the same highest
// differing bit with the heap's baseline. Entries stay in insertion order;
// the minimum is cached as an independent copy so peeking is O(1).
type bucket[V any] struct {
	idx    int
	items  []Entry[V]
	top    Entry[V]
	hasTop bool
}

func newBucket[V any](idx, capacity int) *bucket[V] {
	return &bucket[V]{
		idx:   idx,
		items: make([]Entry[V], 0, capacity),
	}
}

// push appends the entry. The cached minimum is replaced only when the
// bucket was empty or the new key is strictly smaller, so among equal keys
// the first-inserted entry stays the minimum.
func (b *bucket[V]) push(key uint32, value V) {
	b.items = append(b.items, Entry[V]{Key: key, Value: value})

	if !b.hasTop || key < b.top.Key {
		b.top = Entry[V]{Key: key, Value: value}
		b.hasTop = true
	}
}

// pop removes and returns the cached minimum. It reports false only on an
// empty bucket, which the owning heap rules out before calling.
func (b *bucket[V]) pop() (Entry[V], bool) {
	if !b.hasTop {
		return Entry[V]{}, false
	}

	min := b.top

	// The cached minimum is the first-inserted entry carrying the minimal
	// key, so the first key match in insertion order is that exact element.
	for i := range b.items {
		if b.items[i].Key == min.Key {
			n := len(b.items)
			copy(b.items[i:], b.items[i+1:])
			b.items[n-1] = Entry[V]{} // release the value
			b.items = b.items[:n-1]
			break
		}
	}

	b.rescan()

	return min, true
}

// rescan recomputes the cached minimum over the stored items.
func (b *bucket[V]) rescan() {
	b.hasTop = false
	for i := range b.items {
		if !b.hasTop || b.items[i].Key < b.top.Key {
			b.top = b.items[i]
			b.hasTop = true
		}
	}
}

// drain hands the stored items to the caller and resets the bucket to a
// fresh empty state. Used by the heap's redistribution step.
func (b *bucket[V]) drain() []Entry[V] {
	items := b.items
	b.items = nil
	b.top = Entry[V]{}
	b.hasTop = false

	return items
}

// clear empties the bucket in place, keeping the allocated capacity.
func (b *bucket[V]) clear() {
	clear(b.items)
	b.items = b.items[:0]
	b.top = Entry[V]{}
	b.hasTop = false
}

func (b *bucket[V]) len() int { return len(b.items) }

func (b *bucket[V]) cap() int { return cap(b.items) }

func (b *bucket[V]) empty() bool { return len(b.items) == 0 }
