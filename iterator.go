package radixheap

import (
	"cmp"
	"iter"
	"slices"
)

// Entries returns a snapshot of all stored entries in bucket order: distance
// class 0 through 32, insertion order within a class. The result is NOT
// sorted by key.
func (h *Heap[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, h.size)
	for _, b := range h.buckets {
		entries = append(entries, b.items...)
	}

	return entries
}

// SortedEntries returns a snapshot of all stored entries sorted by key.
// Ordering among equal keys is unspecified.
func (h *Heap[V]) SortedEntries() []Entry[V] {
	entries := h.Entries()
	slices.SortFunc(entries, func(a, b Entry[V]) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return entries
}

// Keys returns all stored keys in ascending order.
func (h *Heap[V]) Keys() []uint32 {
	entries := h.SortedEntries()

	keys := make([]uint32, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}

	return keys
}

// Values returns all stored values, ordered by ascending key.
func (h *Heap[V]) Values() []V {
	entries := h.SortedEntries()

	values := make([]V, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}

	return values
}

// All returns an iterator over a snapshot of the heap in bucket order. The
// sequence is finite and can be ranged over multiple times; mutations after
// the call do not affect it.
func (h *Heap[V]) All() iter.Seq2[uint32, V] {
	snapshot := h.Entries()

	return func(yield func(uint32, V) bool) {
		for _, e := range snapshot {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}
