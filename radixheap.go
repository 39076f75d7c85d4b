package radixheap

import "math/bits"

// numBuckets is one distance class per key bit plus class 0 for keys equal
// to the baseline.
const numBuckets = 33

// Entry is a key/value pair stored in the heap.
type Entry[V any] struct {
	Key   uint32
	Value V
}

// Heap is a monotone priority queue over uint32 keys. Pops yield entries in
// non-decreasing key order; pushes below the key of the most recently popped
// entry are rejected.
//
// The zero value is not usable; construct with New.
type Heap[V any] struct {
	buckets  [numBuckets]*bucket[V]
	baseline uint32
	size     int
	logger   *Logger
	metrics  MetricsCollector
}

// New creates an empty heap. Each of the 33 buckets is pre-sized with the
// capacity hint configured via WithCapacity (default 0).
func New[V any](opts ...Option) *Heap[V] {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}

	for _, fn := range opts {
		fn(&o)
	}

	h := &Heap[V]{
		logger:  o.logger,
		metrics: o.metrics,
	}

	for i := range h.buckets {
		h.buckets[i] = newBucket[V](i, o.capacity)
	}

	return h
}

// Push inserts a key/value pair. It returns *ErrInvalidKey when key is
// smaller than the baseline, leaving the heap unchanged.
func (h *Heap[V]) Push(key uint32, value V) error {
	if key < h.baseline {
		err := &ErrInvalidKey{Key: key, Baseline: h.baseline}
		h.logger.Debug("push rejected", "key", key, "baseline", h.baseline)
		h.metrics.RecordPush(err)

		return err
	}

	h.buckets[h.route(key)].push(key, value)
	h.size++
	h.metrics.RecordPush(nil)

	return nil
}

// route returns the distance class for key relative to the current baseline:
// class 0 when they are equal, otherwise the 1-based position (from the most
// significant bit) of the highest bit at which they differ.
func (h *Heap[V]) route(key uint32) int {
	if key == h.baseline {
		return 0
	}

	return 32 - bits.LeadingZeros32(key^h.baseline)
}

// Pop removes and returns the entry with the smallest key. It reports false
// on an empty heap.
//
// Popping from a non-zero distance class advances the baseline to the popped
// key and redistributes the class's remaining entries against the new
// baseline. Every relocated entry lands in a strictly smaller class, so no
// entry moves more than 32 times over its lifetime.
func (h *Heap[V]) Pop() (Entry[V], bool) {
	if h.size == 0 {
		return Entry[V]{}, false
	}

	for _, b := range h.buckets {
		if b.empty() {
			continue
		}

		min, _ := b.pop()

		moved := 0
		if b.idx > 0 {
			h.baseline = min.Key
			moved = h.redistribute(b)
		}

		h.size--
		h.metrics.RecordPop(moved)

		return min, true
	}

	// size > 0 guarantees a non-empty bucket.
	panic("radixheap: size out of sync with buckets")
}

// redistribute relocates the entries left in b after its minimum was
// removed, returning the number of entries moved.
func (h *Heap[V]) redistribute(b *bucket[V]) int {
	if b.empty() {
		return 0
	}

	entries := b.drain()
	for _, e := range entries {
		h.buckets[h.route(e.Key)].push(e.Key, e.Value)
	}

	h.logger.Debug("redistributed bucket",
		"class", b.idx,
		"moved", len(entries),
		"baseline", h.baseline,
	)

	return len(entries)
}

// Peek returns the entry the next Pop would remove, without mutating the
// heap. It reports false on an empty heap.
func (h *Heap[V]) Peek() (Entry[V], bool) {
	if h.size == 0 {
		return Entry[V]{}, false
	}

	for _, b := range h.buckets {
		if !b.empty() {
			return b.top, true
		}
	}

	return Entry[V]{}, false
}

// Len returns the number of stored entries.
func (h *Heap[V]) Len() int { return h.size }

// Cap returns the summed capacity of all buckets. Diagnostic only; right
// after construction it equals 33 times the capacity hint.
func (h *Heap[V]) Cap() int {
	total := 0
	for _, b := range h.buckets {
		total += b.cap()
	}

	return total
}

// Empty reports whether the heap holds no entries.
func (h *Heap[V]) Empty() bool { return h.size == 0 }

// Clear removes all entries. The baseline is NOT reset: keys below the last
// popped key stay invalid after a clear.
func (h *Heap[V]) Clear() {
	for _, b := range h.buckets {
		b.clear()
	}

	h.size = 0
}
