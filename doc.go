// Package radixheap provides a monotone priority queue over 32-bit unsigned
// integer keys.
//
// A radix heap classifies entries into 33 buckets ("distance classes") based
// on the position of the highest bit at which a key differs from the key of
// the most recently popped entry (the baseline). As long as keys are pushed
// in non-decreasing order relative to the baseline -- the natural shape of
// Dijkstra-style shortest-path expansion -- every pop costs amortized
// O(log(max key)).
//
// # Quick Start
//
//	h := radixheap.New[string](radixheap.WithCapacity(8))
//
//	_ = h.Push(7, "amazing")
//	_ = h.Push(1, "hello")
//
//	for {
//	    e, ok := h.Pop()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(e.Key, e.Value)
//	}
//
// # Monotonicity Contract
//
// Push rejects any key smaller than the baseline with *ErrInvalidKey. The
// baseline starts at zero and only advances when a pop empties a non-zero
// distance class; it is never reset, not even by Clear.
//
// # Ownership
//
// A Heap is exclusively owned by its caller. There is no internal
// synchronization; wrap access in a mutex or give each goroutine its own
// heap.
package radixheap
