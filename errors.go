package radixheap

import "fmt"

// ErrInvalidKey indicates a push below the heap's baseline, violating the
// monotone insertion contract. The heap is left unchanged; the caller can
// recover by rejecting or re-keying the entry.
type ErrInvalidKey struct {
	Key      uint32
	Baseline uint32
}

func (e *ErrInvalidKey) Error() string {
	return fmt.Sprintf("invalid key: %d is below the last extracted key %d", e.Key, e.Baseline)
}
