package radixheap_test

import (
	"fmt"

	"github.com/hupe1980/radixheap"
)

func ExampleHeap() {
	h := radixheap.New[string](radixheap.WithCapacity(8))

	_ = h.Push(18, "of")
	_ = h.Push(7, "amazing")
	_ = h.Push(1, "hello")
	_ = h.Push(13, "world")

	for {
		e, ok := h.Pop()
		if !ok {
			break
		}
		fmt.Println(e.Key, e.Value)
	}
	// Output:
	// 1 hello
	// 7 amazing
	// 13 world
	// 18 of
}

func ExampleHeap_Push_invalidKey() {
	h := radixheap.New[int]()

	_ = h.Push(10, 1)
	h.Pop() // baseline is 10 now

	if err := h.Push(5, 2); err != nil {
		fmt.Println(err)
	}
	// Output:
	// invalid key: 5 is below the last extracted key 10
}

func ExampleHeap_All() {
	h := radixheap.New[string]()

	_ = h.Push(34, "rust")
	_ = h.Push(259, "radix")

	for key, value := range h.All() {
		fmt.Println(key, value)
	}
	// Output:
	// 34 rust
	// 259 radix
}
