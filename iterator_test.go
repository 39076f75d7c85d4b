package radixheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryKeys[V any](entries []Entry[V]) []uint32 {
	keys := make([]uint32, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}

	return keys
}

func TestProjections(t *testing.T) {
	t.Run("BucketOrder", func(t *testing.T) {
		h := New[string](WithCapacity(48))

		require.NoError(t, h.Push(289371, "library"))
		require.NoError(t, h.Push(259, "radix"))
		require.NoError(t, h.Push(98612, "heap"))
		require.NoError(t, h.Push(34, "rust"))

		// These keys land in distinct classes, so bucket order happens to
		// be ascending here.
		assert.Equal(t, []uint32{34, 259, 98612, 289371}, entryKeys(h.Entries()))
		assert.Equal(t, h.Entries(), h.SortedEntries())
		assert.Equal(t, []string{"rust", "radix", "heap", "library"}, h.Values())
		assert.Equal(t, 4, h.Len())
		assert.Equal(t, 1584, h.Cap())
	})

	t.Run("BucketOrderIsNotKeyOrder", func(t *testing.T) {
		h := New[string]()

		for _, key := range []uint32{15, 9, 13, 12, 10, 11, 8, 17, 3} {
			require.NoError(t, h.Push(key, ""))
		}

		// Keys 8..15 share one class and keep insertion order inside it.
		assert.Equal(t, []uint32{3, 15, 9, 13, 12, 10, 11, 8, 17}, entryKeys(h.Entries()))
		assert.Equal(t, []uint32{3, 8, 9, 10, 11, 12, 13, 15, 17}, entryKeys(h.SortedEntries()))
		assert.Equal(t, []uint32{3, 8, 9, 10, 11, 12, 13, 15, 17}, h.Keys())
	})

	t.Run("ProjectionsDoNotMutate", func(t *testing.T) {
		h := New[int]()

		require.NoError(t, h.Push(6, 60))
		require.NoError(t, h.Push(2, 20))

		_ = h.Entries()
		_ = h.SortedEntries()
		_ = h.Keys()
		_ = h.Values()

		assert.Equal(t, 2, h.Len())

		e, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, Entry[int]{Key: 2, Value: 20}, e)
	})

	t.Run("EmptyProjections", func(t *testing.T) {
		h := New[int]()

		assert.Empty(t, h.Entries())
		assert.Empty(t, h.SortedEntries())
		assert.Empty(t, h.Keys())
		assert.Empty(t, h.Values())
	})

	t.Run("All", func(t *testing.T) {
		h := New[string]()

		require.NoError(t, h.Push(34, "rust"))
		require.NoError(t, h.Push(259, "radix"))

		var keys []uint32
		for key, value := range h.All() {
			keys = append(keys, key)
			assert.NotEmpty(t, value)
		}
		assert.Equal(t, []uint32{34, 259}, keys)
	})

	t.Run("AllEarlyStopAndRestart", func(t *testing.T) {
		h := New[int]()

		for i := range 10 {
			require.NoError(t, h.Push(uint32(i), i))
		}

		seq := h.All()

		count := 0
		for range seq {
			count++
			if count == 3 {
				break
			}
		}
		assert.Equal(t, 3, count)

		// The sequence is restartable.
		count = 0
		for range seq {
			count++
		}
		assert.Equal(t, 10, count)
	})

	t.Run("AllIsSnapshot", func(t *testing.T) {
		h := New[int]()

		require.NoError(t, h.Push(1, 10))
		require.NoError(t, h.Push(2, 20))

		seq := h.All()
		h.Clear()

		count := 0
		for range seq {
			count++
		}
		assert.Equal(t, 2, count)
	})
}
