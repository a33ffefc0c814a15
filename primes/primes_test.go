package primes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	seq := NewSequence()
	expected := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
	for i, p := range expected {
		require.Equal(t, p, seq.At(i))
	}
	require.Equal(t, uint64(7919), seq.At(999))
	require.Equal(t, 1000, seq.Len())
}

func collect(it *Iterator) []uint64 {
	var res []uint64
	for q, ok := it.Next(); ok; q, ok = it.Next() {
		res = append(res, q)
	}
	return res
}

func TestRange(t *testing.T) {
	seq := NewSequence()
	it := seq.Range(5, 30)
	require.Equal(t, []uint64{5, 7, 11, 13, 17, 19, 23, 29}, collect(it))

	// exhausted iterators stay exhausted
	_, ok := it.Next()
	require.False(t, ok)

	// and can be restarted
	it.Reset()
	require.Equal(t, []uint64{5, 7, 11, 13, 17, 19, 23, 29}, collect(it))

	require.Empty(t, collect(seq.Range(24, 29)))
	require.Equal(t, []uint64{2}, collect(seq.Range(0, 3)))
	require.Equal(t, []uint64{97, 101}, collect(seq.Range(90, 102)))
}

func TestRangesShareCache(t *testing.T) {
	seq := NewSequence()
	collect(seq.Range(5, 100))
	n := seq.Len()
	collect(seq.Range(5, 50))
	require.Equal(t, n, seq.Len())
}
