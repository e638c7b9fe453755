package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSliceOf yields the index and value of each slice element whose
// dynamic type is T.
func IterSliceOf[T any, S ~[]E, E any](items S) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for n, item := range items {
			val, ok := any(item).(T)
			if !ok {
				continue
			}
			if !yield(n, val) {
				return
			}
		}
	}
}
