package internal

import (
	"iter"
)

// Concat2 concatenates dual-return iterators into a single iterator sequence.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Filter2 yields only the pairs of seq for which keep returns true.
func Filter2[K any, V any](seq iter.Seq2[K, V], keep func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, val := range seq {
			if !keep(key, val) {
				continue
			}
			if !yield(key, val) {
				return
			}
		}
	}
}
