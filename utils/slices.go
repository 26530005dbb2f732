package utils

import (
	"iter"

	sdkmath "cosmossdk.io/math"
)

// Map lazily applies fn to every element of s.
func Map[S any, T any](s []S, fn func(S) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// SumInts adds every amount in seq. An empty sequence sums to zero.
func SumInts(seq iter.Seq[sdkmath.Int]) sdkmath.Int {
	total := sdkmath.ZeroInt()
	for amt := range seq {
		total = total.Add(amt)
	}
	return total
}
