package collections

import "github.com/hasbyte1/go-collection-idioms/arr"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip] and consumed by [Unzip] and
// [Associate]. Pairs render as "(first, second)".
type Pair[A, B any] = arr.Pair[A, B]

// PairOf is shorthand for Pair[A, B]{First: a, Second: b}.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
