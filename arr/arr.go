package arr

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// Times builds a slice of n elements where element i is fn(i).
// A non-positive n yields an empty slice.
//
//	arr.Times(3, func(i int) int { return i * 5 }) // → [0 5 10]
func Times[T any](n int, fn func(int) T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// Fill builds a slice of n copies of value.
// A non-positive n yields an empty slice.
func Fill[T any](n int, value T) []T {
	return Times(n, func(int) T { return value })
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// MapNotNull applies fn to each element and keeps only the results for which
// fn reported ok.
func MapNotNull[T, U any](items []T, fn func(T, int) (U, bool)) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		if v, ok := fn(item, i); ok {
			out = append(out, v)
		}
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Collapse flattens a slice of slices into a single flat slice, one level deep.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// Any reports whether at least one element satisfies fn.
// Always false for an empty slice.
func Any[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

// None reports whether no element satisfies fn.
// Always true for an empty slice.
func None[T any](items []T, fn func(T) bool) bool {
	return !Any(items, fn)
}

// Every reports whether all elements satisfy fn.
// Vacuously true for an empty slice.
func Every[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Set-like arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Plus returns items followed by more, in order.
func Plus[T any](items []T, more ...T) []T {
	out := make([]T, len(items)+len(more))
	copy(out, items)
	copy(out[len(items):], more)
	return out
}

// MinusFirst returns a copy of items with the first occurrence of value
// removed. Later occurrences are kept. If value is absent the copy is
// identical to items.
func MinusFirst[T comparable](items []T, value T) []T {
	idx := IndexOf(items, value)
	if idx < 0 {
		return Plus(items)
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Splitting & pairing
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits items into two slices: those satisfying fn and those that
// do not. Relative order is preserved in both.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String renders the pair as "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
}

// ZipWith combines elements of a and b at the same index with fn.
// Stops at the length of the shorter slice.
func ZipWith[A, B, R any](a []A, b []B, fn func(A, B) R) []R {
	n := min(len(a), len(b))
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// Unzip splits pairs into the slice of first values and the slice of second
// values. It is the inverse of [Zip].
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	firsts := make([]A, len(pairs))
	seconds := make([]B, len(pairs))
	for i, p := range pairs {
		firsts[i] = p.First
		seconds[i] = p.Second
	}
	return firsts, seconds
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of items via fn.
func Sum[T any](items []T, fn func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += fn(item)
	}
	return total
}
