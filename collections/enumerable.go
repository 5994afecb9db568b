package collections

// Enumerable is the read-side surface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions when they only need to walk or
// test items, so callers can pass any implementation.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// Any reports whether an item satisfies fns[0], or without a predicate
	// whether there are any items.
	Any(fns ...func(T) bool) bool

	// Every reports whether all items satisfy fn.
	Every(fn func(T) bool) bool

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// String renders the items as "[a, b, c]".
	String() string
}

var _ Enumerable[int] = (*Collection[int])(nil)
