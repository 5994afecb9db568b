package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-collection-idioms/arr"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a value can be shared freely between
// pipelines.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Times(5, func(i int) int { return i * 5 })
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	evens := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    Plus(8, 10)
//
// Operations that change the element type are package-level functions:
//
//	lengths := collections.Map(names, func(s string, _ int) int { return len(s) })
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// Times creates a Collection of n items where item i is fn(i).
// A non-positive n yields an empty collection.
//
//	collections.Times(5, func(i int) int { return i * 5 }) // → [0, 5, 10, 15, 20]
func Times[T any](n int, fn func(int) T) *Collection[T] {
	return &Collection[T]{items: arr.Times(n, fn)}
}

// Fill creates a Collection of n copies of value.
//
//	collections.Fill(3, 0) // → [0, 0, 0]
func Fill[T any](n int, value T) *Collection[T] {
	return &Collection[T]{items: arr.Fill(n, value)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// At returns the item at index, or [ErrIndexOutOfRange].
func (c *Collection[T]) At(index int) (T, error) {
	item, ok := c.Get(index)
	if !ok {
		return item, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	return item, nil
}

// String renders the collection as "[a, b, c]". Each item is formatted with
// fmt.Sprint, so items implementing [fmt.Stringer] render through it.
func (c *Collection[T]) String() string {
	return c.JoinToString(JoinOptions{Separator: ", ", Prefix: "[", Postfix: "]"}, nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item, in order.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// EachE calls fn(item, index) for every item and stops at the first error,
// which it returns.
func (c *Collection[T]) EachE(fn func(T, int) error) error {
	for i, item := range c.items {
		if err := fn(item, i); err != nil {
			return err
		}
	}
	return nil
}

// Tap calls fn(c) for side-effects and returns c unchanged for further
// chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & predicates
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	for _, item := range c.items {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	return zero, false
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	return arr.Any(c.items, fn)
}

// Any reports whether at least one item satisfies fns[0]. Without a
// predicate it reports whether the collection has any items at all.
func (c *Collection[T]) Any(fns ...func(T) bool) bool {
	if len(fns) == 0 {
		return c.IsNotEmpty()
	}
	return arr.Any(c.items, fns[0])
}

// None reports whether no item satisfies fns[0]. Without a predicate it
// reports whether the collection is empty.
func (c *Collection[T]) None(fns ...func(T) bool) bool {
	return !c.Any(fns...)
}

// Every reports whether all items satisfy fn. It is vacuously true for an
// empty collection.
func (c *Collection[T]) Every(fn func(T) bool) bool {
	return arr.Every(c.items, fn)
}

// Search returns the index of the first item for which fn returns true, or -1.
func (c *Collection[T]) Search(fn func(T) bool) int {
	for i, item := range c.items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return &Collection[T]{items: arr.Filter(c.items, fn)}
}

// Reject returns a new collection with items for which fn returns true removed.
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	return &Collection[T]{items: arr.Reverse(c.items)}
}

// Take returns at most n items from the start.
func (c *Collection[T]) Take(n int) *Collection[T] {
	n = max(0, min(n, len(c.items)))
	return From(c.items[:n])
}

// Reduce folds the collection into a single T starting from initial.
//
// For folds that change the type, use the package-level [Reduce].
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial T) T {
	result := initial
	for _, item := range c.items {
		result = fn(result, item)
	}
	return result
}

// ReduceOrFail folds the collection using the first item as the initial
// accumulator. Returns [ErrEmptyCollection] when there is nothing to fold.
func (c *Collection[T]) ReduceOrFail(fn func(carry, item T) T) (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return From(c.items[1:]).Reduce(fn, c.items[0]), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// List arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Plus returns a new collection with items appended.
func (c *Collection[T]) Plus(items ...T) *Collection[T] {
	return &Collection[T]{items: arr.Plus(c.items, items...)}
}

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return c.Plus(other.items...)
}

// Minus returns a new collection with the first item equal to value removed.
// eq decides equality; later equal items are kept.
//
// For comparable element types, the package-level [Minus] needs no eq.
func (c *Collection[T]) Minus(value T, eq func(a, b T) bool) *Collection[T] {
	idx := c.Search(func(item T) bool { return eq(item, value) })
	if idx < 0 {
		return From(c.items)
	}
	out := make([]T, 0, len(c.items)-1)
	out = append(out, c.items[:idx]...)
	out = append(out, c.items[idx+1:]...)
	return &Collection[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits the collection into two: the first contains items for
// which fn returns true; the second the rest. Order is preserved in both.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	pass, fail := arr.Partition(c.items, fn)
	return &Collection[T]{items: pass}, &Collection[T]{items: fail}
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all items using fn to extract numeric values.
func (c *Collection[T]) Sum(fn func(T) float64) float64 {
	return arr.Sum(c.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// JoinOptions controls [Collection.JoinToString]. See [arr.JoinOptions].
type JoinOptions = arr.JoinOptions

// JoinToString renders the items into one string framed by opts.Prefix and
// opts.Postfix and separated by opts.Separator. transform converts each item;
// nil means fmt.Sprint.
//
//	collections.New("a", "b").JoinToString(collections.JoinOptions{Separator: " ", Prefix: "|", Postfix: "|"},
//	    func(s string) string { return "item " + s })
//	// → "|item a item b|"
func (c *Collection[T]) JoinToString(opts JoinOptions, transform func(T) string) string {
	return arr.JoinToString(c.items, opts, transform)
}

// Implode joins all items using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	return c.JoinToString(JoinOptions{Separator: sep}, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn)
}
