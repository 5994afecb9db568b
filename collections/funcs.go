package collections

import "github.com/hasbyte1/go-collection-idioms/arr"

// This file contains package-level generic functions for operations that
// transform a Collection[T] into something of a different type.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	lengths := collections.Map(
//	    collections.New("Sammidev", "Dev").Filter(func(s string, _ int) bool { return s != "" }),
//	    func(s string, _ int) int { return len(s) },
//	)

// Map applies fn to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	return &Collection[U]{items: arr.Map(c.items, fn)}
}

// MapNotNull applies fn to every item and keeps only the results for which
// fn reports ok. fn still runs for every item, in order.
//
//	nums := collections.MapNotNull(collections.New("1", "x", "3"),
//	    func(s string, _ int) (int, bool) { n, err := strconv.Atoi(s); return n, err == nil })
//	// → [1, 3]
func MapNotNull[T, U any](c *Collection[T], fn func(T, int) (U, bool)) *Collection[U] {
	return &Collection[U]{items: arr.MapNotNull(c.items, fn)}
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Collection[U].
func FlatMap[T, U any](c *Collection[T], fn func(T, int) []U) *Collection[U] {
	return &Collection[U]{items: arr.FlatMap(c.items, fn)}
}

// Flatten flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	collections.Flatten(collections.New([]int{1, 2}, []int{3})) // → [1, 2, 3]
func Flatten[T any](c *Collection[[]T]) *Collection[T] {
	return &Collection[T]{items: arr.Collapse(c.items)}
}

// Reduce reduces Collection[T] to a single value of type U.
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// Minus returns a new collection with the first occurrence of value removed.
func Minus[T comparable](c *Collection[T], value T) *Collection[T] {
	return &Collection[T]{items: arr.MinusFirst(c.items, value)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Zip combines two collections element-by-element into Pairs.
// Stops at the shorter of the two collections.
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	return &Collection[Pair[A, B]]{items: arr.Zip(a.items, b.items)}
}

// ZipWith combines two collections element-by-element using fn.
// Stops at the shorter of the two collections.
//
//	collections.ZipWith(collections.New("Sam"), collections.New("so handsome"),
//	    func(a, b string) string { return a + " " + b }) // → [Sam so handsome]
func ZipWith[A, B, R any](a *Collection[A], b *Collection[B], fn func(A, B) R) *Collection[R] {
	return &Collection[R]{items: arr.ZipWith(a.items, b.items, fn)}
}

// Unzip splits a collection of pairs into a pair of collections.
//
//	collections.Unzip(collections.New(collections.PairOf(1, "sam"), collections.PairOf(2, "dev")))
//	// → ([1, 2], [sam, dev])
func Unzip[A, B any](c *Collection[Pair[A, B]]) Pair[*Collection[A], *Collection[B]] {
	firsts, seconds := arr.Unzip(c.items)
	return PairOf(&Collection[A]{items: firsts}, &Collection[B]{items: seconds})
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed results
// ─────────────────────────────────────────────────────────────────────────────

// Associate builds an OrderedMap from the key/value pair fn returns for each
// item. Repeated keys keep their first position; the last value wins.
//
//	collections.Associate(collections.New("Sam"), func(s string) collections.Pair[string, int] {
//	    return collections.PairOf(s, len(s))
//	}) // → {Sam=3}
func Associate[T any, K comparable, V any](c *Collection[T], fn func(T) Pair[K, V]) *OrderedMap[K, V] {
	out := NewOrderedMap[K, V]()
	for _, item := range c.items {
		p := fn(item)
		out.Set(p.First, p.Second)
	}
	return out
}

// AssociateBy keys every item by keyFn. Repeated keys keep their first
// position; the last item wins.
//
//	collections.AssociateBy(collections.New("Sammidev", "Dev", "Sam"),
//	    func(s string) int { return len(s) }) // → {8=Sammidev, 3=Sam}
func AssociateBy[T any, K comparable](c *Collection[T], keyFn func(T) K) *OrderedMap[K, T] {
	return Associate(c, func(item T) Pair[K, T] { return PairOf(keyFn(item), item) })
}

// AssociateWith maps every item to the value computed by valueFn, using the
// item itself as key.
//
//	collections.AssociateWith(collections.New("Dev"), func(s string) int { return len(s) }) // → {Dev=3}
func AssociateWith[K comparable, V any](c *Collection[K], valueFn func(K) V) *OrderedMap[K, V] {
	return Associate(c, func(item K) Pair[K, V] { return PairOf(item, valueFn(item)) })
}

// KeyBy is an alias for [AssociateBy].
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) *OrderedMap[K, T] {
	return AssociateBy(c, fn)
}

// GroupBy groups items by the comparable key K extracted by fn. Groups are
// ordered by the first appearance of their key and keep item order inside.
//
//	collections.GroupBy(collections.New("a", "b", "a"), func(s string) string { return s })
//	// → {a=[a, a], b=[b]}
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) *OrderedMap[K, *Collection[T]] {
	groups := NewOrderedMap[K, *Collection[T]]()
	for _, item := range c.items {
		k := fn(item)
		g, ok := groups.Get(k)
		if !ok {
			g = Empty[T]()
			groups.Set(k, g)
		}
		g.items = append(g.items, item)
	}
	return groups
}

// Combine creates an OrderedMap from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if len(keys) != len(values).
func Combine[K comparable, V any](keys []K, values []V) (*OrderedMap[K, V], error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	return Associate(Zip(From(keys), From(values)), func(p Pair[K, V]) Pair[K, V] { return p }), nil
}
