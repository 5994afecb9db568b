package collections

import (
	"fmt"
	"strings"
)

// OrderedMap is a map that remembers the order in which keys were first
// inserted. Iteration, [OrderedMap.Keys], [OrderedMap.Values] and
// [OrderedMap.String] all follow that order.
//
// Setting an existing key replaces its value in place; the key does not
// move. Deleting a key and setting it again appends it at the end.
//
// The zero value is not ready for use; create one with [NewOrderedMap].
// An OrderedMap is not safe for concurrent mutation.
type OrderedMap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

// Set stores value under key.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Get returns the value stored under key and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// GetOr returns the value stored under key, or def when key is absent.
func (m *OrderedMap[K, V]) GetOr(key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Delete removes key. It is a no-op when key is absent.
func (m *OrderedMap[K, V]) Delete(key K) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, len(m.vals))
	copy(out, m.vals)
	return out
}

// Entries returns the key/value pairs in insertion order.
func (m *OrderedMap[K, V]) Entries() []Pair[K, V] {
	out := make([]Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = PairOf(k, m.vals[i])
	}
	return out
}

// Each calls fn(key, value) for every entry in insertion order.
func (m *OrderedMap[K, V]) Each(fn func(K, V)) {
	for i, k := range m.keys {
		fn(k, m.vals[i])
	}
}

// ToMap copies the entries into a plain Go map. Order is lost.
func (m *OrderedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.keys))
	m.Each(func(k K, v V) { out[k] = v })
	return out
}

// String renders the map as "{k=v, k2=v2}".
func (m *OrderedMap[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	m.Each(func(k K, v V) {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", k, v)
	})
	b.WriteByte('}')
	return b.String()
}

// MapKeys returns a new OrderedMap whose keys are fn(key, value) and whose
// values are unchanged. When two entries map to the same key, the later
// value wins and the key keeps the position of its first occurrence.
//
//	m := collections.NewOrderedMap[int, string]()
//	m.Set(1, "Sammi")
//	collections.MapKeys(m, func(k int, _ string) int { return k * 10 }) // → {10=Sammi}
func MapKeys[K comparable, V any, R comparable](m *OrderedMap[K, V], fn func(K, V) R) *OrderedMap[R, V] {
	out := NewOrderedMap[R, V]()
	m.Each(func(k K, v V) { out.Set(fn(k, v), v) })
	return out
}

// MapValues returns a new OrderedMap with the same keys and values
// transformed by fn.
func MapValues[K comparable, V, R any](m *OrderedMap[K, V], fn func(K, V) R) *OrderedMap[K, R] {
	out := NewOrderedMap[K, R]()
	m.Each(func(k K, v V) { out.Set(k, fn(k, v)) })
	return out
}

// OrderedMapOf builds an OrderedMap from pairs, in order.
//
//	collections.OrderedMapOf(collections.PairOf(1, "Sammi"), collections.PairOf(2, "Dev"))
func OrderedMapOf[K comparable, V any](pairs ...Pair[K, V]) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}
	return m
}
