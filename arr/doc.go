// Package arr provides standalone generic helpers for plain Go slices.
//
// The helpers operate on bare []T values with no wrapper type, so they can
// be dropped into any code path that already holds a slice:
//
//	squares := arr.Times(5, func(i int) int { return i * 5 }) // → [0 5 10 15 20]
//	long, short := arr.Partition(names, func(s string) bool { return len(s) > 3 })
//	line := arr.JoinToString(names, arr.JoinOptions{Separator: " ", Prefix: "|", Postfix: "|"}, nil)
//
// The [collections] package builds its fluent Collection type on top of
// these functions.
//
// # Copy semantics
//
// Every helper returns a freshly allocated slice. Inputs are never mutated.
package arr
