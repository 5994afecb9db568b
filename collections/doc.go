// Package collections provides a generic, fluent Collection type, an
// insertion-ordered map, and standalone helper functions for the common
// list idioms: map, filter, zip, unzip, flatten, associate, groupBy,
// partition, predicate checks and list arithmetic.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of T
// that exposes a chainable API:
//
//	line := collections.New("Sammidev", "Dev", "Sammi").
//	    Filter(func(s string, _ int) bool { return len(s) > 3 }).
//	    JoinToString(collections.JoinOptions{Separator: " ", Prefix: "|", Postfix: "|"}, nil)
//	// → "|Sammidev Sammi|"
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Elements themselves are copied by value; a Collection of
// pointers still shares the pointees.
//
// # Rendering
//
// Collections render as "[a, b, c]", pairs as "(a, b)" and ordered maps as
// "{k=v, k2=v2}", so nested results print the same way at every depth:
//
//	fmt.Println(collections.GroupBy(collections.New("a", "b", "a"), func(s string) string { return s }))
//	// → {a=[a, a], b=[b]}
//
// # Ordering of keyed results
//
// Keyed results ([Associate], [AssociateBy], [AssociateWith], [GroupBy],
// [KeyBy], [MapKeys]) are returned as an [OrderedMap] so iteration follows
// the order in which keys were first seen. When a key repeats, the last
// value wins but the key keeps its original position.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [MapNotNull], [FlatMap], [Flatten], [Reduce], [Zip], [ZipWith],
// [Unzip], [Associate], [AssociateBy], [AssociateWith], [GroupBy], [KeyBy],
// [MapKeys].
package collections
