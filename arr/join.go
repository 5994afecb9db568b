package arr

import (
	"fmt"
	"strings"
)

// JoinOptions controls [JoinToString].
//
// The zero value joins with no separator, no prefix or postfix and no limit.
// Use [DefaultJoinOptions] for the conventional ", " separator.
type JoinOptions struct {
	Separator string
	Prefix    string
	Postfix   string

	// Limit caps the number of rendered elements. Values <= 0 mean no limit.
	Limit int

	// Truncated is appended in place of the elements dropped by Limit.
	Truncated string
}

// DefaultJoinOptions returns ", " as separator and "..." as truncation marker.
func DefaultJoinOptions() JoinOptions {
	return JoinOptions{Separator: ", ", Truncated: "..."}
}

// JoinToString renders items into a single string.
// Each element is converted with transform, or with fmt.Sprint when
// transform is nil.
//
//	arr.JoinToString([]string{"a", "b"}, arr.JoinOptions{Separator: " ", Prefix: "|", Postfix: "|"}, nil)
//	// → "|a b|"
func JoinToString[T any](items []T, opts JoinOptions, transform func(T) string) string {
	if transform == nil {
		transform = func(item T) string { return fmt.Sprint(item) }
	}
	var b strings.Builder
	b.WriteString(opts.Prefix)
	for i, item := range items {
		if opts.Limit > 0 && i >= opts.Limit {
			b.WriteString(opts.Separator)
			b.WriteString(opts.Truncated)
			break
		}
		if i > 0 {
			b.WriteString(opts.Separator)
		}
		b.WriteString(transform(item))
	}
	b.WriteString(opts.Postfix)
	return b.String()
}
