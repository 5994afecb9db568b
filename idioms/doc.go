// Package idioms is a catalogue of small, self-contained demonstrations of
// list idioms (iterate, map, zip, unzip, associate, flatten, join, partition,
// predicate checks, list arithmetic, grouping, sized arrays, conversions)
// built on the [collections] package.
//
// Each demo is a [Snippet]. Snippets are registered in a [Catalog], which
// keeps them in registration order, and executed by a [Runner], which writes
// either a plain-text transcript or one JSON record per snippet:
//
//	r := idioms.NewRunner(idioms.DefaultCatalog(), os.Stdout, idioms.RunnerOptions{})
//	report, err := r.Run(ctx)
//	fmt.Println(idioms.Fingerprint(report.Transcript))
//
// Snippets run sequentially on the calling goroutine. A snippet that fails
// stops the run; nothing after it executes.
package idioms
