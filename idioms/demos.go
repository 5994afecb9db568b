package idioms

import (
	"cmp"
	"fmt"

	"github.com/hasbyte1/go-collection-idioms/collections"
	"github.com/hasbyte1/go-collection-idioms/records"
)

// DefaultCatalog returns a new Catalog holding every built-in demo, in the
// order they are meant to be read.
func DefaultCatalog() *Catalog {
	return NewCatalog().MustRegister(
		Snippet{Name: "for-each", Title: "iterate a list", Run: forEach},
		Snippet{Name: "for-each-indexed", Title: "iterate with index", Run: forEachIndexed},
		Snippet{Name: "mutate-upper", Title: "mutate matching records in place", Run: mutateUpper},
		Snippet{Name: "map-not-null", Title: "map for side effects, keep non-null results", Run: mapNotNull},
		Snippet{Name: "map-keys", Title: "transform map keys", Run: mapKeys},
		Snippet{Name: "zip-with", Title: "zip two lists with a transform", Run: zipWith},
		Snippet{Name: "unzip", Title: "split a list of pairs", Run: unzip},
		Snippet{Name: "associate", Title: "build a map from key/value pairs", Run: associate},
		Snippet{Name: "associate-by", Title: "key items by a derived key", Run: associateBy},
		Snippet{Name: "associate-with", Title: "map items to derived values", Run: associateWith},
		Snippet{Name: "flatten", Title: "flatten nested lists", Run: flatten},
		Snippet{Name: "flat-map", Title: "flatten a list-valued field", Run: flatMap},
		Snippet{Name: "join-to-string", Title: "join with separator, prefix and postfix", Run: joinToString},
		Snippet{Name: "join-to-string-transform", Title: "join with a per-item transform", Run: joinToStringTransform},
		Snippet{Name: "partition", Title: "split by predicate", Run: partition},
		Snippet{Name: "predicates", Title: "any, none and all", Run: predicates},
		Snippet{Name: "plus", Title: "concatenate lists", Run: plus},
		Snippet{Name: "minus", Title: "remove the first equal element", Run: minus},
		Snippet{Name: "group-by", Title: "group items by key", Run: groupBy},
		Snippet{Name: "int-array-literal", Title: "integer array from literals", Run: intArrayLiteral},
		Snippet{Name: "int-array-zeroed", Title: "zero-initialised integer array", Run: intArrayZeroed},
		Snippet{Name: "int-array-init", Title: "integer array from an initialiser", Run: intArrayInit},
		Snippet{Name: "conversions", Title: "numeric widening and type assertion", Run: conversions},
		Snippet{Name: "default-on-absent", Title: "fall back when a value is absent", Run: defaultOnAbsent},
	)
}

// threeStudents is shared by several demos; each call returns fresh records.
func threeStudents() *collections.Collection[*records.Student] {
	return collections.New(
		records.NewStudent("sam", "200311"),
		records.NewStudent("dev", "200312"),
		records.NewStudent("sammidev", "200313"),
	)
}

func shortNames() *collections.Collection[string] {
	return collections.New("Sammidev", "Dev", "Sam")
}

func names() *collections.Collection[string] {
	return collections.New("Sammidev", "Dev", "Sammi")
}

func printEach[T any](p *Printer, c *collections.Collection[T]) {
	c.Each(func(item T, _ int) { p.Println(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func forEach(p *Printer) error {
	printEach(p, collections.New(records.NewStudent("sammidev", "200311")))
	return nil
}

func forEachIndexed(p *Printer) error {
	threeStudents().Each(func(s *records.Student, i int) {
		p.Printf("%d -> %s", i, s)
	})
	return nil
}

func mutateUpper(p *Printer) error {
	students := collections.New(
		records.NewStudent("sammidev", "1"),
		records.NewStudent("sammidev ganteng", "20"),
		records.NewStudent("sammidev cantik", "340"),
		records.NewStudent("sam", "120"),
		records.NewStudent("dev", "50"),
	)
	return students.EachE(func(s *records.Student, _ int) error {
		n, err := s.NIMNumber()
		if err != nil {
			return err
		}
		if n > 1 {
			s.Upper()
			p.Println(s)
		}
		return nil
	})
}

func mapNotNull(p *Printer) error {
	collections.MapNotNull(threeStudents(), func(s *records.Student, _ int) (struct{}, bool) {
		if s.Is("sam", "200311") {
			p.Println(s)
		} else {
			p.Println("DATA NOT EQUALS")
		}
		return struct{}{}, true
	})
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Maps and pairs
// ─────────────────────────────────────────────────────────────────────────────

func mapKeys(p *Printer) error {
	m := collections.OrderedMapOf(
		collections.PairOf(1, "Sammi"),
		collections.PairOf(2, "Dev"),
		collections.PairOf(3, "Aldhy"),
	)
	collections.MapKeys(m, func(k int, _ string) int { return k * 10 }).
		Each(func(k int, v string) { p.Printf("%d=%s", k, v) })
	return nil
}

func zipWith(p *Printer) error {
	lines := collections.ZipWith(
		collections.New("Sammidev", "sam", "Sam"),
		collections.New("ganteng", "gateng sangat", "so handsome"),
		func(a, b string) string { return a + " " + b },
	)
	printEach(p, lines)
	return nil
}

func unzip(p *Printer) error {
	pairs := collections.New(
		collections.PairOf(1, "sam"),
		collections.PairOf(2, "dev"),
		collections.PairOf(3, "sammidev"),
	)
	p.Println(collections.Unzip(pairs))
	return nil
}

func associate(p *Printer) error {
	collections.Associate(shortNames(), func(s string) collections.Pair[string, int] {
		return collections.PairOf(s, len(s))
	}).Each(func(k string, v int) { p.Printf("%s=%d", k, v) })
	return nil
}

func associateBy(p *Printer) error {
	collections.AssociateBy(shortNames(), func(s string) int { return len(s) }).
		Each(func(k int, v string) { p.Printf("%d -> %s", k, v) })
	return nil
}

func associateWith(p *Printer) error {
	collections.AssociateWith(shortNames(), func(s string) int { return len(s) }).
		Each(func(k string, v int) { p.Printf("%s -> %d", k, v) })
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening and joining
// ─────────────────────────────────────────────────────────────────────────────

func flatten(p *Printer) error {
	nested := collections.New(
		[]string{"sammidev1", "dev1", "sam1"},
		[]string{"sammidev2", "dev2", "sam2"},
		[]string{"sammidev3", "dev3", "sam3"},
	)
	p.Println(collections.Flatten(nested))
	return nil
}

func flatMap(p *Printer) error {
	pupils := collections.New(
		records.NewPupil("sammidev1", "ngoding1", "renang1"),
		records.NewPupil("sammidev2", "ngoding2", "renang2"),
		records.NewPupil("sammidev3", "ngoding3", "renang3"),
	)
	p.Println(collections.FlatMap(pupils, func(pu records.Pupil, _ int) []string { return pu.Hobbies() }))
	return nil
}

var barFrame = collections.JoinOptions{Separator: " ", Prefix: "|", Postfix: "|"}

func joinToString(p *Printer) error {
	p.Println(names().JoinToString(barFrame, nil))
	return nil
}

func joinToStringTransform(p *Printer) error {
	p.Println(names().JoinToString(barFrame, func(s string) string { return "item " + s }))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates, arithmetic, grouping
// ─────────────────────────────────────────────────────────────────────────────

func partition(p *Printer) error {
	match, rest := names().Partition(func(s string) bool { return len(s) > 3 })
	p.Println(match)
	p.Println(rest)
	return nil
}

func predicates(p *Printer) error {
	n := names()
	longer := func(s string) bool { return len(s) > 5 }
	p.Println(n.Any(longer))
	p.Println(n.None(longer))
	p.Println(n.Every(longer))
	p.Println(n.Any())
	p.Println(n.None())
	return nil
}

func plus(p *Printer) error {
	p.Println(collections.New("samidev", "dev").Concat(collections.New("ganteng", "ganteng")))
	return nil
}

func minus(p *Printer) error {
	p.Println(collections.Minus(collections.New("samidev", "dev"), "samidev"))
	return nil
}

func groupBy(p *Printer) error {
	letters := collections.New("a", "b", "a", "c", "d", "e")
	p.Println(collections.GroupBy(letters, func(s string) string { return s }))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Arrays, conversions, defaults
// ─────────────────────────────────────────────────────────────────────────────

func intArrayLiteral(p *Printer) error {
	printEach(p, collections.New(1, 2, 3))
	return nil
}

func intArrayZeroed(p *Printer) error {
	printEach(p, collections.From(make([]int, 3)))
	return nil
}

func intArrayInit(p *Printer) error {
	printEach(p, collections.Times(5, func(i int) int { return i * 5 }))
	return nil
}

func conversions(p *Printer) error {
	i := 20
	l := int64(i)
	p.Println(l)

	var building records.Building = records.House{}
	house, ok := building.(records.House)
	if !ok {
		return fmt.Errorf("%w: %T is not records.House", ErrUnexpectedType, building)
	}
	p.Println(house)
	return nil
}

func defaultOnAbsent(p *Printer) error {
	i := 20
	var small string
	if i < 10 {
		small = " Small"
	}
	p.Println(cmp.Or(small, "equal"))
	return nil
}
