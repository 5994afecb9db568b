package idioms_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-collection-idioms/idioms"
)

func noop(*idioms.Printer) error { return nil }

func TestCatalogRegisterKeepsOrder(t *testing.T) {
	c := idioms.NewCatalog()
	for _, n := range []string{"zeta", "alpha", "mid"} {
		if err := c.Register(idioms.Snippet{Name: n, Run: noop}); err != nil {
			t.Fatalf("Register(%q): %v", n, err)
		}
	}
	got := c.Names()
	want := []string{"zeta", "alpha", "mid"}
	if len(got) != len(want) {
		t.Fatalf("Names = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names = %v; want %v", got, want)
		}
	}
}

func TestCatalogRegisterRejects(t *testing.T) {
	c := idioms.NewCatalog()
	_ = c.Register(idioms.Snippet{Name: "a", Run: noop})

	cases := []struct {
		name    string
		snippet idioms.Snippet
		want    error
	}{
		{"empty name", idioms.Snippet{Name: "  ", Run: noop}, idioms.ErrEmptySnippetName},
		{"nil run", idioms.Snippet{Name: "b"}, idioms.ErrNilSnippet},
		{"duplicate", idioms.Snippet{Name: "a", Run: noop}, idioms.ErrDuplicateSnippet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := c.Register(tc.snippet); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v; want %v", err, tc.want)
			}
		})
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d; want 1", c.Len())
	}
}

func TestCatalogSnippetNotFound(t *testing.T) {
	if _, err := idioms.NewCatalog().Snippet("nope"); !errors.Is(err, idioms.ErrSnippetNotFound) {
		t.Fatalf("err = %v; want ErrSnippetNotFound", err)
	}
}

func TestCatalogSelect(t *testing.T) {
	c := idioms.NewCatalog().MustRegister(
		idioms.Snippet{Name: "one", Run: noop},
		idioms.Snippet{Name: "two", Run: noop},
		idioms.Snippet{Name: "three", Run: noop},
	)
	got, err := c.Select("three", "one", "three")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "one" || got[1].Name != "three" {
		t.Fatalf("Select = %v", got)
	}
	if all, _ := c.Select(); len(all) != 3 {
		t.Fatalf("Select() returned %d snippets; want 3", len(all))
	}
	if _, err := c.Select("one", "missing"); !errors.Is(err, idioms.ErrSnippetNotFound) {
		t.Fatalf("err = %v; want ErrSnippetNotFound", err)
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	idioms.NewCatalog().MustRegister(
		idioms.Snippet{Name: "x", Run: noop},
		idioms.Snippet{Name: "x", Run: noop},
	)
}

func TestDefaultCatalogNames(t *testing.T) {
	want := []string{
		"for-each", "for-each-indexed", "mutate-upper", "map-not-null",
		"map-keys", "zip-with", "unzip", "associate", "associate-by",
		"associate-with", "flatten", "flat-map", "join-to-string",
		"join-to-string-transform", "partition", "predicates", "plus", "minus",
		"group-by", "int-array-literal", "int-array-zeroed", "int-array-init",
		"conversions", "default-on-absent",
	}
	got := idioms.DefaultCatalog().Names()
	if len(got) != len(want) {
		t.Fatalf("got %d snippets; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snippet %d = %q; want %q", i, got[i], want[i])
		}
	}
}
