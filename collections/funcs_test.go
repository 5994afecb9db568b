package collections_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/hasbyte1/go-collection-idioms/collections"
)

func TestMap(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n, _ int) string { return strconv.Itoa(n * n) })
	assertSlice(t, got.All(), []string{"1", "4", "9"})
}

func TestMapIndex(t *testing.T) {
	got := collections.Map(collections.New("a", "b"), func(s string, i int) string { return fmt.Sprintf("%d -> %s", i, s) })
	assertSlice(t, got.All(), []string{"0 -> a", "1 -> b"})
}

func TestMapNotNull(t *testing.T) {
	calls := 0
	got := collections.MapNotNull(collections.New("1", "x", "3"), func(s string, _ int) (int, bool) {
		calls++
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
	assertSlice(t, got.All(), []int{1, 3})
	if calls != 3 {
		t.Fatalf("fn called %d times; want 3", calls)
	}
}

func TestFlatMap(t *testing.T) {
	got := collections.FlatMap(collections.New("a b", "c"), func(s string, _ int) []string {
		if s == "a b" {
			return []string{"a", "b"}
		}
		return []string{s}
	})
	assertSlice(t, got.All(), []string{"a", "b", "c"})
}

func TestFlatten(t *testing.T) {
	nested := collections.New(
		[]string{"sammidev1", "dev1", "sam1"},
		[]string{"sammidev2", "dev2", "sam2"},
	)
	got := collections.Flatten(nested).String()
	if got != "[sammidev1, dev1, sam1, sammidev2, dev2, sam2]" {
		t.Fatalf("Flatten = %s", got)
	}
}

func TestReduce(t *testing.T) {
	got := collections.Reduce(collections.New("a", "bb"), func(acc int, s string, _ int) int { return acc + len(s) }, 0)
	if got != 3 {
		t.Fatalf("Reduce = %d; want 3", got)
	}
}

func TestMinus(t *testing.T) {
	got := collections.Minus(collections.New("samidev", "dev"), "samidev")
	if got.String() != "[dev]" {
		t.Fatalf("Minus = %s", got)
	}
	got = collections.Minus(collections.New("a", "b", "a"), "a")
	assertSlice(t, got.All(), []string{"b", "a"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

func TestZip(t *testing.T) {
	pairs := collections.Zip(collections.New("a", "b", "c"), ints(1, 2))
	if pairs.String() != "[(a, 1), (b, 2)]" {
		t.Fatalf("Zip = %s", pairs)
	}
}

func TestZipWith(t *testing.T) {
	got := collections.ZipWith(
		collections.New("Sammidev", "sam", "Sam"),
		collections.New("ganteng", "gateng sangat", "so handsome"),
		func(a, b string) string { return a + " " + b },
	)
	assertSlice(t, got.All(), []string{"Sammidev ganteng", "sam gateng sangat", "Sam so handsome"})
}

func TestUnzip(t *testing.T) {
	pairs := collections.New(
		collections.PairOf(1, "sam"),
		collections.PairOf(2, "dev"),
		collections.PairOf(3, "sammidev"),
	)
	got := collections.Unzip(pairs)
	if s := got.String(); s != "([1, 2, 3], [sam, dev, sammidev])" {
		t.Fatalf("Unzip = %s", s)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed results
// ─────────────────────────────────────────────────────────────────────────────

func names() *collections.Collection[string] { return collections.New("Sammidev", "Dev", "Sam") }

func TestAssociate(t *testing.T) {
	m := collections.Associate(names(), func(s string) collections.Pair[string, int] {
		return collections.PairOf(s, len(s))
	})
	if m.String() != "{Sammidev=8, Dev=3, Sam=3}" {
		t.Fatalf("Associate = %s", m)
	}
}

func TestAssociateByLastWinsKeepsPosition(t *testing.T) {
	m := collections.AssociateBy(names(), func(s string) int { return len(s) })
	if m.String() != "{8=Sammidev, 3=Sam}" {
		t.Fatalf("AssociateBy = %s", m)
	}
}

func TestAssociateWith(t *testing.T) {
	m := collections.AssociateWith(names(), func(s string) int { return len(s) })
	assertSlice(t, m.Keys(), []string{"Sammidev", "Dev", "Sam"})
	assertSlice(t, m.Values(), []int{8, 3, 3})
}

func TestKeyBy(t *testing.T) {
	m := collections.KeyBy(names(), func(s string) byte { return s[0] })
	if v, _ := m.Get('S'); v != "Sam" {
		t.Fatalf("KeyBy['S'] = %q; want Sam", v)
	}
}

func TestGroupBy(t *testing.T) {
	groups := collections.GroupBy(collections.New("a", "b", "a", "c", "d", "e"), func(s string) string { return s })
	if groups.String() != "{a=[a, a], b=[b], c=[c], d=[d], e=[e]}" {
		t.Fatalf("GroupBy = %s", groups)
	}
}

func TestGroupByOrder(t *testing.T) {
	groups := collections.GroupBy(ints(3, 1, 4, 1, 5), func(n int) bool { return n%2 == 0 })
	assertSlice(t, groups.Keys(), []bool{false, true})
	odd, _ := groups.Get(false)
	assertSlice(t, odd.All(), []int{3, 1, 1, 5})
}

func TestCombine(t *testing.T) {
	m, err := collections.Combine([]string{"a", "b"}, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "{a=1, b=2}" {
		t.Fatalf("Combine = %s", m)
	}
	if _, err := collections.Combine([]string{"a"}, []int{}); !errors.Is(err, collections.ErrMismatchedLengths) {
		t.Fatalf("err = %v; want ErrMismatchedLengths", err)
	}
}
