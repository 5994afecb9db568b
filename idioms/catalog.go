package idioms

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hasbyte1/go-collection-idioms/collections"
)

// Catalog is a thread-safe, ordered registry of snippets. Snippets are
// listed and run in the order they were registered.
type Catalog struct {
	mu       sync.RWMutex
	snippets *collections.OrderedMap[string, Snippet]
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{snippets: collections.NewOrderedMap[string, Snippet]()}
}

// Register appends s to the catalogue.
func (c *Catalog) Register(s Snippet) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptySnippetName
	}
	if s.Run == nil {
		return fmt.Errorf("%w: %q", ErrNilSnippet, s.Name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snippets.Has(s.Name) {
		return fmt.Errorf("%w: %q", ErrDuplicateSnippet, s.Name)
	}
	c.snippets.Set(s.Name, s)
	return nil
}

// MustRegister is like [Catalog.Register] but panics on error. It is meant
// for static catalogues built at start-up.
func (c *Catalog) MustRegister(snippets ...Snippet) *Catalog {
	for _, s := range snippets {
		if err := c.Register(s); err != nil {
			panic(err)
		}
	}
	return c
}

// Snippet returns the snippet registered under name, or [ErrSnippetNotFound].
func (c *Catalog) Snippet(name string) (Snippet, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.snippets.Get(name)
	if !ok {
		return Snippet{}, fmt.Errorf("%w: %q", ErrSnippetNotFound, name)
	}
	return s, nil
}

// Names returns the registered names in order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snippets.Keys()
}

// All returns every registered snippet in order.
func (c *Catalog) All() []Snippet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snippets.Values()
}

// Len returns the number of registered snippets.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snippets.Len()
}

// Select returns the snippets named in names, in catalogue order and without
// duplicates. With no names it returns every snippet. An unknown name fails
// the whole selection with [ErrSnippetNotFound].
func (c *Catalog) Select(names ...string) ([]Snippet, error) {
	if len(names) == 0 {
		return c.All(), nil
	}
	wanted := collections.AssociateWith(collections.From(names), func(string) bool { return true })
	for _, name := range wanted.Keys() {
		if _, err := c.Snippet(name); err != nil {
			return nil, err
		}
	}
	return collections.From(c.All()).
		Filter(func(s Snippet, _ int) bool { return wanted.Has(s.Name) }).
		All(), nil
}
