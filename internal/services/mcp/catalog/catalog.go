// Package catalog holds the in-memory cat dataset and its query operations.
//
// A Catalog is built once at startup and never mutated afterwards, so it is
// safe for concurrent use by any number of MCP sessions without locking.
// All queries preserve insertion order.
package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Cat is a single dataset record.
type Cat struct {
	ID          int
	Name        string
	Age         int
	Breed       string
	Color       string
	Indoor      bool
	FavoriteToy string
}

// Catalog is the immutable, ordered cat dataset.
type Catalog struct {
	cats []Cat
}

// New builds a catalog from the compiled-in seed records.
func New() *Catalog {
	return NewFromRecords(seedCats())
}

// NewFromRecords builds a catalog from explicit records, preserving order.
func NewFromRecords(cats []Cat) *Catalog {
	records := make([]Cat, len(cats))
	copy(records, cats)
	return &Catalog{cats: records}
}

// All returns every record in insertion order. The returned slice is a copy;
// callers cannot mutate the catalog through it.
func (c *Catalog) All() []Cat {
	records := make([]Cat, len(c.cats))
	copy(records, c.cats)
	return records
}

// ByID returns the record with the given id, or false when no record has it.
func (c *Catalog) ByID(id int) (Cat, bool) {
	for _, cat := range c.cats {
		if cat.ID == id {
			return cat, true
		}
	}
	return Cat{}, false
}

// SearchBreed returns the records whose breed contains the query, compared
// case-insensitively with Unicode case folding. An empty query matches every
// record. Zero matches yield an empty result, not an error.
func (c *Catalog) SearchBreed(query string) []Cat {
	if query == "" {
		return c.All()
	}
	matcher := search.New(language.Und, search.IgnoreCase)
	matches := make([]Cat, 0, len(c.cats))
	for _, cat := range c.cats {
		if start, _ := matcher.IndexString(cat.Breed, query); start >= 0 {
			matches = append(matches, cat)
		}
	}
	return matches
}

// Indoor returns the records flagged as indoor cats, in insertion order.
func (c *Catalog) Indoor() []Cat {
	matches := make([]Cat, 0, len(c.cats))
	for _, cat := range c.cats {
		if cat.Indoor {
			matches = append(matches, cat)
		}
	}
	return matches
}

// Len reports the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.cats)
}
