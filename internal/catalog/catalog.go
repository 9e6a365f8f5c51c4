// Package catalog provides a read-only view over the static vocabulary
// dataset: word identity (pinyin key) and category membership.
package catalog

import (
	"github.com/kimranazman/mymandarin/pkg/models"
)

// Catalog is an immutable word set grouped by category. Word keys are
// globally unique across categories.
type Catalog struct {
	categories []string
	byCategory map[string][]models.Word
	byPinyin   map[string]models.Word
}

// New builds a catalog from a flat word list. Category order follows
// first appearance; word order within a category is preserved.
func New(words []models.Word) *Catalog {
	c := &Catalog{
		byCategory: make(map[string][]models.Word),
		byPinyin:   make(map[string]models.Word),
	}
	for _, w := range words {
		if _, seen := c.byCategory[w.Category]; !seen {
			c.categories = append(c.categories, w.Category)
		}
		c.byCategory[w.Category] = append(c.byCategory[w.Category], w)
		c.byPinyin[w.Pinyin] = w
	}
	return c
}

// AllWords returns every word in the catalog, grouped by category in
// catalog order.
func (c *Catalog) AllWords() []models.Word {
	words := make([]models.Word, 0, len(c.byPinyin))
	for _, cat := range c.categories {
		words = append(words, c.byCategory[cat]...)
	}
	return words
}

// WordsByCategory returns the words of one category, or nil if the
// category doesn't exist.
func (c *Catalog) WordsByCategory(category string) []models.Word {
	return c.byCategory[category]
}

// Categories returns category names in catalog order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Lookup finds a word by its pinyin key.
func (c *Catalog) Lookup(pinyin string) (models.Word, bool) {
	w, ok := c.byPinyin[pinyin]
	return w, ok
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.byPinyin)
}
