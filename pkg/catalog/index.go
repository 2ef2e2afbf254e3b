/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"fmt"
	"sort"
)

// Duplicate records an entity whose key collides with an earlier one. The
// first occurrence stays in the index; every later occurrence is recorded
// here with both paths.
type Duplicate struct {
	Entity string // "category", "optionList", "option", "product"
	Field  string // "name", "ref", "name+categoryName"
	Value  string
	Path   string // later occurrence
	First  string // first occurrence
}

// Index provides O(1) name/ref lookup over a catalog. It is built once per
// validation run and shared read-only by all checkers. Key comparison is
// case-sensitive; the first occurrence of a key wins for lookup purposes.
type Index struct {
	CategoriesByName  map[string]*Category
	CategoriesByRef   map[string]*Category
	OptionListsByName map[string]*OptionList
	OptionListsByRef  map[string]*OptionList
	OptionsByRef      map[string]*Option
	ProductsByName    map[string]*Product
	ProductsByRef     map[string]*Product

	// Duplicates lists key collisions found while building, in document
	// order. The uniqueness checker turns these into findings.
	Duplicates []Duplicate
}

// NewIndex builds all lookup maps for the given catalog.
func NewIndex(c *Catalog) *Index {
	idx := &Index{
		CategoriesByName:  make(map[string]*Category),
		CategoriesByRef:   make(map[string]*Category),
		OptionListsByName: make(map[string]*OptionList),
		OptionListsByRef:  make(map[string]*OptionList),
		OptionsByRef:      make(map[string]*Option),
		ProductsByName:    make(map[string]*Product),
		ProductsByRef:     make(map[string]*Product),
	}

	for i := range c.Categories {
		cat := &c.Categories[i]
		indexKey(idx, idx.CategoriesByName, "category", "name", cat.Name, cat.Path, cat, categoryPath)
		indexKey(idx, idx.CategoriesByRef, "category", "ref", cat.Ref, cat.Path, cat, categoryPath)
	}

	for i := range c.OptionLists {
		ol := &c.OptionLists[i]
		indexKey(idx, idx.OptionListsByName, "optionList", "name", ol.Name, ol.Path, ol, optionListPath)
		indexKey(idx, idx.OptionListsByRef, "optionList", "ref", ol.Ref, ol.Path, ol, optionListPath)
	}

	for i := range c.Options {
		opt := &c.Options[i]
		indexKey(idx, idx.OptionsByRef, "option", "ref", opt.Ref, opt.Path, opt, optionPath)
	}

	pairSeen := make(map[string]*Product)
	for i := range c.Products {
		p := &c.Products[i]
		indexKey(idx, idx.ProductsByRef, "product", "ref", p.Ref, p.Path, p, productPath)

		if p.Name == "" {
			continue
		}
		// Product names alone need not be unique (the same dish may appear
		// in several categories); only the (name, categoryName) pair is.
		// The name index exists for foreign-key resolution, first one wins.
		if _, exists := idx.ProductsByName[p.Name]; !exists {
			idx.ProductsByName[p.Name] = p
		}
		pairKey := p.Name + "\x00" + p.CategoryName
		if first, seen := pairSeen[pairKey]; seen {
			idx.Duplicates = append(idx.Duplicates, Duplicate{
				Entity: "product",
				Field:  "name+categoryName",
				Value:  fmt.Sprintf("%s / %s", p.Name, p.CategoryName),
				Path:   p.Path,
				First:  first.Path,
			})
		} else {
			pairSeen[pairKey] = p
		}
	}

	return idx
}

// indexKey registers key in m, recording a Duplicate when the key is already
// taken. Empty keys are skipped; their absence is a schema concern, not a
// uniqueness one.
func indexKey[E any](idx *Index, m map[string]*E, entity, field, key, path string, e *E, pathOf func(*E) string) {
	if key == "" {
		return
	}
	if first, exists := m[key]; exists {
		idx.Duplicates = append(idx.Duplicates, Duplicate{
			Entity: entity,
			Field:  field,
			Value:  key,
			Path:   path,
			First:  pathOf(first),
		})
		return
	}
	m[key] = e
}

func categoryPath(c *Category) string { return c.Path }

func optionListPath(ol *OptionList) string { return ol.Path }

func optionPath(o *Option) string { return o.Path }

func productPath(p *Product) string { return p.Path }

// CategoryNames returns all indexed category names, sorted.
func (idx *Index) CategoryNames() []string {
	return sortedKeys(idx.CategoriesByName)
}

// OptionListNames returns all indexed option list names, sorted.
func (idx *Index) OptionListNames() []string {
	return sortedKeys(idx.OptionListsByName)
}

// ProductNames returns all indexed product names, sorted.
func (idx *Index) ProductNames() []string {
	return sortedKeys(idx.ProductsByName)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
