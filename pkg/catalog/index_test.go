package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndex_Lookups(t *testing.T) {
	doc, err := Parse([]byte(`{
		"catalog": {
			"name": "Test",
			"categories": [
				{"name": "Pizzas", "ref": "PIZZAS"},
				{"name": "Drinks", "ref": "DRINKS"}
			],
			"optionLists": [{"name": "Sizes", "ref": "SIZES"}],
			"options": [{"name": "Large", "ref": "LARGE", "optionListName": "Sizes"}],
			"products": [{"name": "Margherita", "ref": "MARGHERITA", "categoryName": "Pizzas"}]
		}
	}`))
	require.NoError(t, err)

	idx := NewIndex(doc.Catalog)

	assert.Contains(t, idx.CategoriesByName, "Pizzas")
	assert.Contains(t, idx.CategoriesByRef, "DRINKS")
	assert.Contains(t, idx.OptionListsByName, "Sizes")
	assert.Contains(t, idx.OptionListsByRef, "SIZES")
	assert.Contains(t, idx.OptionsByRef, "LARGE")
	assert.Contains(t, idx.ProductsByName, "Margherita")
	assert.Contains(t, idx.ProductsByRef, "MARGHERITA")
	assert.Empty(t, idx.Duplicates)

	assert.Equal(t, []string{"Drinks", "Pizzas"}, idx.CategoryNames())
}

func TestNewIndex_DuplicatesFirstOccurrenceWins(t *testing.T) {
	doc, err := Parse([]byte(`{
		"catalog": {
			"name": "Test",
			"categories": [
				{"name": "Pizzas", "ref": "PIZZAS"},
				{"name": "Pizzas", "ref": "PIZZAS_2"}
			]
		}
	}`))
	require.NoError(t, err)

	idx := NewIndex(doc.Catalog)

	require.Len(t, idx.Duplicates, 1)
	dup := idx.Duplicates[0]
	assert.Equal(t, "category", dup.Entity)
	assert.Equal(t, "name", dup.Field)
	assert.Equal(t, "Pizzas", dup.Value)
	assert.Equal(t, "categories[1]", dup.Path)
	assert.Equal(t, "categories[0]", dup.First)

	// The first occurrence keeps the lookup slot.
	assert.Equal(t, "PIZZAS", idx.CategoriesByName["Pizzas"].Ref)
}

func TestNewIndex_ProductPairDuplicate(t *testing.T) {
	doc, err := Parse([]byte(`{
		"catalog": {
			"name": "Test",
			"products": [
				{"name": "Margherita", "ref": "M1", "categoryName": "Pizzas"},
				{"name": "Margherita", "ref": "M2", "categoryName": "Pizzas"},
				{"name": "Margherita", "ref": "M3", "categoryName": "Vegan"}
			]
		}
	}`))
	require.NoError(t, err)

	idx := NewIndex(doc.Catalog)

	// products[1] collides on the (name, categoryName) pair; products[2]
	// shares the name but lives in another category, which is allowed.
	require.Len(t, idx.Duplicates, 1)
	dup := idx.Duplicates[0]
	assert.Equal(t, "name+categoryName", dup.Field)
	assert.Equal(t, "products[1]", dup.Path)
	assert.Equal(t, "products[0]", dup.First)
}

func TestNewIndex_EmptyKeysSkipped(t *testing.T) {
	doc, err := Parse([]byte(`{
		"catalog": {
			"name": "Test",
			"categories": [
				{"name": "", "ref": ""},
				{"name": "", "ref": ""}
			]
		}
	}`))
	require.NoError(t, err)

	idx := NewIndex(doc.Catalog)
	assert.Empty(t, idx.Duplicates, "empty keys are schema problems, not duplicates")
}
