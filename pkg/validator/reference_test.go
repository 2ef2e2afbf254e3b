package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chataigne/catalogctl/pkg/catalog"
)

func runReferences(t *testing.T, input string) []Finding {
	t.Helper()
	doc := mustParse(t, input)
	return checkReferences(doc.Catalog, catalog.NewIndex(doc.Catalog))
}

func TestCheckReferences_BrokenKeysPerField(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		path       string
		suggestion string
	}{
		{
			name: "option optionListName",
			input: `{"catalog": {"name": "T",
				"optionLists": [{"name": "Toppings", "ref": "TOPPINGS"}],
				"options": [{"name": "Olives", "ref": "OLIVES", "optionListName": "Topings", "price": {"amount": 1, "currency": "EUR"}, "available": true}]
			}}`,
			path:       "options[0].optionListName",
			suggestion: "Toppings",
		},
		{
			name: "sku optionListNames element",
			input: `{"catalog": {"name": "T",
				"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
				"optionLists": [{"name": "Sizes", "ref": "SIZES"}],
				"products": [{"name": "Margherita", "categoryName": "Pizzas",
					"sku": {"price": {"amount": 9, "currency": "EUR"}, "optionListNames": ["Sizes", "Sizzes"]}}]
			}}`,
			path:       "products[0].sku.optionListNames[1]",
			suggestion: "Sizes",
		},
		{
			name: "deal categoryName",
			input: `{"catalog": {"name": "T",
				"categories": [{"name": "Combos", "ref": "COMBOS"}],
				"products": [{"name": "Margherita", "categoryName": "Combos", "sku": {"price": {"amount": 9, "currency": "EUR"}}}],
				"deals": [{"name": "Lunch", "categoryName": "Combo's",
					"price": {"amount": 12, "currency": "EUR"},
					"lines": [{"skus": [{"skuName": "Margherita"}]}]}]
			}}`,
			path:       "deals[0].categoryName",
			suggestion: "Combos",
		},
		{
			name: "deal skuName product prefix",
			input: `{"catalog": {"name": "T",
				"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
				"products": [{"name": "Margherita", "categoryName": "Pizzas", "sku": {"price": {"amount": 9, "currency": "EUR"}}}],
				"deals": [{"name": "Lunch", "categoryName": "Pizzas",
					"price": {"amount": 12, "currency": "EUR"},
					"lines": [{"skus": [{"skuName": "Margarita (Large)"}]}]}]
			}}`,
			path:       "deals[0].lines[0].skus[0].skuName",
			suggestion: "Margherita",
		},
		{
			name: "settings primary category",
			input: `{"catalog": {"name": "T",
				"settings": {"primaryCategories": ["Dessert"]},
				"categories": [{"name": "Desserts", "ref": "DESSERTS"}],
				"products": [{"name": "Tiramisu", "categoryName": "Desserts", "sku": {"price": {"amount": 6, "currency": "EUR"}}}]
			}}`,
			path:       "settings.primaryCategories[0]",
			suggestion: "Desserts",
		},
		{
			name: "free_product productName",
			input: `{"catalog": {"name": "T",
				"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
				"products": [{"name": "Calzone", "categoryName": "Pizzas", "sku": {"price": {"amount": 11, "currency": "EUR"}}}],
				"discounts": [{"name": "Freebie", "level": "public", "discountType": "free_product",
					"discountData": {"productName": "Calzoni"}}]
			}}`,
			path:       "discounts[0].discountData.productName",
			suggestion: "Calzone",
		},
		{
			name: "bogo productNames element",
			input: `{"catalog": {"name": "T",
				"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
				"products": [{"name": "Calzone", "categoryName": "Pizzas", "sku": {"price": {"amount": 11, "currency": "EUR"}}}],
				"discounts": [{"name": "Two For One", "level": "public", "discountType": "bogo",
					"discountData": {"productNames": ["Calzone", "Calzonne"]}}]
			}}`,
			path:       "discounts[0].discountData.productNames[1]",
			suggestion: "Calzone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runReferences(t, tt.input)
			require.Len(t, findings, 1, "one finding per unresolvable occurrence")
			f := findings[0]
			assert.Equal(t, FindingInvalidReference, f.Type)
			assert.Equal(t, tt.path, f.Path)
			assert.Equal(t, tt.suggestion, f.Suggestion)
			assert.Equal(t, SeverityError, f.Severity)
			assert.Equal(t, CheckReferences, f.Check)
		})
	}
}

// A skuName may carry an option description after the product name; only the
// part before " (" is resolved.
func TestCheckReferences_DealSKUNameSuffixIgnored(t *testing.T) {
	findings := runReferences(t, `{"catalog": {"name": "T",
		"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
		"products": [{"name": "Margherita", "categoryName": "Pizzas", "sku": {"price": {"amount": 9, "currency": "EUR"}}}],
		"deals": [{"name": "Lunch", "categoryName": "Pizzas",
			"price": {"amount": 12, "currency": "EUR"},
			"lines": [{"skus": [{"skuName": "Margherita (Large)"}, {"skuName": "Margherita"}]}]}]
	}}`)

	assert.Empty(t, findings)
}

func TestCheckReferences_AllResolvable(t *testing.T) {
	findings := runReferences(t, `{"catalog": {"name": "T",
		"settings": {"primaryCategories": ["Pizzas"]},
		"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
		"optionLists": [{"name": "Sizes", "ref": "SIZES"}],
		"options": [{"name": "Large", "ref": "LARGE", "optionListName": "Sizes", "price": {"amount": 2, "currency": "EUR"}, "available": true}],
		"products": [{"name": "Margherita", "categoryName": "Pizzas",
			"sku": {"price": {"amount": 9, "currency": "EUR"}, "optionListNames": ["Sizes"]}}],
		"deals": [{"name": "Lunch", "categoryName": "Pizzas",
			"price": {"amount": 12, "currency": "EUR"},
			"lines": [{"skus": [{"skuName": "Margherita (Large)"}]}]}],
		"discounts": [
			{"name": "Freebie", "level": "public", "discountType": "free_product", "discountData": {"productName": "Margherita"}},
			{"name": "Two For One", "level": "public", "discountType": "bogo", "discountData": {"productNames": ["Margherita"]}}
		]
	}}`)

	assert.Empty(t, findings)
}

// Every unresolvable occurrence is reported, not just the first.
func TestCheckReferences_OneFindingPerOccurrence(t *testing.T) {
	findings := runReferences(t, `{"catalog": {"name": "T",
		"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
		"products": [
			{"name": "Margherita", "categoryName": "Pizzaz", "sku": {"price": {"amount": 9, "currency": "EUR"}}},
			{"name": "Calzone", "categoryName": "Pizzaz", "sku": {"price": {"amount": 11, "currency": "EUR"}}}
		]
	}}`)

	require.Len(t, findings, 2)
	assert.Equal(t, "products[0].categoryName", findings[0].Path)
	assert.Equal(t, "products[1].categoryName", findings[1].Path)
}

func TestCheckReferences_NoSuggestionWhenNothingClose(t *testing.T) {
	findings := runReferences(t, `{"catalog": {"name": "T",
		"categories": [{"name": "Beverages", "ref": "BEVERAGES"}],
		"products": [{"name": "Margherita", "categoryName": "Pza", "sku": {"price": {"amount": 9, "currency": "EUR"}}}]
	}}`)

	require.Len(t, findings, 1)
	assert.Empty(t, findings[0].Suggestion)
}
