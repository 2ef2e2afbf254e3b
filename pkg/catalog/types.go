/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "github.com/shopspring/decimal"

// Document is the root of a parsed catalog file.
type Document struct {
	Catalog *Catalog
}

// Catalog holds all entity collections of a restaurant menu. Missing
// collections decode as empty slices, never as nil-vs-present distinctions
// the checkers need to care about.
type Catalog struct {
	Name        string
	Settings    *Settings
	Categories  []Category
	OptionLists []OptionList
	Options     []Option
	Products    []Product
	Deals       []Deal
	Discounts   []Discount

	// Raw is the catalog object as decoded from JSON. The schema checker
	// consults it to distinguish missing fields from wrongly typed ones.
	Raw map[string]any
}

// Settings carries catalog-level display configuration.
type Settings struct {
	PrimaryCategories []string
	Path              string
	Raw               map[string]any
}

// Category is a menu section referenced by products, deals and settings.
type Category struct {
	Name string
	Ref  string
	Path string
	Raw  map[string]any
}

// OptionList is a named group of selectable modifiers with selection bounds.
// MinSelections and MaxSelections are nil when absent or not integers; the
// schema checker reports the latter case.
type OptionList struct {
	Name          string
	Ref           string
	MinSelections *int
	MaxSelections *int
	Path          string
	Raw           map[string]any
}

// Option is a single selectable modifier belonging to an option list.
type Option struct {
	Name           string
	Ref            string
	OptionListName string
	Price          *Price
	Available      *bool
	ImageURL       string
	Path           string
	Raw            map[string]any
}

// Price is a monetary value. Amount is nil when the field is missing or not
// numeric; Raw is nil when the price value was not a JSON object at all.
type Price struct {
	Amount   *decimal.Decimal
	Currency string
	Path     string
	Raw      map[string]any
}

// SKU is the sellable unit of a product.
type SKU struct {
	Ref             string
	Price           *Price
	OptionListNames []string
	Path            string
	Raw             map[string]any
}

// Product is a menu item belonging to a category.
type Product struct {
	Name         string
	Ref          string
	CategoryName string
	Description  string
	ImageURL     string
	Available    *bool
	SKU          *SKU
	Path         string
	Raw          map[string]any
}

// DealSKU is one selectable choice inside a deal line. SKUName refers to a
// product by name, optionally suffixed with an option description in
// parentheses.
type DealSKU struct {
	SKUName string
	Price   *Price
	Path    string
	Raw     map[string]any
}

// DealLine is one slot of a deal, offering a choice between SKUs.
type DealLine struct {
	Name string
	SKUs []DealSKU
	Path string
	Raw  map[string]any
}

// Deal is a bundle of product choices sold at a combined price.
type Deal struct {
	Name         string
	Ref          string
	CategoryName string
	Price        *Price
	Lines        []DealLine
	Path         string
	Raw          map[string]any
}

// Discount is a promotion. DiscountData is the per-type payload; its
// required shape depends on DiscountType and is enforced by the schema
// checker.
type Discount struct {
	Name         string
	Level        string
	DiscountType string
	DiscountData map[string]any
	HasData      bool
	Path         string
	Raw          map[string]any
}

// Discount levels.
const (
	LevelPushed = "pushed"
	LevelPublic = "public"
	LevelHidden = "hidden"
)

// Discount types.
const (
	DiscountPercentage   = "percentage"
	DiscountFixed        = "fixed"
	DiscountFreeProduct  = "free_product"
	DiscountBOGO         = "bogo"
	DiscountFreeShipping = "free_shipping"
)

// Levels returns all valid discount levels.
func Levels() []string {
	return []string{LevelPushed, LevelPublic, LevelHidden}
}

// DiscountTypes returns all recognized discount types.
func DiscountTypes() []string {
	return []string{DiscountPercentage, DiscountFixed, DiscountFreeProduct, DiscountBOGO, DiscountFreeShipping}
}
