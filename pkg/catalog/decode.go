/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMalformedDocument indicates input that could not be parsed as a catalog
// document at all: invalid JSON, or a root object without a "catalog" key.
// This is a fatal condition, distinct from entity-level validation errors.
var ErrMalformedDocument = errors.New("malformed catalog document")

// Parse decodes raw JSON bytes into a Document. Decoding is lenient: entity
// fields with unexpected types are left at their zero values and kept in the
// entity's Raw map so the schema checker can report them without aborting
// the run. Only a structurally unusable document returns an error.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	raw, ok := root["catalog"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q object at document root", ErrMalformedDocument, "catalog")
	}

	return &Document{Catalog: decodeCatalog(raw)}, nil
}

func decodeCatalog(raw map[string]any) *Catalog {
	c := &Catalog{Raw: raw}
	c.Name, _ = asString(raw["name"])

	if s, ok := raw["settings"].(map[string]any); ok {
		c.Settings = decodeSettings(s)
	}

	for i, item := range asObjects(raw["categories"]) {
		path := fmt.Sprintf("categories[%d]", i)
		cat := Category{Path: path, Raw: item}
		cat.Name, _ = asString(item["name"])
		cat.Ref, _ = asString(item["ref"])
		c.Categories = append(c.Categories, cat)
	}

	for i, item := range asObjects(raw["optionLists"]) {
		path := fmt.Sprintf("optionLists[%d]", i)
		ol := OptionList{Path: path, Raw: item}
		ol.Name, _ = asString(item["name"])
		ol.Ref, _ = asString(item["ref"])
		ol.MinSelections = asIntPtr(item["minSelections"])
		ol.MaxSelections = asIntPtr(item["maxSelections"])
		c.OptionLists = append(c.OptionLists, ol)
	}

	for i, item := range asObjects(raw["options"]) {
		path := fmt.Sprintf("options[%d]", i)
		opt := Option{Path: path, Raw: item}
		opt.Name, _ = asString(item["name"])
		opt.Ref, _ = asString(item["ref"])
		opt.OptionListName, _ = asString(item["optionListName"])
		opt.Price = decodePrice(item["price"], path+".price")
		opt.Available = asBoolPtr(item["available"])
		opt.ImageURL, _ = asString(item["imageUrl"])
		c.Options = append(c.Options, opt)
	}

	for i, item := range asObjects(raw["products"]) {
		path := fmt.Sprintf("products[%d]", i)
		p := Product{Path: path, Raw: item}
		p.Name, _ = asString(item["name"])
		p.Ref, _ = asString(item["ref"])
		p.CategoryName, _ = asString(item["categoryName"])
		p.Description, _ = asString(item["description"])
		p.ImageURL, _ = asString(item["imageUrl"])
		p.Available = asBoolPtr(item["available"])
		if sku, ok := item["sku"].(map[string]any); ok {
			p.SKU = decodeSKU(sku, path+".sku")
		}
		c.Products = append(c.Products, p)
	}

	for i, item := range asObjects(raw["deals"]) {
		c.Deals = append(c.Deals, decodeDeal(item, fmt.Sprintf("deals[%d]", i)))
	}

	for i, item := range asObjects(raw["discounts"]) {
		path := fmt.Sprintf("discounts[%d]", i)
		d := Discount{Path: path, Raw: item}
		d.Name, _ = asString(item["name"])
		d.Level, _ = asString(item["level"])
		d.DiscountType, _ = asString(item["discountType"])
		if data, ok := item["discountData"].(map[string]any); ok {
			d.DiscountData = data
			d.HasData = true
		}
		c.Discounts = append(c.Discounts, d)
	}

	return c
}

func decodeSettings(raw map[string]any) *Settings {
	s := &Settings{Path: "settings", Raw: raw}
	if items, ok := raw["primaryCategories"].([]any); ok {
		for _, item := range items {
			name, _ := asString(item)
			s.PrimaryCategories = append(s.PrimaryCategories, name)
		}
	}
	return s
}

func decodeSKU(raw map[string]any, path string) *SKU {
	sku := &SKU{Path: path, Raw: raw}
	sku.Ref, _ = asString(raw["ref"])
	sku.Price = decodePrice(raw["price"], path+".price")
	if names, ok := raw["optionListNames"].([]any); ok {
		for _, item := range names {
			name, _ := asString(item)
			sku.OptionListNames = append(sku.OptionListNames, name)
		}
	}
	return sku
}

func decodeDeal(raw map[string]any, path string) Deal {
	d := Deal{Path: path, Raw: raw}
	d.Name, _ = asString(raw["name"])
	d.Ref, _ = asString(raw["ref"])
	d.CategoryName, _ = asString(raw["categoryName"])
	d.Price = decodePrice(raw["price"], path+".price")

	for i, item := range asObjects(raw["lines"]) {
		linePath := fmt.Sprintf("%s.lines[%d]", path, i)
		line := DealLine{Path: linePath, Raw: item}
		line.Name, _ = asString(item["name"])
		for j, skuItem := range asObjects(item["skus"]) {
			skuPath := fmt.Sprintf("%s.skus[%d]", linePath, j)
			sku := DealSKU{Path: skuPath, Raw: skuItem}
			sku.SKUName, _ = asString(skuItem["skuName"])
			sku.Price = decodePrice(skuItem["price"], skuPath+".price")
			line.SKUs = append(line.SKUs, sku)
		}
		d.Lines = append(d.Lines, line)
	}

	return d
}

// decodePrice returns nil when the value is absent. A present but non-object
// value yields a Price with a nil Raw map; a present object with a
// non-numeric amount yields a nil Amount. Both cases surface as schema
// findings later.
func decodePrice(v any, path string) *Price {
	if v == nil {
		return nil
	}
	p := &Price{Path: path}
	obj, ok := v.(map[string]any)
	if !ok {
		return p
	}
	p.Raw = obj
	p.Amount = asDecimalPtr(obj["amount"])
	p.Currency, _ = asString(obj["currency"])
	return p
}

// asObjects returns the object elements of a JSON array value. Non-array
// values and non-object elements are skipped.
func asObjects(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	objs := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			objs = append(objs, obj)
		}
	}
	return objs
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBoolPtr(v any) *bool {
	if b, ok := v.(bool); ok {
		return &b
	}
	return nil
}

func asIntPtr(v any) *int {
	num, ok := v.(json.Number)
	if !ok {
		return nil
	}
	n, err := num.Int64()
	if err != nil {
		return nil
	}
	i := int(n)
	return &i
}

func asDecimalPtr(v any) *decimal.Decimal {
	num, ok := v.(json.Number)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(num.String())
	if err != nil {
		return nil
	}
	return &d
}
