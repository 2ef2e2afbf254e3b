/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chataigne/catalogctl/pkg/catalog"
)

// checkSchema validates required fields, field types and nested shapes for
// every entity kind. One finding is emitted per violation; checking always
// continues so the report covers the whole document.
func checkSchema(c *catalog.Catalog) []Finding {
	s := &schemaChecker{}

	s.requireString(c.Raw, "catalog", "name")

	if c.Settings != nil {
		s.checkSettings(c.Settings)
	}
	for i := range c.Categories {
		s.checkCategory(&c.Categories[i])
	}
	for i := range c.OptionLists {
		s.checkOptionList(&c.OptionLists[i])
	}
	for i := range c.Options {
		s.checkOption(&c.Options[i])
	}
	for i := range c.Products {
		s.checkProduct(&c.Products[i])
	}
	for i := range c.Deals {
		s.checkDeal(&c.Deals[i])
	}
	for i := range c.Discounts {
		s.checkDiscount(&c.Discounts[i])
	}

	return s.findings
}

type schemaChecker struct {
	findings []Finding
}

func (s *schemaChecker) add(f Finding) {
	f.Check = CheckSchema
	if f.Severity == "" {
		f.Severity = SeverityError
	}
	s.findings = append(s.findings, f)
}

func (s *schemaChecker) checkSettings(set *catalog.Settings) {
	items, ok := set.Raw["primaryCategories"].([]any)
	if !ok {
		if _, present := set.Raw["primaryCategories"]; present {
			s.add(Finding{
				Type:    FindingInvalidType,
				Path:    set.Path + ".primaryCategories",
				Message: "primaryCategories must be an array of category names",
				Value:   set.Raw["primaryCategories"],
			})
		}
		return
	}
	for i, item := range items {
		if _, ok := item.(string); !ok {
			s.add(Finding{
				Type:    FindingInvalidType,
				Path:    fmt.Sprintf("%s.primaryCategories[%d]", set.Path, i),
				Message: "primary category entries must be strings",
				Value:   item,
			})
		}
	}
}

func (s *schemaChecker) checkCategory(cat *catalog.Category) {
	s.requireString(cat.Raw, cat.Path, "name")
	s.requireString(cat.Raw, cat.Path, "ref")
}

func (s *schemaChecker) checkOptionList(ol *catalog.OptionList) {
	s.requireString(ol.Raw, ol.Path, "name")
	s.requireString(ol.Raw, ol.Path, "ref")

	min := s.checkSelectionBound(ol, "minSelections", ol.MinSelections)
	max := s.checkSelectionBound(ol, "maxSelections", ol.MaxSelections)

	if min != nil && *min < 0 {
		s.add(Finding{
			Type:    FindingInvalidSelections,
			Path:    ol.Path + ".minSelections",
			Message: "minSelections must not be negative",
			Value:   *min,
		})
	}
	if min != nil && max != nil && *max < *min {
		s.add(Finding{
			Type:    FindingInvalidSelections,
			Path:    ol.Path + ".maxSelections",
			Message: fmt.Sprintf("maxSelections (%d) must be at least minSelections (%d)", *max, *min),
			Value:   *max,
		})
	}
}

// checkSelectionBound reports a selection bound that is present but not an
// integer. Both bounds are optional: a missing minSelections means 0, a
// missing maxSelections means unbounded.
func (s *schemaChecker) checkSelectionBound(ol *catalog.OptionList, field string, parsed *int) *int {
	raw, present := ol.Raw[field]
	if !present {
		return nil
	}
	if parsed == nil {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    ol.Path + "." + field,
			Message: field + " must be an integer",
			Value:   raw,
		})
		return nil
	}
	return parsed
}

func (s *schemaChecker) checkOption(opt *catalog.Option) {
	s.requireString(opt.Raw, opt.Path, "name")
	s.requireString(opt.Raw, opt.Path, "ref")
	s.requireString(opt.Raw, opt.Path, "optionListName")
	s.checkPrice(opt.Price, opt.Raw, opt.Path, true)
	s.requireBool(opt.Raw, opt.Path, "available")
	s.optionalString(opt.Raw, opt.Path, "imageUrl")
}

func (s *schemaChecker) checkProduct(p *catalog.Product) {
	s.requireString(p.Raw, p.Path, "name")
	s.requireString(p.Raw, p.Path, "categoryName")
	s.optionalString(p.Raw, p.Path, "ref")
	s.optionalString(p.Raw, p.Path, "description")
	s.optionalString(p.Raw, p.Path, "imageUrl")
	s.optionalBool(p.Raw, p.Path, "available")

	raw, present := p.Raw["sku"]
	if !present {
		s.add(Finding{
			Type:    FindingMissingField,
			Path:    p.Path + ".sku",
			Message: "products require a sku object",
		})
		return
	}
	if p.SKU == nil {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    p.Path + ".sku",
			Message: "sku must be an object",
			Value:   raw,
		})
		return
	}

	s.checkPrice(p.SKU.Price, p.SKU.Raw, p.SKU.Path, true)
	s.optionalString(p.SKU.Raw, p.SKU.Path, "ref")

	if names, present := p.SKU.Raw["optionListNames"]; present {
		items, ok := names.([]any)
		if !ok {
			s.add(Finding{
				Type:    FindingInvalidType,
				Path:    p.SKU.Path + ".optionListNames",
				Message: "optionListNames must be an array of option list names",
				Value:   names,
			})
			return
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				s.add(Finding{
					Type:    FindingInvalidType,
					Path:    fmt.Sprintf("%s.optionListNames[%d]", p.SKU.Path, i),
					Message: "option list references must be strings",
					Value:   item,
				})
			}
		}
	}
}

func (s *schemaChecker) checkDeal(d *catalog.Deal) {
	s.requireString(d.Raw, d.Path, "name")
	s.requireString(d.Raw, d.Path, "categoryName")
	s.optionalString(d.Raw, d.Path, "ref")
	s.checkPrice(d.Price, d.Raw, d.Path, true)

	if _, present := d.Raw["lines"]; !present {
		s.add(Finding{
			Type:    FindingMissingField,
			Path:    d.Path + ".lines",
			Message: "deals require at least one line",
		})
		return
	}
	if len(d.Lines) == 0 {
		s.add(Finding{
			Type:    FindingInvalidValue,
			Path:    d.Path + ".lines",
			Message: "deal lines must not be empty",
		})
		return
	}

	for i := range d.Lines {
		line := &d.Lines[i]
		if len(line.SKUs) == 0 {
			s.add(Finding{
				Type:    FindingInvalidValue,
				Path:    line.Path + ".skus",
				Message: "deal lines require at least one sku",
			})
			continue
		}
		for j := range line.SKUs {
			sku := &line.SKUs[j]
			s.requireString(sku.Raw, sku.Path, "skuName")
			if sku.Price != nil {
				s.checkPrice(sku.Price, sku.Raw, sku.Path, false)
			}
		}
	}
}

func (s *schemaChecker) checkDiscount(d *catalog.Discount) {
	s.requireString(d.Raw, d.Path, "name")

	if level, ok := s.requireString(d.Raw, d.Path, "level"); ok {
		if !contains(catalog.Levels(), level) {
			s.add(Finding{
				Type:    FindingInvalidValue,
				Path:    d.Path + ".level",
				Message: fmt.Sprintf("unknown discount level %q, supported values: %v", level, catalog.Levels()),
				Value:   level,
			})
		}
	}

	discountType, ok := s.requireString(d.Raw, d.Path, "discountType")
	if !ok {
		return
	}
	if !contains(catalog.DiscountTypes(), discountType) {
		s.add(Finding{
			Type:    FindingUnknownDiscountType,
			Path:    d.Path + ".discountType",
			Message: fmt.Sprintf("unknown discount type %q, supported values: %v", discountType, catalog.DiscountTypes()),
			Value:   discountType,
		})
		return
	}

	s.checkDiscountData(d, discountType)
}

// checkDiscountData enforces the per-type payload shape. free_shipping needs
// no payload; every other type has required fields.
func (s *schemaChecker) checkDiscountData(d *catalog.Discount, discountType string) {
	if discountType == catalog.DiscountFreeShipping {
		return
	}

	dataPath := d.Path + ".discountData"
	if !d.HasData {
		s.add(Finding{
			Type:    FindingMissingField,
			Path:    dataPath,
			Message: fmt.Sprintf("discountData is required for discount type %q", discountType),
		})
		return
	}

	switch discountType {
	case catalog.DiscountPercentage:
		raw, present := d.DiscountData["percentage"]
		if !present {
			s.add(Finding{
				Type:    FindingMissingField,
				Path:    dataPath + ".percentage",
				Message: "percentage discounts require a numeric percentage",
			})
			return
		}
		num, ok := raw.(json.Number)
		if !ok {
			s.add(Finding{
				Type:    FindingInvalidType,
				Path:    dataPath + ".percentage",
				Message: "percentage must be numeric",
				Value:   raw,
			})
			return
		}
		// A Float64 parse error means the literal overflows float64, which is
		// as far out of range as a value can get.
		if pct, err := num.Float64(); err != nil || pct < 1 || pct > 100 {
			s.add(Finding{
				Type:     FindingOutOfRange,
				Path:     dataPath + ".percentage",
				Message:  fmt.Sprintf("percentage %s is outside the recommended 1-100 range", num),
				Value:    raw,
				Severity: SeverityWarning,
			})
		}
	case catalog.DiscountFixed:
		raw, present := d.DiscountData["amount"]
		if !present {
			s.add(Finding{
				Type:    FindingMissingField,
				Path:    dataPath + ".amount",
				Message: "fixed discounts require a numeric amount",
			})
			return
		}
		if _, ok := raw.(json.Number); !ok {
			s.add(Finding{
				Type:    FindingInvalidType,
				Path:    dataPath + ".amount",
				Message: "amount must be numeric",
				Value:   raw,
			})
		}
	case catalog.DiscountFreeProduct:
		raw, present := d.DiscountData["productName"]
		if !present {
			s.add(Finding{
				Type:    FindingMissingField,
				Path:    dataPath + ".productName",
				Message: "free_product discounts require a productName",
			})
			return
		}
		if name, ok := raw.(string); !ok || strings.TrimSpace(name) == "" {
			s.add(Finding{
				Type:    FindingInvalidType,
				Path:    dataPath + ".productName",
				Message: "productName must be a non-empty string",
				Value:   raw,
			})
		}
	case catalog.DiscountBOGO:
		raw, present := d.DiscountData["productNames"]
		if !present {
			s.add(Finding{
				Type:    FindingMissingField,
				Path:    dataPath + ".productNames",
				Message: "bogo discounts require a productNames array",
			})
			return
		}
		names, ok := raw.([]any)
		if !ok {
			s.add(Finding{
				Type:    FindingInvalidType,
				Path:    dataPath + ".productNames",
				Message: "productNames must be an array of product names",
				Value:   raw,
			})
			return
		}
		if len(names) == 0 {
			s.add(Finding{
				Type:    FindingInvalidValue,
				Path:    dataPath + ".productNames",
				Message: "productNames must not be empty",
			})
			return
		}
		for i, item := range names {
			if _, ok := item.(string); !ok {
				s.add(Finding{
					Type:    FindingInvalidType,
					Path:    fmt.Sprintf("%s.productNames[%d]", dataPath, i),
					Message: "product references must be strings",
					Value:   item,
				})
			}
		}
	}
}

// checkPrice validates the {amount, currency} shape. Negative and
// suspiciously high amounts are business-rule territory, not schema.
func (s *schemaChecker) checkPrice(p *catalog.Price, parentRaw map[string]any, parentPath string, required bool) {
	if p == nil {
		if required {
			s.add(Finding{
				Type:    FindingMissingField,
				Path:    parentPath + ".price",
				Message: "a price object {amount, currency} is required",
			})
		}
		return
	}
	if p.Raw == nil {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    p.Path,
			Message: "price must be an object {amount, currency}",
			Value:   parentRaw["price"],
		})
		return
	}

	if raw, present := p.Raw["amount"]; !present {
		s.add(Finding{
			Type:    FindingMissingField,
			Path:    p.Path + ".amount",
			Message: "price requires a numeric amount",
		})
	} else if p.Amount == nil {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    p.Path + ".amount",
			Message: "price amount must be numeric",
			Value:   raw,
		})
	}

	if raw, present := p.Raw["currency"]; !present {
		s.add(Finding{
			Type:    FindingMissingField,
			Path:    p.Path + ".currency",
			Message: "price requires a currency code",
		})
	} else if p.Currency == "" {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    p.Path + ".currency",
			Message: "currency must be a string code",
			Value:   raw,
		})
	}
}

func (s *schemaChecker) requireString(raw map[string]any, entityPath, field string) (string, bool) {
	path := entityPath + "." + field
	v, present := raw[field]
	if !present {
		s.add(Finding{
			Type:    FindingMissingField,
			Path:    path,
			Message: field + " is required",
		})
		return "", false
	}
	str, ok := v.(string)
	if !ok {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    path,
			Message: field + " must be a string",
			Value:   v,
		})
		return "", false
	}
	if strings.TrimSpace(str) == "" {
		s.add(Finding{
			Type:    FindingInvalidValue,
			Path:    path,
			Message: field + " must not be blank",
			Value:   str,
		})
		return "", false
	}
	return str, true
}

func (s *schemaChecker) optionalString(raw map[string]any, entityPath, field string) {
	v, present := raw[field]
	if !present {
		return
	}
	if _, ok := v.(string); !ok {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    entityPath + "." + field,
			Message: field + " must be a string",
			Value:   v,
		})
	}
}

func (s *schemaChecker) requireBool(raw map[string]any, entityPath, field string) {
	v, present := raw[field]
	if !present {
		s.add(Finding{
			Type:    FindingMissingField,
			Path:    entityPath + "." + field,
			Message: field + " is required",
		})
		return
	}
	if _, ok := v.(bool); !ok {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    entityPath + "." + field,
			Message: field + " must be a boolean",
			Value:   v,
		})
	}
}

func (s *schemaChecker) optionalBool(raw map[string]any, entityPath, field string) {
	v, present := raw[field]
	if !present {
		return
	}
	if _, ok := v.(bool); !ok {
		s.add(Finding{
			Type:    FindingInvalidType,
			Path:    entityPath + "." + field,
			Message: field + " must be a boolean",
			Value:   v,
		})
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
