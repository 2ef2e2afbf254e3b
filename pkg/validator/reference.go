/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"strings"

	"github.com/chataigne/catalogctl/pkg/catalog"
	"github.com/chataigne/catalogctl/pkg/fuzzy"
)

// checkReferences resolves every name-based foreign key against the indices
// and reports each broken reference with a fuzzy-matched suggestion when one
// exists. Empty reference fields are skipped here; the schema checker
// already reports them as missing.
func checkReferences(c *catalog.Catalog, idx *catalog.Index) []Finding {
	r := &referenceChecker{idx: idx}

	for i := range c.Options {
		opt := &c.Options[i]
		r.resolveOptionList(opt.OptionListName, opt.Path+".optionListName", "options")
	}

	for i := range c.Products {
		p := &c.Products[i]
		r.resolveCategory(p.CategoryName, p.Path+".categoryName", "products")
		if p.SKU != nil {
			for j, name := range p.SKU.OptionListNames {
				r.resolveOptionList(name, fmt.Sprintf("%s.optionListNames[%d]", p.SKU.Path, j), "products")
			}
		}
	}

	for i := range c.Deals {
		d := &c.Deals[i]
		r.resolveCategory(d.CategoryName, d.Path+".categoryName", "deals")
		for j := range d.Lines {
			for k := range d.Lines[j].SKUs {
				sku := &d.Lines[j].SKUs[k]
				r.resolveDealSKU(sku, d.Name)
			}
		}
	}

	if c.Settings != nil {
		for i, name := range c.Settings.PrimaryCategories {
			if name == "" {
				continue
			}
			r.resolveCategory(name, fmt.Sprintf("%s.primaryCategories[%d]", c.Settings.Path, i), "settings")
		}
	}

	for i := range c.Discounts {
		r.resolveDiscountProducts(&c.Discounts[i])
	}

	return r.findings
}

type referenceChecker struct {
	idx      *catalog.Index
	findings []Finding
}

func (r *referenceChecker) add(f Finding) {
	f.Type = FindingInvalidReference
	f.Severity = SeverityError
	f.Check = CheckReferences
	r.findings = append(r.findings, f)
}

func (r *referenceChecker) resolveCategory(name, path, referrer string) {
	if name == "" {
		return
	}
	if _, ok := r.idx.CategoriesByName[name]; ok {
		return
	}
	r.add(Finding{
		Path:       path,
		Message:    fmt.Sprintf("category %q referenced in %s but not defined", name, referrer),
		Value:      name,
		Suggestion: r.suggest(name, r.idx.CategoryNames()),
	})
}

func (r *referenceChecker) resolveOptionList(name, path, referrer string) {
	if name == "" {
		return
	}
	if _, ok := r.idx.OptionListsByName[name]; ok {
		return
	}
	r.add(Finding{
		Path:       path,
		Message:    fmt.Sprintf("option list %q referenced in %s but not defined", name, referrer),
		Value:      name,
		Suggestion: r.suggest(name, r.idx.OptionListNames()),
	})
}

// resolveDealSKU resolves a deal sku reference to a product. A skuName may
// carry an option description after the product name, e.g.
// "Margherita (Large)", so only the part before " (" is resolved.
func (r *referenceChecker) resolveDealSKU(sku *catalog.DealSKU, dealName string) {
	if sku.SKUName == "" {
		return
	}
	productName, _, _ := strings.Cut(sku.SKUName, " (")
	if productName == "" {
		return
	}
	if _, ok := r.idx.ProductsByName[productName]; ok {
		return
	}
	r.add(Finding{
		Path:       sku.Path + ".skuName",
		Message:    fmt.Sprintf("product %q referenced in deal %q but not defined", productName, dealName),
		Value:      sku.SKUName,
		Suggestion: r.suggest(productName, r.idx.ProductNames()),
	})
}

func (r *referenceChecker) resolveDiscountProducts(d *catalog.Discount) {
	if !d.HasData {
		return
	}
	switch d.DiscountType {
	case catalog.DiscountFreeProduct:
		name, _ := d.DiscountData["productName"].(string)
		r.resolveProduct(name, d.Path+".discountData.productName", d.Name)
	case catalog.DiscountBOGO:
		names, _ := d.DiscountData["productNames"].([]any)
		for i, item := range names {
			name, _ := item.(string)
			r.resolveProduct(name, fmt.Sprintf("%s.discountData.productNames[%d]", d.Path, i), d.Name)
		}
	}
}

func (r *referenceChecker) resolveProduct(name, path, discountName string) {
	if name == "" {
		return
	}
	if _, ok := r.idx.ProductsByName[name]; ok {
		return
	}
	r.add(Finding{
		Path:       path,
		Message:    fmt.Sprintf("product %q referenced in discount %q but not defined", name, discountName),
		Value:      name,
		Suggestion: r.suggest(name, r.idx.ProductNames()),
	})
}

func (r *referenceChecker) suggest(name string, candidates []string) string {
	match, ok := fuzzy.BestMatch(name, candidates)
	if !ok {
		return ""
	}
	return match.Candidate
}
