/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chataigne/catalogctl/pkg/catalog"
)

var urlPattern = regexp.MustCompile(`^https?://`)

// highPriceCeiling is the amount above which a price is flagged as
// suspicious. Catalog amounts are in major currency units; anything above
// this is almost always a data-entry slip.
var highPriceCeiling = decimal.NewFromInt(500)

// checkBusinessRules applies catalog quality rules: empty categories and
// option lists, selection bounds vs. available options, price sanity, image
// coverage and duplicate image URLs.
func checkBusinessRules(c *catalog.Catalog) []Finding {
	b := &businessChecker{}

	b.checkEmptyCategories(c)
	b.checkOptionCoverage(c)
	b.checkPrices(c)
	b.checkImages(c)

	return b.findings
}

type businessChecker struct {
	findings []Finding
}

func (b *businessChecker) add(f Finding) {
	f.Check = CheckBusiness
	b.findings = append(b.findings, f)
}

func (b *businessChecker) checkEmptyCategories(c *catalog.Catalog) {
	used := make(map[string]int)
	for i := range c.Products {
		used[c.Products[i].CategoryName]++
	}

	for i := range c.Categories {
		cat := &c.Categories[i]
		if cat.Name == "" || used[cat.Name] > 0 {
			continue
		}
		b.add(Finding{
			Type:     FindingEmptyCategory,
			Path:     cat.Path,
			Message:  fmt.Sprintf("category %q has no products", cat.Name),
			Value:    cat.Name,
			Severity: SeverityWarning,
		})
	}
}

// checkOptionCoverage flags option lists with no options at all, and lists
// whose minimum selection count cannot be satisfied by the options that are
// actually available.
func (b *businessChecker) checkOptionCoverage(c *catalog.Catalog) {
	total := make(map[string]int)
	available := make(map[string]int)
	for i := range c.Options {
		opt := &c.Options[i]
		total[opt.OptionListName]++
		if opt.Available == nil || *opt.Available {
			available[opt.OptionListName]++
		}
	}

	for i := range c.OptionLists {
		ol := &c.OptionLists[i]
		if ol.Name == "" {
			continue
		}
		if total[ol.Name] == 0 {
			b.add(Finding{
				Type:     FindingEmptyOptionList,
				Path:     ol.Path,
				Message:  fmt.Sprintf("option list %q has no options", ol.Name),
				Value:    ol.Name,
				Severity: SeverityWarning,
			})
			continue
		}
		if ol.MinSelections != nil && *ol.MinSelections > 0 && available[ol.Name] < *ol.MinSelections {
			b.add(Finding{
				Type:     FindingInsufficientOptions,
				Path:     ol.Path,
				Message:  fmt.Sprintf("option list %q requires %d selections but only %d options are available", ol.Name, *ol.MinSelections, available[ol.Name]),
				Value:    ol.Name,
				Severity: SeverityWarning,
			})
		}
	}
}

func (b *businessChecker) checkPrices(c *catalog.Catalog) {
	for i := range c.Options {
		b.checkAmount(c.Options[i].Price)
	}
	for i := range c.Products {
		if c.Products[i].SKU != nil {
			b.checkAmount(c.Products[i].SKU.Price)
		}
	}
	for i := range c.Deals {
		d := &c.Deals[i]
		b.checkAmount(d.Price)
		for j := range d.Lines {
			for k := range d.Lines[j].SKUs {
				b.checkAmount(d.Lines[j].SKUs[k].Price)
			}
		}
	}
}

func (b *businessChecker) checkAmount(p *catalog.Price) {
	if p == nil || p.Amount == nil {
		return
	}
	switch {
	case p.Amount.IsNegative():
		b.add(Finding{
			Type:     FindingNegativePrice,
			Path:     p.Path + ".amount",
			Message:  fmt.Sprintf("price amount %s must not be negative", p.Amount),
			Value:    p.Amount.String(),
			Severity: SeverityError,
		})
	case p.Amount.GreaterThan(highPriceCeiling):
		b.add(Finding{
			Type:     FindingHighPrice,
			Path:     p.Path + ".amount",
			Message:  fmt.Sprintf("price amount %s looks unusually high", p.Amount),
			Value:    p.Amount.String(),
			Severity: SeverityWarning,
		})
	}
}

// imageRef is an entity carrying an image URL, used for coverage and
// duplicate detection across products and options.
type imageRef struct {
	name string
	url  string
	path string
}

func (b *businessChecker) checkImages(c *catalog.Catalog) {
	refs := make([]imageRef, 0, len(c.Products)+len(c.Options))
	for i := range c.Products {
		p := &c.Products[i]
		refs = append(refs, imageRef{name: p.Name, url: p.ImageURL, path: p.Path})
	}
	for i := range c.Options {
		opt := &c.Options[i]
		refs = append(refs, imageRef{name: opt.Name, url: opt.ImageURL, path: opt.Path})
	}

	for _, ref := range refs {
		if ref.url == "" {
			b.add(Finding{
				Type:     FindingMissingImage,
				Path:     ref.path + ".imageUrl",
				Message:  fmt.Sprintf("%q has no image", ref.name),
				Severity: SeverityWarning,
			})
			continue
		}
		if !urlPattern.MatchString(ref.url) {
			b.add(Finding{
				Type:     FindingInvalidURL,
				Path:     ref.path + ".imageUrl",
				Message:  fmt.Sprintf("image URL for %q does not start with http:// or https://", ref.name),
				Value:    ref.url,
				Severity: SeverityWarning,
			})
		}
	}

	b.checkDuplicateImages(refs)
}

// checkDuplicateImages groups image URLs by their base (query string
// stripped) and warns once per shared URL, naming every affected entity.
// Downstream imports assign a shared image to only one entity, silently
// leaving the rest without one.
func (b *businessChecker) checkDuplicateImages(refs []imageRef) {
	byBase := make(map[string][]imageRef)
	var order []string

	for _, ref := range refs {
		if ref.url == "" {
			continue
		}
		base, _, _ := strings.Cut(ref.url, "?")
		if _, seen := byBase[base]; !seen {
			order = append(order, base)
		}
		byBase[base] = append(byBase[base], ref)
	}

	for _, base := range order {
		shared := byBase[base]
		if len(shared) < 2 {
			continue
		}
		names := make([]string, len(shared))
		for i, ref := range shared {
			names[i] = ref.name
		}
		b.add(Finding{
			Type:     FindingDuplicateImageURL,
			Path:     shared[0].path + ".imageUrl",
			Message:  fmt.Sprintf("image URL shared by %d entities (%s); only one will keep the image on import", len(shared), strings.Join(names, ", ")),
			Value:    base,
			Severity: SeverityWarning,
		})
	}
}
