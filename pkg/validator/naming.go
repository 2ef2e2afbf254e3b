/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"

	"github.com/chataigne/catalogctl/pkg/catalog"
	"github.com/chataigne/catalogctl/pkg/fuzzy"
)

// checkNaming lints every ref present in the document against the
// UPPERCASE_SNAKE_CASE convention. Violations are warnings, not errors;
// existing catalogs may use looser conventions. The suggested conversion is
// a deterministic transform, not a fuzzy match.
func checkNaming(c *catalog.Catalog) []Finding {
	n := &namingChecker{}

	for i := range c.Categories {
		n.check(c.Categories[i].Ref, c.Categories[i].Path)
	}
	for i := range c.OptionLists {
		n.check(c.OptionLists[i].Ref, c.OptionLists[i].Path)
	}
	for i := range c.Options {
		n.check(c.Options[i].Ref, c.Options[i].Path)
	}
	for i := range c.Products {
		p := &c.Products[i]
		n.check(p.Ref, p.Path)
		if p.SKU != nil {
			n.check(p.SKU.Ref, p.SKU.Path)
		}
	}
	for i := range c.Deals {
		n.check(c.Deals[i].Ref, c.Deals[i].Path)
	}

	return n.findings
}

type namingChecker struct {
	findings []Finding
}

func (n *namingChecker) check(ref, entityPath string) {
	if ref == "" || fuzzy.IsRefFormat(ref) {
		return
	}

	suggestion, _ := fuzzy.ToRefFormat(ref)
	n.findings = append(n.findings, Finding{
		Type:       FindingInvalidRefFormat,
		Path:       entityPath + ".ref",
		Message:    fmt.Sprintf("ref %q does not match UPPERCASE_SNAKE_CASE", ref),
		Value:      ref,
		Suggestion: suggestion,
		Severity:   SeverityWarning,
		Check:      CheckNaming,
	})
}
