/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"io"
	"strings"
)

const rule = "======================================================="

// RenderText writes the human-readable form of the report: contents counts,
// per-check verdicts, enumerated errors and warnings, image coverage and the
// overall verdict line. Output is byte-stable for identical reports.
func (r *Report) RenderText(w io.Writer) error {
	p := &printer{w: w}

	p.line(rule)
	p.line("  CATALOG VALIDATION REPORT")
	p.line(rule)
	p.line("")
	name := r.CatalogName
	if name == "" {
		name = "(unnamed)"
	}
	p.linef("Catalog: %s", name)
	p.line("")

	p.line("Contents:")
	p.linef("  Categories:   %d", r.Summary.Categories)
	p.linef("  Option lists: %d", r.Summary.OptionLists)
	p.linef("  Options:      %d", r.Summary.Options)
	p.linef("  Products:     %d", r.Summary.Products)
	p.linef("  Deals:        %d", r.Summary.Deals)
	p.linef("  Discounts:    %d", r.Summary.Discounts)
	p.line("")

	p.line("Checks:")
	for _, check := range []Check{CheckSchema, CheckReferences, CheckUniqueness, CheckNaming, CheckBusiness} {
		p.linef("  %-12s %s", check, r.checkVerdict(check))
	}
	p.line("")

	if len(r.Errors) > 0 {
		p.linef("Errors (%d):", len(r.Errors))
		for _, f := range r.Errors {
			p.linef("  %s", renderFinding(f))
		}
		p.line("")
	}

	if len(r.Warnings) > 0 {
		p.linef("Warnings (%d):", len(r.Warnings))
		for _, f := range r.Warnings {
			p.linef("  %s", renderFinding(f))
		}
		p.line("")
	}

	p.linef("Images: %d/%d products (%.1f%%)", r.Summary.ProductsWithImages, r.Summary.Products, r.Summary.ImageCoverage)
	p.line("")

	p.line(rule)
	p.linef("  %s", r.verdict())
	p.line(rule)

	return p.err
}

func (r *Report) verdict() string {
	switch {
	case len(r.Errors) > 0:
		return "INVALID - fix errors before importing"
	case !r.Valid:
		return "INVALID - warnings present (strict mode)"
	case len(r.Warnings) > 0:
		return "VALID (with warnings)"
	default:
		return "VALID - ready for import"
	}
}

func (r *Report) checkVerdict(check Check) string {
	var errs, warns int
	for _, f := range r.Errors {
		if f.Check == check {
			errs++
		}
	}
	for _, f := range r.Warnings {
		if f.Check == check {
			warns++
		}
	}

	switch {
	case errs > 0 && warns > 0:
		return fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	case errs > 0:
		return fmt.Sprintf("%d error(s)", errs)
	case warns > 0:
		return fmt.Sprintf("%d warning(s)", warns)
	default:
		return "ok"
	}
}

func renderFinding(f Finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", f.Type, f.Path, f.Message)
	if f.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", f.Suggestion)
	}
	return b.String()
}

// printer collects the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
