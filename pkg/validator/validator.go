/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chataigne/catalogctl/pkg/catalog"
	"github.com/chataigne/catalogctl/pkg/header"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "catalog.chataigne.com/v1alpha1"

	// Kind is the kind for validation reports.
	Kind header.Kind = "ValidationReport"
)

// Validator runs all catalog checks and aggregates their findings into a
// single deterministic report. It holds no per-document state; a single
// Validator may be reused across documents and from concurrent goroutines.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	// Strict makes a report with warnings count as invalid for the overall
	// verdict. Finding severities are unchanged.
	Strict bool
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithStrict returns an Option that enables strict verdicts.
func WithStrict(strict bool) Option {
	return func(v *Validator) {
		v.Strict = strict
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every check against the document and returns the aggregated
// report. The document is never mutated; checkers are independent passes
// sharing the indices built here. All findings are collected in one run so
// the caller sees every problem at once.
func (v *Validator) Validate(ctx context.Context, doc *catalog.Document) (*Report, error) {
	start := time.Now()

	if doc == nil || doc.Catalog == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := doc.Catalog
	idx := catalog.NewIndex(c)

	// Checker run order is fixed; the report preserves it.
	var findings []Finding
	findings = append(findings, checkSchema(c)...)
	findings = append(findings, checkReferences(c, idx)...)
	findings = append(findings, checkUniqueness(idx)...)
	findings = append(findings, checkNaming(c)...)
	findings = append(findings, checkBusinessRules(c)...)

	report := NewReport()
	report.Init(Kind, APIVersion, v.Version)
	report.CatalogName = c.Name
	report.Summary = summarize(c)

	for _, f := range findings {
		switch f.Severity {
		case SeverityWarning:
			report.Warnings = append(report.Warnings, f)
		default:
			report.Errors = append(report.Errors, f)
		}
	}

	report.Valid = len(report.Errors) == 0
	if v.Strict && len(report.Warnings) > 0 {
		report.Valid = false
	}

	duration := time.Since(start)
	observeValidation(report, duration)

	slog.Debug("validation completed",
		"catalog", c.Name,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
		"valid", report.Valid,
		"duration", duration)

	return report, nil
}

func summarize(c *catalog.Catalog) Summary {
	s := Summary{
		Categories:  len(c.Categories),
		OptionLists: len(c.OptionLists),
		Options:     len(c.Options),
		Products:    len(c.Products),
		Deals:       len(c.Deals),
		Discounts:   len(c.Discounts),
	}

	for i := range c.Products {
		if c.Products[i].ImageURL != "" {
			s.ProductsWithImages++
		} else {
			s.ProductsWithoutImages++
		}
	}

	if s.Products == 0 {
		s.ImageCoverage = 100
	} else {
		s.ImageCoverage = float64(s.ProductsWithImages) / float64(s.Products) * 100
	}

	return s
}
