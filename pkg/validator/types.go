/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/chataigne/catalogctl/pkg/header"
)

// Severity distinguishes findings that block a VALID verdict from advisory
// ones.
type Severity string

const (
	// SeverityError blocks the VALID verdict.
	SeverityError Severity = "error"

	// SeverityWarning is advisory and never blocks the verdict on its own.
	SeverityWarning Severity = "warning"
)

// Check names the validation pass that produced a finding. Checks run in a
// fixed order and the report preserves it.
type Check string

const (
	CheckSchema     Check = "schema"
	CheckReferences Check = "references"
	CheckUniqueness Check = "uniqueness"
	CheckNaming     Check = "naming"
	CheckBusiness   Check = "business"
)

// Machine-readable finding types.
const (
	FindingMissingField        = "MISSING_FIELD"
	FindingInvalidType         = "INVALID_TYPE"
	FindingInvalidValue        = "INVALID_VALUE"
	FindingInvalidSelections   = "INVALID_SELECTIONS"
	FindingUnknownDiscountType = "UNKNOWN_DISCOUNT_TYPE"
	FindingOutOfRange          = "OUT_OF_RANGE"
	FindingInvalidReference    = "INVALID_REFERENCE"
	FindingDuplicateName       = "DUPLICATE_NAME"
	FindingDuplicateRef        = "DUPLICATE_REF"
	FindingInvalidRefFormat    = "INVALID_REF_FORMAT"
	FindingEmptyCategory       = "EMPTY_CATEGORY"
	FindingEmptyOptionList     = "EMPTY_OPTION_LIST"
	FindingInsufficientOptions = "INSUFFICIENT_OPTIONS"
	FindingNegativePrice       = "NEGATIVE_PRICE"
	FindingHighPrice           = "HIGH_PRICE"
	FindingMissingImage        = "MISSING_IMAGE"
	FindingInvalidURL          = "INVALID_URL"
	FindingDuplicateImageURL   = "DUPLICATE_IMAGE_URL"
)

// Finding is a single validation result. Path locates the offending value in
// the document (e.g. "products[5].categoryName"); Suggestion carries a
// fuzzy-matched correction when one exists.
type Finding struct {
	Type       string `json:"type" yaml:"type"`
	Path       string `json:"path" yaml:"path"`
	Message    string `json:"message" yaml:"message"`
	Value      any    `json:"value,omitempty" yaml:"value,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`

	Severity Severity `json:"-" yaml:"-"`
	Check    Check    `json:"-" yaml:"-"`
}

// Summary aggregates entity counts and image coverage.
type Summary struct {
	Categories            int `json:"categories" yaml:"categories"`
	OptionLists           int `json:"optionLists" yaml:"optionLists"`
	Options               int `json:"options" yaml:"options"`
	Products              int `json:"products" yaml:"products"`
	Deals                 int `json:"deals" yaml:"deals"`
	Discounts             int `json:"discounts" yaml:"discounts"`
	ProductsWithImages    int `json:"productsWithImages" yaml:"productsWithImages"`
	ProductsWithoutImages int `json:"productsWithoutImages" yaml:"productsWithoutImages"`

	// ImageCoverage is the percentage of products carrying an image URL,
	// 100 for a catalog without products.
	ImageCoverage float64 `json:"imageCoveragePercent" yaml:"imageCoveragePercent"`
}

// Report is the aggregated validation result: errors first in checker run
// order, then warnings in the same relative order, then the summary. Reports
// are byte-stable for identical input.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	CatalogName string    `json:"catalogName,omitempty" yaml:"catalogName,omitempty"`
	Valid       bool      `json:"valid" yaml:"valid"`
	Errors      []Finding `json:"errors" yaml:"errors"`
	Warnings    []Finding `json:"warnings" yaml:"warnings"`
	Summary     Summary   `json:"summary" yaml:"summary"`
}

// NewReport returns an empty report with non-nil finding slices so empty
// reports serialize as [] rather than null.
func NewReport() *Report {
	return &Report{
		Errors:   []Finding{},
		Warnings: []Finding{},
	}
}
