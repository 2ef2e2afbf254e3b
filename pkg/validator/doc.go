/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

// Package validator checks catalog documents for schema compliance,
// referential integrity, uniqueness, naming conventions and business rules.
//
// # Overview
//
// Validation is a pure function from a parsed document to a report. Five
// independent passes run in a fixed order — schema, references, uniqueness,
// naming, business rules — each appending findings to a shared accumulator.
// All passes share the indices built once by the catalog package; no pass
// affects another's outcome, and checking never stops at the first problem.
//
// # Severities
//
// Findings carry one of two severities. Errors block the VALID verdict:
// schema violations, broken references, duplicate keys, invalid discount
// shapes, negative prices, malformed selection bounds. Warnings are
// advisory: naming drift, missing or duplicate images, empty categories and
// option lists, high prices, insufficient options. Malformed input (not
// JSON, or no "catalog" root key) is a distinct fatal condition handled by
// catalog.Parse before validation starts.
//
// # Suggestions
//
// Broken references carry a fuzzy-matched suggestion when a defined entity
// name is within edit-distance threshold of the broken one ("Desert" ->
// "Desserts"). Ref-format warnings carry the deterministic
// UPPERCASE_SNAKE_CASE conversion of the offending ref.
//
// # Usage
//
//	doc, err := catalog.Parse(data)
//	if err != nil {
//	    // fatal: not a catalog document
//	}
//	report, err := validator.New().Validate(ctx, doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("valid: %v, errors: %d, warnings: %d\n",
//	    report.Valid, len(report.Errors), len(report.Warnings))
//
// # Determinism
//
// Reports are byte-stable: the same document always yields the same report.
// Errors come first, in checker run order, then warnings in the same
// relative order, then the summary.
package validator
