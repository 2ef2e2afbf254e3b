/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

// Package catalog provides the in-memory document model for restaurant
// catalog files.
//
// # Overview
//
// A catalog document is a single JSON object with a "catalog" key owning all
// entity collections: categories, optionLists, options, products, deals and
// discounts. Parse decodes such a document leniently: wrongly typed fields
// never abort decoding, they are left at zero values and preserved in each
// entity's Raw map so the validation layer can report every problem in one
// pass.
//
// # Indices
//
// NewIndex builds name and ref lookup maps over a parsed catalog. Indices
// are built once per validation run and shared read-only by all checkers.
// Duplicate keys are recorded as a side effect: the first occurrence wins
// for lookups, every later occurrence lands in Index.Duplicates.
//
// # Lifecycle
//
// The document is read once and never mutated. Validation is a pure
// function from (document, options) to (report); concurrent validations of
// different documents need no synchronization.
package catalog
