/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"

	"github.com/chataigne/catalogctl/pkg/catalog"
)

// checkUniqueness turns the duplicate keys recorded while building the
// indices into findings. Each occurrence after the first is reported with
// its own path; the first occurrence keeps the key.
func checkUniqueness(idx *catalog.Index) []Finding {
	findings := make([]Finding, 0, len(idx.Duplicates))

	for _, dup := range idx.Duplicates {
		findingType := FindingDuplicateName
		if dup.Field == "ref" {
			findingType = FindingDuplicateRef
		}
		findings = append(findings, Finding{
			Type:     findingType,
			Path:     fmt.Sprintf("%s.%s", dup.Path, pathField(dup.Field)),
			Message:  fmt.Sprintf("%s %s %q already used by %s", dup.Entity, dup.Field, dup.Value, dup.First),
			Value:    dup.Value,
			Severity: SeverityError,
			Check:    CheckUniqueness,
		})
	}

	return findings
}

// pathField maps a duplicate's field description to the JSON field carrying
// the colliding key. The composite product key is anchored at name.
func pathField(field string) string {
	if field == "name+categoryName" {
		return "name"
	}
	return field
}
