/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

// Package header provides resource-style metadata embedded in report types.
package header

// Kind identifies the type of a resource (e.g. "ValidationReport").
type Kind string

// Header carries kind and versioning information for catalogctl resources.
// It follows Kubernetes-style resource conventions so reports remain
// self-describing when written to files.
type Header struct {
	// Kind is the type of the resource.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion identifies the schema version of the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the resource. Only
	// deterministic values belong here; reports must be byte-stable for
	// identical input.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets the kind and API version, recording the producing tool version
// in Metadata when provided.
func (h *Header) Init(kind Kind, apiVersion, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	if version != "" {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata["catalogctl/version"] = version
	}
}
