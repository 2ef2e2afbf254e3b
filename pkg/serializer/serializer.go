/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer handles output formatting for reports: JSON, YAML, or
// plain text for values that can render themselves.
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	// FormatJSON emits indented JSON.
	FormatJSON Format = "json"

	// FormatYAML emits YAML.
	FormatYAML Format = "yaml"

	// FormatText emits the value's own plain-text rendering. The value must
	// implement TextRenderer.
	FormatText Format = "text"
)

// StdoutURI is the special output path indicating stdout.
const StdoutURI = "-"

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatText:
		return false
	}
	return true
}

// TextRenderer is implemented by values that provide their own
// human-readable rendering for FormatText output.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// Writer serializes values to an output stream in a chosen format.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
}

// NewWriter creates a Writer emitting to out. Unknown formats fall back to
// JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewFileWriterOrStdout creates a Writer targeting the given file path, or
// stdout when path is empty or "-". Close releases the file handle when one
// was opened.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	if path == "" || path == StdoutURI {
		return NewWriter(format, os.Stdout), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %q: %w", path, err)
	}
	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize writes v to the output in the writer's format.
func (w *Writer) Serialize(v any) error {
	switch w.format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.out.Write(data)
		return err
	case FormatText:
		r, ok := v.(TextRenderer)
		if !ok {
			return fmt.Errorf("value of type %T does not support text output", v)
		}
		return r.RenderText(w.out)
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		if _, err := w.out.Write(data); err != nil {
			return err
		}
		_, err = io.WriteString(w.out, "\n")
		return err
	}
}

// Close releases the underlying file handle, if any.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
