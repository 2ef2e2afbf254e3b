package serializer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type renderable struct {
	text string
}

func (r renderable) RenderText(w io.Writer) error {
	_, err := io.WriteString(w, r.text)
	return err
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatText.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestWriterSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(sample{Name: "pizzas", Count: 3}))

	assert.JSONEq(t, `{"name": "pizzas", "count": 3}`, buf.String())
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestWriterSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(sample{Name: "pizzas", Count: 3}))

	assert.Equal(t, "name: pizzas\ncount: 3\n", buf.String())
}

func TestWriterSerializeText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatText, &buf)

	require.NoError(t, w.Serialize(renderable{text: "report body\n"}))
	assert.Equal(t, "report body\n", buf.String())
}

func TestWriterSerializeTextUnsupported(t *testing.T) {
	w := NewWriter(FormatText, io.Discard)
	err := w.Serialize(sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support text output")
}

func TestNewWriterUnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("bogus"), &buf)

	require.NoError(t, w.Serialize(sample{Name: "x"}))
	assert.JSONEq(t, `{"name": "x", "count": 0}`, buf.String())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	w, err := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, err)
	require.NoError(t, w.Serialize(sample{Name: "pizzas", Count: 1}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "pizzas", "count": 1}`, string(data))
}

func TestNewFileWriterOrStdoutBadPath(t *testing.T) {
	_, err := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "report.json"))
	require.Error(t, err)
}

func TestWriterCloseWithoutFile(t *testing.T) {
	w := NewWriter(FormatJSON, io.Discard)
	assert.NoError(t, w.Close())
}
