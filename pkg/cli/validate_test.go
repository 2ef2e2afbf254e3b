package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const validCatalog = `{
	"catalog": {
		"name": "Pizza Palace",
		"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
		"products": [{
			"name": "Margherita",
			"ref": "MARGHERITA",
			"categoryName": "Pizzas",
			"imageUrl": "https://img.example.com/m.jpg",
			"sku": {"price": {"amount": 9.5, "currency": "EUR"}}
		}]
	}
}`

const brokenCatalog = `{
	"catalog": {
		"name": "Pizza Palace",
		"categories": [{"name": "Pizzas", "ref": "PIZZAS"}],
		"products": [{
			"name": "Margherita",
			"categoryName": "Pizzaz",
			"imageUrl": "https://img.example.com/m.jpg",
			"sku": {"price": {"amount": 9.5, "currency": "EUR"}}
		}]
	}
}`

// runCatalogctl runs the root command and returns the exit code a shell
// would see.
func runCatalogctl(t *testing.T, args ...string) int {
	t.Helper()

	var code int
	prev := cli.OsExiter
	cli.OsExiter = func(c int) { code = c }
	t.Cleanup(func() { cli.OsExiter = prev })

	err := New().Run(context.Background(), append([]string{"catalogctl"}, args...))
	if err != nil && code == 0 {
		if coder, ok := err.(cli.ExitCoder); ok {
			code = coder.ExitCode()
		} else {
			code = 1
		}
	}
	return code
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateCommand_ValidCatalog(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	code := runCatalogctl(t, "validate", "--format", "json", "--output", out, writeCatalog(t, validCatalog))
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report struct {
		Kind        string `json:"kind"`
		CatalogName string `json:"catalogName"`
		Valid       bool   `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "ValidationReport", report.Kind)
	assert.Equal(t, "Pizza Palace", report.CatalogName)
	assert.True(t, report.Valid)
}

func TestValidateCommand_InvalidCatalog(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	code := runCatalogctl(t, "validate", "--format", "json", "--output", out, writeCatalog(t, brokenCatalog))
	assert.Equal(t, 1, code)

	// The report is still written in full before the failure exit.
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INVALID_REFERENCE")
	assert.Contains(t, string(data), `"suggestion": "Pizzas"`)
}

func TestValidateCommand_StrictFailsOnWarnings(t *testing.T) {
	// Valid catalog except for a lowercase ref, which is warning-only.
	catalog := writeCatalog(t, `{
		"catalog": {
			"name": "Test",
			"categories": [{"name": "Pizzas", "ref": "pizzas"}],
			"products": [{
				"name": "Margherita",
				"categoryName": "Pizzas",
				"imageUrl": "https://img.example.com/m.jpg",
				"sku": {"price": {"amount": 9, "currency": "EUR"}}
			}]
		}
	}`)
	out := filepath.Join(t.TempDir(), "report.json")

	assert.Equal(t, 0, runCatalogctl(t, "validate", "--format", "json", "--output", out, catalog))
	assert.Equal(t, 1, runCatalogctl(t, "validate", "--strict", "--format", "json", "--output", out, catalog))
}

func TestValidateCommand_UnreadableInput(t *testing.T) {
	code := runCatalogctl(t, "validate", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 2, code)
}

func TestValidateCommand_MalformedJSON(t *testing.T) {
	code := runCatalogctl(t, "validate", writeCatalog(t, `{"catalog": `))
	assert.Equal(t, 2, code)
}

func TestValidateCommand_MissingArgument(t *testing.T) {
	code := runCatalogctl(t, "validate")
	assert.Equal(t, 2, code)
}

func TestValidateCommand_UnknownFormat(t *testing.T) {
	code := runCatalogctl(t, "validate", "--format", "xml", writeCatalog(t, validCatalog))
	assert.NotEqual(t, 0, code)
}
