// Package testsupport provides helpers shared by contract tests: catalog
// fixtures and name inputs materialised in every text representation.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-greet/pkg/locale"
	"github.com/goliatone/go-greet/pkg/text"
)

// Representations returns s materialised as a C string, an owning buffer,
// and a non-owning view, keyed by representation name. Tests iterate the map
// to assert representation transparency.
func Representations(s string) map[string]text.Text {
	return map[string]text.Text{
		"cstring": text.NewCString(s),
		"buffer":  text.NewBuffer(s),
		"view":    text.ViewOf(s),
	}
}

// LoadCatalog parses an inline YAML catalog, failing the test on error.
func LoadCatalog(t *testing.T, contents string) *locale.Catalog {
	t.Helper()

	catalog, err := locale.Load(strings.NewReader(contents))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return catalog
}

// WriteCatalogFile writes an inline YAML catalog into the test's temp
// directory and returns its path.
func WriteCatalogFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write catalog fixture: %v", err)
	}
	return path
}
