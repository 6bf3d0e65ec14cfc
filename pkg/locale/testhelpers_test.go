package locale

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write catalog fixture: %v", err)
	}
	return path
}
