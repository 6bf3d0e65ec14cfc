package locale

import (
	"embed"
	"fmt"
)

//go:embed locales/builtin.yaml
var builtinFS embed.FS

// Builtin returns the embedded default catalog. The embedded document is
// validated at build time by the package tests, so a parse failure here is a
// programming error.
func Builtin() *Catalog {
	data, err := builtinFS.ReadFile("locales/builtin.yaml")
	if err != nil {
		panic(fmt.Errorf("locale: read builtin catalog: %w", err))
	}
	catalog, err := parse(data)
	if err != nil {
		panic(fmt.Errorf("locale: parse builtin catalog: %w", err))
	}
	return catalog
}
