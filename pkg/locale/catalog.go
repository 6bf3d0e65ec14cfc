// Package locale stores greeting templates keyed by locale and message key.
// Catalogs are immutable after construction and validate every template's
// directive syntax at load time, so a malformed entry fails fast instead of
// surfacing mid-render.
package locale

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-greet/internal/locale/loader"
	"github.com/goliatone/go-greet/pkg/directive"
)

// ErrMissingTranslation signals a locale/key pair absent from the catalog.
var ErrMissingTranslation = errors.New("locale: missing translation")

// Translator resolves a locale and message key into a directive template.
// Catalog implements it; callers can substitute their own source.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// MissingTranslationHandler decides what a pipeline should do when a lookup
// fails. Returning "" tells the caller to skip the operation.
type MissingTranslationHandler func(locale, key string, err error) string

// Catalog holds locale → key → template entries.
type Catalog struct {
	entries map[string]map[string]string
}

var _ Translator = (*Catalog)(nil)

type document struct {
	Locales map[string]map[string]string `yaml:"locales"`
}

// Load decodes a YAML catalog document from r. Every template is parsed with
// the directive grammar; the first invalid entry aborts the load.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("locale: read catalog: %w", err)
	}
	return parse(data)
}

// LoadFile reads and decodes a catalog from disk.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	data, err := loader.File(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("locale: load catalog: %w", err)
	}
	return parse(data)
}

// LoadFS reads and decodes a catalog from an fs.FS.
func LoadFS(ctx context.Context, files fs.FS, name string) (*Catalog, error) {
	data, err := loader.FS(ctx, files, name)
	if err != nil {
		return nil, fmt.Errorf("locale: load catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("locale: decode catalog: %w", err)
	}
	if len(doc.Locales) == 0 {
		return nil, errors.New("locale: catalog declares no locales")
	}

	for loc, entries := range doc.Locales {
		for key, template := range entries {
			if _, err := directive.Parse(template); err != nil {
				return nil, fmt.Errorf("locale: entry %s/%s: %w", loc, key, err)
			}
		}
	}

	return &Catalog{entries: doc.Locales}, nil
}

// Translate returns the template registered for (locale, key). Misses wrap
// ErrMissingTranslation with the lookup context.
func (c *Catalog) Translate(locale, key string) (string, error) {
	if c == nil || len(c.entries) == 0 {
		return "", fmt.Errorf("%w: %s/%s (empty catalog)", ErrMissingTranslation, locale, key)
	}
	entries, ok := c.entries[locale]
	if !ok {
		return "", fmt.Errorf("%w: unknown locale %q", ErrMissingTranslation, locale)
	}
	template, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
	}
	return template, nil
}

// Locales returns the sorted locale identifiers present in the catalog.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.entries))
	for loc := range c.entries {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

// Keys returns the sorted message keys registered under a locale.
func (c *Catalog) Keys(locale string) []string {
	if c == nil {
		return nil
	}
	entries, ok := c.entries[locale]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(entries))
	for key := range entries {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
