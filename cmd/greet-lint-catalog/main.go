// Command greet-lint-catalog validates catalog YAML files: every template
// must use the supported directive grammar and declare an arity the greeting
// pipeline can satisfy (one or two placeholders).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-greet/pkg/directive"
	"github.com/goliatone/go-greet/pkg/locale"
)

const maxPlaceholders = 2

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint greeting catalogs for unsupported directive templates.\n")
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "no catalog paths supplied")
		os.Exit(2)
	}

	ctx := context.Background()

	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, path string) ([]violation, error) {
	catalog, err := locale.LoadFile(ctx, path)
	if err != nil {
		// Load already rejects malformed directive syntax; report it as a
		// finding rather than an abort so remaining files still get linted.
		return []violation{{file: path, location: "-", message: err.Error()}}, nil
	}

	var violations []violation
	for _, loc := range catalog.Locales() {
		for _, key := range catalog.Keys(loc) {
			template, err := catalog.Translate(loc, key)
			if err != nil {
				return nil, err
			}
			tmpl, err := directive.Parse(template)
			if err != nil {
				violations = append(violations, violation{
					file:     path,
					location: loc + "/" + key,
					message:  err.Error(),
				})
				continue
			}
			if n := tmpl.Placeholders(); n < 1 || n > maxPlaceholders {
				violations = append(violations, violation{
					file:     path,
					location: loc + "/" + key,
					message:  fmt.Sprintf("template declares %d placeholders; the greeter supplies 1 or %d", n, maxPlaceholders),
				})
			}
		}
	}
	return violations, nil
}
