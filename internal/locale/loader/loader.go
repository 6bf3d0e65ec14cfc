// Package loader fetches raw catalog documents for pkg/locale. It only deals
// in bytes; parsing and validation stay with the catalog itself.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File reads a catalog document from disk.
func File(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("locale loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// FS reads a catalog document from an fs.FS.
func FS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("locale loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("locale loader: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, err
	}
	return data, nil
}
