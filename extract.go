package nircmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// extractTool copies the tool binary out of the resource FS into a
// private temporary directory and returns the directory and the
// extracted executable's path. The write is atomic: a concurrent
// reader either sees the complete executable or nothing.
//
// The caller owns the returned directory and removes it on Close.
func extractTool(fsys fs.FS, name, parent string) (dir, path string, err error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("%w: %q", ErrToolMissing, name)
		}
		return "", "", fmt.Errorf("reading tool resource %q: %w", name, err)
	}

	dir, err = os.MkdirTemp(parent, "nircmd-")
	if err != nil {
		return "", "", fmt.Errorf("creating tool dir: %w", err)
	}

	path = filepath.Join(dir, filepath.Base(name))
	if err := renameio.WriteFile(path, data, ToolMode); err != nil {
		_ = os.RemoveAll(dir)
		return "", "", fmt.Errorf("writing tool to %q: %w", path, err)
	}

	return dir, path, nil
}
