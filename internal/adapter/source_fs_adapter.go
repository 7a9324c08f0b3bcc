// Package adapter contains the filesystem infrastructure behind the scanner.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/snitch/internal/model"
)

// ErrNotText is returned by ReadText for files that are not valid UTF-8.
var ErrNotText = errors.New("not valid UTF-8 text")

// SourceFSAdapter abstracts the filesystem operations the scanner relies on.
// It hides direct `os` access so the workflow logic can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check that a
	// scan root exists before walking it.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Walk calls fn for every regular file under root, in lexical order.
	// Symbolic links below root are not followed and entries that fail
	// during traversal are skipped.
	Walk(root m.Path, fn FileWalkFunc) error

	// ReadText loads a file and splits it on '\n'. Files that are not valid
	// UTF-8 yield an error wrapping ErrNotText.
	ReadText(path m.Path) (m.Lines, error)
}

// FileWalkFunc is called by Walk for each regular file. A non-nil return
// stops the walk.
type FileWalkFunc func(path m.Path) error

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Walk iterates over regular files under root. The root itself is resolved
// through symlinks; nothing below it is. A regular-file root is visited as
// the only entry.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FileWalkFunc) error {
	rootStr := string(root)

	info, err := os.Stat(rootStr)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil
		}

		return fn(root)
	}

	return fs.WalkDir(os.DirFS(rootStr), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == "." {
				return err
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return fn(m.Path(filepath.Join(rootStr, filepath.FromSlash(path))))
	})
}

// ReadText loads file contents from disk and splits them into lines.
func (a *LocalSourceFSAdapter) ReadText(path m.Path) (m.Lines, error) {
	// #nosec G304 - path comes from walking the user-selected root
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotText)
	}

	return strings.Split(string(content), "\n"), nil
}
