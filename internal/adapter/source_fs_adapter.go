// Package adapter contains filesystem and infrastructure adapters for routelint.
package adapter

import (
	"os"
	"path/filepath"

	m "github.com/mouse-blink/routelint/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning a project. It hides direct `os` access so the pipeline
// can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root in lexical order. Directories whose base name is
	// in skipDirs are pruned at any depth below root.
	Walk(root m.Path, skipDirs []string, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, pruning skipped directories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, skipDirs []string, fn FilepathWalkFunc) error {
	rootStr := filepath.Clean(string(root))
	skip := make(map[string]struct{}, len(skipDirs))

	for _, dir := range skipDirs {
		skip[dir] = struct{}{}
	}

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if _, ok := skip[info.Name()]; ok {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the slash-separated relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(filepath.ToSlash(rel)), nil
}
