// pkg/testutil/failing_fs.go
// DEPENDENCIES: None
// PURPOSE: Inject filesystem errors into mutation paths

package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/sdkman/pkg/types"
)

// FS operation names accepted by FailOn
const (
	OpRemove    = "remove"
	OpRemoveAll = "removeall"
	OpSymlink   = "symlink"
	OpMkdirAll  = "mkdirall"
)

// FailingFS wraps a types.FS and fails chosen operations on chosen paths
type FailingFS struct {
	types.FS
	failures map[string]error
}

// NewFailingFS wraps base
func NewFailingFS(base types.FS) *FailingFS {
	return &FailingFS{FS: base, failures: map[string]error{}}
}

// FailOn makes op on path return err
func (f *FailingFS) FailOn(op, path string, err error) *FailingFS {
	f.failures[op+":"+filepath.Clean(path)] = err
	return f
}

func (f *FailingFS) failure(op, path string) error {
	return f.failures[op+":"+filepath.Clean(path)]
}

func (f *FailingFS) Remove(name string) error {
	if err := f.failure(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FailingFS) RemoveAll(path string) error {
	if err := f.failure(OpRemoveAll, path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

func (f *FailingFS) Symlink(oldname, newname string) error {
	if err := f.failure(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.failure(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}
