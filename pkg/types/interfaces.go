package types

import (
	"io/fs"
)

// FS is the filesystem interface required for install-state operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Lstat(name string) (fs.FileInfo, error)

	// Removal
	Remove(name string) error
	RemoveAll(path string) error
}

// Pather maps candidates and versions to locations under the install root
type Pather interface {
	// Root returns the install root (SDKMAN_DIR)
	Root() string

	// CandidatesDir returns the directory holding every candidate
	CandidatesDir() string

	// CandidateDir returns <candidates>/<candidate>
	CandidateDir(candidate string) string

	// VersionDir returns <candidates>/<candidate>/<version>
	VersionDir(candidate, version string) string

	// CurrentLink returns <candidates>/<candidate>/current
	CurrentLink(candidate string) string

	// ManifestPath returns <root>/var/candidates
	ManifestPath() string
}
