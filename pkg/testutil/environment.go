// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate isolated install roots for tests

package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/sdkman/pkg/candidates"
	"github.com/arthur-debert/sdkman/pkg/config"
	"github.com/arthur-debert/sdkman/pkg/datastore"
	"github.com/arthur-debert/sdkman/pkg/filesystem"
	"github.com/arthur-debert/sdkman/pkg/paths"
	"github.com/arthur-debert/sdkman/pkg/types"
)

// DefaultCandidates is the manifest written by NewTestEnvironment
var DefaultCandidates = []string{"java", "kotlin", "maven", "gradle", "scala"}

// DefaultPlatform is the platform used by test configurations
const DefaultPlatform = "linuxx64"

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	// Root is the install root (SDKMAN_DIR)
	Root string
	// Workspace is a scratch directory outside the install root, used for
	// local builds installed from a folder
	Workspace string

	// Core dependencies
	FS        types.FS
	Paths     paths.Paths
	DataStore datastore.DataStore

	t *testing.T
}

// NewTestEnvironment creates an install root in a temp directory, with a
// manifest listing DefaultCandidates
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	env := &TestEnvironment{
		Root:      filepath.Join(tempDir, "sdkman"),
		Workspace: filepath.Join(tempDir, "workspace"),
		FS:        filesystem.NewOS(),
		t:         t,
	}

	p, err := paths.New(env.Root, "")
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p
	env.DataStore = datastore.New(env.FS, env.Paths)

	env.mkdir(env.Paths.CandidatesDir())
	env.mkdir(env.Paths.VarDir())
	env.mkdir(env.Workspace)
	env.WriteManifest(DefaultCandidates...)

	return env
}

func (env *TestEnvironment) mkdir(path string) {
	env.t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", path, err)
	}
}

// WriteManifest replaces <root>/var/candidates
func (env *TestEnvironment) WriteManifest(names ...string) {
	env.t.Helper()
	content := strings.Join(names, ",")
	if err := os.WriteFile(env.Paths.ManifestPath(), []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write manifest: %v", err)
	}
}

// Candidates loads the manifest
func (env *TestEnvironment) Candidates() candidates.Set {
	env.t.Helper()
	set, err := candidates.LoadKnown(env.FS, env.Paths)
	if err != nil {
		env.t.Fatalf("Failed to load candidates: %v", err)
	}
	return set
}

// InstallVersion creates a version directory with a bin/ marker and returns it
func (env *TestEnvironment) InstallVersion(candidate, version string) string {
	env.t.Helper()
	dir := env.Paths.VersionDir(candidate, version)
	env.mkdir(filepath.Join(dir, "bin"))
	if err := os.WriteFile(filepath.Join(dir, "bin", candidate), []byte("#!/bin/sh\n"), 0755); err != nil {
		env.t.Fatalf("Failed to write binary: %v", err)
	}
	return dir
}

// LocalBuild creates a folder in the workspace to install from
func (env *TestEnvironment) LocalBuild(name string) string {
	env.t.Helper()
	dir := filepath.Join(env.Workspace, name)
	env.mkdir(filepath.Join(dir, "bin"))
	return dir
}

// SetCurrentLink points <candidate>/current at version with a relative link,
// without checking that the version exists
func (env *TestEnvironment) SetCurrentLink(candidate, version string) {
	env.t.Helper()
	env.mkdir(env.Paths.CandidateDir(candidate))
	link := env.Paths.CurrentLink(candidate)
	_ = os.Remove(link)
	if err := os.Symlink(version, link); err != nil {
		env.t.Fatalf("Failed to link current: %v", err)
	}
}

// Exists reports whether path exists without following a final symlink
func (env *TestEnvironment) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Snapshot records every entry under the install root: directories as "dir",
// files by content and symlinks by destination. Two equal snapshots mean the
// tree was not changed.
func (env *TestEnvironment) Snapshot() map[string]string {
	env.t.Helper()
	snap := map[string]string{}
	err := filepath.WalkDir(env.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(env.Root, path)
		switch {
		case d.Type()&fs.ModeSymlink != 0:
			dest, err := os.Readlink(path)
			if err != nil {
				return err
			}
			snap[rel] = "link:" + dest
		case d.IsDir():
			snap[rel] = "dir"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snap[rel] = "file:" + string(data)
		}
		return nil
	})
	if err != nil {
		env.t.Fatalf("Failed to snapshot %s: %v", env.Root, err)
	}
	return snap
}

// Config returns a configuration for this root. An empty apiURL gives an
// offline configuration.
func (env *TestEnvironment) Config(apiURL string) config.Config {
	return config.Config{
		Root:          env.Paths.Root(),
		CandidatesDir: env.Paths.CandidatesDir(),
		CandidatesAPI: apiURL,
		Available:     apiURL != "",
		Platform:      DefaultPlatform,
	}
}
