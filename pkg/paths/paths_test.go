package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name          string
		root          string
		candidatesDir string
		validate      func(t *testing.T, p Paths)
	}{
		{
			name: "default candidates dir below root",
			root: "/opt/sdkman",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/opt/sdkman", p.Root())
				assert.Equal(t, "/opt/sdkman/candidates", p.CandidatesDir())
			},
		},
		{
			name:          "candidates dir override",
			root:          "/opt/sdkman",
			candidatesDir: "/data/candidates",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/data/candidates", p.CandidatesDir())
				assert.Equal(t, "/data/candidates/java", p.CandidateDir("java"))
			},
		},
		{
			name: "expand tilde in root",
			root: "~/.sdkman",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, filepath.Join(homeDir, ".sdkman"), p.Root())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.root, tt.candidatesDir)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestNewRejectsEmptyRoot(t *testing.T) {
	_, err := New("", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLayout(t *testing.T) {
	p, err := New("/opt/sdkman", "")
	require.NoError(t, err)

	assert.Equal(t, "/opt/sdkman/candidates/java", p.CandidateDir("java"))
	assert.Equal(t, "/opt/sdkman/candidates/java/17.0.1-tem", p.VersionDir("java", "17.0.1-tem"))
	assert.Equal(t, "/opt/sdkman/candidates/java/current", p.CurrentLink("java"))
	assert.Equal(t, "/opt/sdkman/var/candidates", p.ManifestPath())
	assert.Equal(t, "/opt/sdkman/etc/config.toml", p.ConfigFile())
	assert.Equal(t, "/opt/sdkman/tmp", p.TmpDir())
}

func TestExpandHome(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, homeDir, ExpandHome("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), ExpandHome("~/x"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	ok, err := DirExists(fsys, dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = DirExists(fsys, file)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = DirExists(fsys, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}
