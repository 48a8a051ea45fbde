package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/types"
)

// Layout names under the install root. These are part of the on-disk
// contract shared with the shell scripts and are not configurable.
const (
	CandidatesDirName = "candidates"
	CurrentLinkName   = "current"
	VarDirName        = "var"
	EtcDirName        = "etc"
	TmpDirName        = "tmp"
	ManifestFileName  = "candidates"
	ConfigFileName    = "config.toml"

	// DefaultRootDirName is the install root below the home directory
	DefaultRootDirName = ".sdkman"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Paths provides centralized path management for the install root
type Paths interface {
	types.Pather
	VarDir() string
	EtcDir() string
	TmpDir() string
	ConfigFile() string
}

type paths struct {
	root          string
	candidatesDir string
}

// New creates a Paths instance rooted at root. An empty candidatesDir means
// <root>/candidates.
func New(root, candidatesDir string) (Paths, error) {
	if root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "install root is empty")
	}

	absRoot, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for install root")
	}

	p := &paths{root: absRoot}

	if candidatesDir == "" {
		p.candidatesDir = filepath.Join(absRoot, CandidatesDirName)
	} else {
		absCandidates, err := filepath.Abs(ExpandHome(candidatesDir))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for candidates dir")
		}
		p.candidatesDir = absCandidates
	}

	return p, nil
}

func (p *paths) Root() string {
	return p.root
}

func (p *paths) CandidatesDir() string {
	return p.candidatesDir
}

func (p *paths) CandidateDir(candidate string) string {
	return filepath.Join(p.candidatesDir, candidate)
}

func (p *paths) VersionDir(candidate, version string) string {
	return filepath.Join(p.CandidateDir(candidate), version)
}

func (p *paths) CurrentLink(candidate string) string {
	return filepath.Join(p.CandidateDir(candidate), CurrentLinkName)
}

func (p *paths) VarDir() string {
	return filepath.Join(p.root, VarDirName)
}

func (p *paths) ManifestPath() string {
	return filepath.Join(p.VarDir(), ManifestFileName)
}

func (p *paths) EtcDir() string {
	return filepath.Join(p.root, EtcDirName)
}

func (p *paths) ConfigFile() string {
	return filepath.Join(p.EtcDir(), ConfigFileName)
}

func (p *paths) TmpDir() string {
	return filepath.Join(p.root, TmpDirName)
}

// DefaultRoot returns <home>/.sdkman for the given home directory
func DefaultRoot(home string) string {
	return filepath.Join(home, DefaultRootDirName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not expanded
	return path
}

// DirExists reports whether path exists and is a directory, following links
func DirExists(fs types.FS, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
