package datastore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/logging"
	"github.com/arthur-debert/sdkman/pkg/paths"
	"github.com/arthur-debert/sdkman/pkg/state"
	"github.com/arthur-debert/sdkman/pkg/types"
)

type filesystemDataStore struct {
	fs    types.FS
	paths types.Pather
}

// New creates a new DataStore instance that interacts with the filesystem.
func New(fs types.FS, paths types.Pather) DataStore {
	return &filesystemDataStore{
		fs:    fs,
		paths: paths,
	}
}

// validateName rejects names that would escape or collide with the layout
func validateName(kind, name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return errors.Newf(errors.ErrInvalidInput, "invalid %s name %q", kind, name)
	case strings.ContainsAny(name, `/\`):
		return errors.Newf(errors.ErrInvalidInput, "%s name %q must not contain path separators", kind, name)
	case kind == "version" && name == paths.CurrentLinkName:
		return errors.Newf(errors.ErrInvalidInput, "%q is reserved and cannot be used as a version", name)
	}
	return nil
}

func validateNames(candidate, version string) error {
	if err := validateName("candidate", candidate); err != nil {
		return err
	}
	return validateName("version", version)
}

func (s *filesystemDataStore) ValidateInstalledVersion(candidate, version string) (string, error) {
	if err := validateNames(candidate, version); err != nil {
		return "", err
	}

	dir := s.paths.VersionDir(candidate, version)
	exists, err := paths.DirExists(s.fs, dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", dir).
			WithDetail(errors.DetailPath, dir)
	}
	if !exists {
		return "", errors.NotInstalled(candidate, version).WithDetail(errors.DetailPath, dir)
	}
	return dir, nil
}

func (s *filesystemDataStore) InspectCurrent(candidate string) state.CurrentLink {
	return state.InspectCurrentLink(s.fs, candidate, s.paths.CurrentLink(candidate))
}

func (s *filesystemDataStore) ResolveCurrentLink(candidate string) (string, bool) {
	link := s.InspectCurrent(candidate)

	switch link.State {
	case state.LinkHealthy:
		return link.Resolved, true
	case state.LinkBroken:
		logger := logging.GetLogger("datastore")
		logger.Warn().
			Str("candidate", candidate).
			Str("path", link.Path).
			Str("problem", link.Problem).
			Msg("current link broken, stepping over")
	}
	return "", false
}

func (s *filesystemDataStore) IsCurrent(candidate, version string) bool {
	resolved, ok := s.ResolveCurrentLink(candidate)
	if !ok {
		return false
	}
	return state.PathsMatch(resolved, s.paths.VersionDir(candidate, version))
}

func (s *filesystemDataStore) CurrentVersion(candidate string) (string, bool) {
	resolved, ok := s.ResolveCurrentLink(candidate)
	if !ok {
		return "", false
	}
	return filepath.Base(resolved), true
}

func (s *filesystemDataStore) RemoveVersion(candidate, version string, force bool) error {
	logger := logging.GetLogger("datastore")

	dir, err := s.ValidateInstalledVersion(candidate, version)
	if err != nil {
		return err
	}

	if s.IsCurrent(candidate, version) {
		if !force {
			return errors.RefusedCurrentRemoval(candidate, version)
		}

		link := s.paths.CurrentLink(candidate)
		if err := s.fs.Remove(link); err != nil {
			logger.Debug().Err(err).Str("path", link).Msg("unlink failed, removing recursively")
			if err := s.fs.RemoveAll(link); err != nil {
				return errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove current link %s", link).
					WithDetail(errors.DetailPath, link).
					WithDetail(errors.DetailCandidate, candidate)
			}
		}
		logger.Info().Str("candidate", candidate).Str("version", version).Msg("removed current link")
	}

	if err := s.removeVersionDir(dir); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s %s", candidate, version).
			WithDetail(errors.DetailPath, dir).
			WithDetail(errors.DetailCandidate, candidate).
			WithDetail(errors.DetailVersion, version)
	}

	logger.Info().Str("candidate", candidate).Str("version", version).Str("path", dir).Msg("removed version")
	return nil
}

// removeVersionDir removes a version directory. A linked local version only
// loses its link; the folder it points to belongs to the user.
func (s *filesystemDataStore) removeVersionDir(dir string) error {
	info, err := s.fs.Lstat(dir)
	if err != nil {
		return err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return s.fs.Remove(dir)
	}
	return s.fs.RemoveAll(dir)
}

func (s *filesystemDataStore) SetCurrent(candidate, version string) error {
	logger := logging.GetLogger("datastore")

	if _, err := s.ValidateInstalledVersion(candidate, version); err != nil {
		return err
	}

	linkPath := s.paths.CurrentLink(candidate)
	link := s.InspectCurrent(candidate)

	switch {
	case link.State == state.LinkMissing:
	case link.Problem == state.ProblemNotSymlink:
		return errors.Newf(errors.ErrSymlinkCreate, "%s exists and is not a symlink", linkPath).
			WithDetail(errors.DetailPath, linkPath)
	default:
		if link.State == state.LinkHealthy && state.PathsMatch(link.Resolved, s.paths.VersionDir(candidate, version)) && link.Dest == version {
			logger.Debug().Str("candidate", candidate).Str("version", version).Msg("already current")
			return nil
		}
		if err := s.fs.Remove(linkPath); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to replace current link %s", linkPath).
				WithDetail(errors.DetailPath, linkPath)
		}
	}

	// Relative, so the candidates tree can be moved as a whole
	if err := s.fs.Symlink(version, linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create current link %s", linkPath).
			WithDetail(errors.DetailPath, linkPath)
	}

	logger.Info().Str("candidate", candidate).Str("version", version).Msg("set current version")
	return nil
}

func (s *filesystemDataStore) LinkLocalVersion(candidate, version, folder string) (string, error) {
	logger := logging.GetLogger("datastore")

	if err := validateNames(candidate, version); err != nil {
		return "", err
	}

	absFolder, err := filepath.Abs(paths.ExpandHome(folder))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid folder %s", folder)
	}
	isDir, err := paths.DirExists(s.fs, absFolder)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", absFolder).
			WithDetail(errors.DetailPath, absFolder)
	}
	if !isDir {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is not a directory", absFolder).
			WithDetail(errors.DetailPath, absFolder)
	}

	versionDir := s.paths.VersionDir(candidate, version)
	if _, err := s.fs.Lstat(versionDir); err == nil {
		return "", errors.AlreadyInstalled(candidate, version).WithDetail(errors.DetailPath, versionDir)
	}

	candidateDir := s.paths.CandidateDir(candidate)
	if err := s.fs.MkdirAll(candidateDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", candidateDir).
			WithDetail(errors.DetailPath, candidateDir)
	}

	if err := s.fs.Symlink(absFolder, versionDir); err != nil {
		return "", errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s to %s", versionDir, absFolder).
			WithDetail(errors.DetailPath, versionDir)
	}

	logger.Info().
		Str("candidate", candidate).
		Str("version", version).
		Str("folder", absFolder).
		Msg("linked local version")
	return versionDir, nil
}

func (s *filesystemDataStore) ListInstalled(candidate string) ([]types.InstalledVersion, error) {
	if err := validateName("candidate", candidate); err != nil {
		return nil, err
	}

	candidateDir := s.paths.CandidateDir(candidate)
	entries, err := s.fs.ReadDir(candidateDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.InstalledVersion{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", candidateDir).
			WithDetail(errors.DetailPath, candidateDir)
	}

	current, hasCurrent := s.ResolveCurrentLink(candidate)

	versions := []types.InstalledVersion{}
	for _, entry := range entries {
		name := entry.Name()
		if name == paths.CurrentLinkName {
			continue
		}

		dir := filepath.Join(candidateDir, name)
		local := entry.Type()&os.ModeSymlink != 0
		if local {
			if isDir, _ := paths.DirExists(s.fs, dir); !isDir {
				continue
			}
		} else if !entry.IsDir() {
			continue
		}

		versions = append(versions, types.InstalledVersion{
			Candidate: candidate,
			Version:   name,
			Path:      dir,
			Current:   hasCurrent && state.PathsMatch(current, dir),
			Local:     local,
		})
	}

	return versions, nil
}

func (s *filesystemDataStore) InstalledCandidates() ([]string, error) {
	dir := s.paths.CandidatesDir()
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", dir).
			WithDetail(errors.DetailPath, dir)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
