package state

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/logging"
	"github.com/arthur-debert/sdkman/pkg/types"
)

// LinkState classifies a current link
type LinkState int

const (
	// LinkMissing means there is no current link
	LinkMissing LinkState = iota
	// LinkHealthy means the link resolves to an existing directory
	LinkHealthy
	// LinkBroken means the link exists but cannot be followed to a directory
	LinkBroken
)

func (s LinkState) String() string {
	switch s {
	case LinkHealthy:
		return "healthy"
	case LinkBroken:
		return "broken"
	default:
		return "missing"
	}
}

// Problems reported for broken links
const (
	ProblemNotSymlink    = "current is not a symlink"
	ProblemUnreadable    = "cannot read current link"
	ProblemTargetMissing = "current link target missing"
	ProblemNotDirectory  = "current link target is not a directory"
)

// CurrentLink is the inspected state of <candidate>/current
type CurrentLink struct {
	Candidate string
	// Path is the location of the link itself
	Path string
	// Dest is the raw link destination as stored on disk
	Dest string
	// Resolved is the absolute, cleaned destination
	Resolved string
	State    LinkState
	// Problem describes what is wrong with a broken link
	Problem string
}

// InspectCurrentLink classifies the current link at linkPath. Relative link
// destinations are resolved against the link's own directory.
func InspectCurrentLink(fs types.FS, candidate, linkPath string) CurrentLink {
	logger := logging.GetLogger("state.links")
	link := CurrentLink{Candidate: candidate, Path: linkPath}

	info, err := fs.Lstat(linkPath)
	if err != nil {
		link.State = LinkMissing
		return link
	}

	if info.Mode()&os.ModeSymlink == 0 {
		link.State = LinkBroken
		link.Problem = ProblemNotSymlink
		return link
	}

	dest, err := fs.Readlink(linkPath)
	if err != nil {
		logger.Debug().Err(err).Str("path", linkPath).Msg("can't read current link")
		link.State = LinkBroken
		link.Problem = ProblemUnreadable
		return link
	}
	link.Dest = dest
	link.Resolved = resolve(linkPath, dest)

	targetInfo, err := fs.Stat(link.Resolved)
	if err != nil {
		link.State = LinkBroken
		link.Problem = ProblemTargetMissing
		return link
	}
	if !targetInfo.IsDir() {
		link.State = LinkBroken
		link.Problem = ProblemNotDirectory
		return link
	}

	link.State = LinkHealthy
	return link
}

// resolve makes a link destination absolute relative to the link's directory
func resolve(linkPath, dest string) string {
	if filepath.IsAbs(dest) {
		return filepath.Clean(dest)
	}
	return filepath.Join(filepath.Dir(linkPath), dest)
}

// PathsMatch compares two paths after cleaning
func PathsMatch(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// LinkDetector finds broken current links across every candidate
type LinkDetector struct {
	fs    types.FS
	paths types.Pather
}

// NewLinkDetector creates a new LinkDetector
func NewLinkDetector(fs types.FS, paths types.Pather) *LinkDetector {
	return &LinkDetector{
		fs:    fs,
		paths: paths,
	}
}

// DetectBrokenLinks scans every candidate directory for a broken current link
func (ld *LinkDetector) DetectBrokenLinks() ([]CurrentLink, error) {
	logger := logging.GetLogger("state.links")

	entries, err := ld.fs.ReadDir(ld.paths.CandidatesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read candidates directory %s", ld.paths.CandidatesDir()).
			WithDetail(errors.DetailPath, ld.paths.CandidatesDir())
	}

	var broken []CurrentLink
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := entry.Name()
		link := InspectCurrentLink(ld.fs, candidate, ld.paths.CurrentLink(candidate))
		if link.State == LinkBroken {
			logger.Debug().
				Str("candidate", candidate).
				Str("problem", link.Problem).
				Msg("broken current link")
			broken = append(broken, link)
		}
	}

	return broken, nil
}

// RemoveBrokenLink removes a broken current link. The link is inspected again
// first; links that have been repaired, removed or are not symlinks are left
// alone.
func (ld *LinkDetector) RemoveBrokenLink(link CurrentLink) error {
	logger := logging.GetLogger("state.links")

	now := InspectCurrentLink(ld.fs, link.Candidate, link.Path)
	if now.State != LinkBroken || now.Problem == ProblemNotSymlink {
		logger.Debug().
			Str("path", link.Path).
			Str("state", now.State.String()).
			Msg("not removing current link - no longer a broken symlink")
		return nil
	}

	if err := ld.fs.Remove(link.Path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove current link %s", link.Path).
			WithDetail(errors.DetailPath, link.Path).
			WithDetail(errors.DetailCandidate, link.Candidate)
	}

	logger.Info().
		Str("path", link.Path).
		Str("candidate", link.Candidate).
		Str("problem", now.Problem).
		Msg("removed broken current link")
	return nil
}
