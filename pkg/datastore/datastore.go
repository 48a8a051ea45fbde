package datastore

import (
	"github.com/arthur-debert/sdkman/pkg/state"
	"github.com/arthur-debert/sdkman/pkg/types"
)

// DataStore manages the install state of candidates on the filesystem.
type DataStore interface {
	// ValidateInstalledVersion returns the version directory, or a
	// NOT_INSTALLED error when it does not exist as a directory.
	ValidateInstalledVersion(candidate, version string) (string, error)

	// ResolveCurrentLink returns the absolute directory the candidate's
	// current link points to. A missing or broken link returns false.
	ResolveCurrentLink(candidate string) (string, bool)

	// InspectCurrent returns the full classification of the current link.
	InspectCurrent(candidate string) state.CurrentLink

	// IsCurrent reports whether the current link resolves to the version.
	IsCurrent(candidate, version string) bool

	// CurrentVersion returns the version name the current link points to.
	CurrentVersion(candidate string) (string, bool)

	// RemoveVersion deletes an installed version. Removing the current
	// version is refused unless force is set.
	RemoveVersion(candidate, version string, force bool) error

	// SetCurrent points the current link at an installed version.
	SetCurrent(candidate, version string) error

	// LinkLocalVersion installs a local folder as a version by linking it.
	LinkLocalVersion(candidate, version, folder string) (string, error)

	// ListInstalled returns the installed versions of a candidate.
	ListInstalled(candidate string) ([]types.InstalledVersion, error)

	// InstalledCandidates returns the candidates with a directory on disk.
	InstalledCandidates() ([]string, error)
}
