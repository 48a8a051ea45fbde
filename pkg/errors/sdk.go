package errors

// Constructors for the conditions the version manager reports to users.
// Each one carries the details the presentation layer needs to print guidance.

// UnknownCandidate reports a candidate missing from the local manifest.
func UnknownCandidate(candidate string) *SdkError {
	return Newf(ErrUnknownCandidate, "%s is not a valid candidate", candidate).
		WithDetail(DetailCandidate, candidate)
}

// NotInstalled reports a version directory that does not exist.
func NotInstalled(candidate, version string) *SdkError {
	return Newf(ErrNotInstalled, "%s %s is not installed on your system", candidate, version).
		WithDetail(DetailCandidate, candidate).
		WithDetail(DetailVersion, version)
}

// AlreadyInstalled reports a version directory that already exists.
func AlreadyInstalled(candidate, version string) *SdkError {
	return Newf(ErrAlreadyInstalled, "%s %s is already installed", candidate, version).
		WithDetail(DetailCandidate, candidate).
		WithDetail(DetailVersion, version)
}

// UnresolvableVersion reports a version that is neither valid in the catalog
// nor present locally.
func UnresolvableVersion(candidate, version string, offline bool) *SdkError {
	return Newf(ErrUnresolvableVersion, "%s %s is not available", candidate, version).
		WithDetail(DetailCandidate, candidate).
		WithDetail(DetailVersion, version).
		WithDetail(DetailOffline, offline)
}

// VersionRequired reports a missing version where no default can be looked up.
func VersionRequired(candidate string) *SdkError {
	return Newf(ErrVersionRequired, "a version of %s is required in offline mode", candidate).
		WithDetail(DetailCandidate, candidate).
		WithDetail(DetailOffline, true)
}

// RefusedCurrentRemoval reports an attempt to remove the current version
// without force.
func RefusedCurrentRemoval(candidate, version string) *SdkError {
	return Newf(ErrRefusedCurrentRemoval, "%s %s is the current version and should not be removed", candidate, version).
		WithDetail(DetailCandidate, candidate).
		WithDetail(DetailVersion, version)
}

// CatalogUnavailable wraps a failed catalog request.
func CatalogUnavailable(url string, err error) *SdkError {
	e := Wrapf(err, ErrCatalogUnavailable, "catalog request to %s failed", url)
	if e == nil {
		e = Newf(ErrCatalogUnavailable, "catalog request to %s failed", url)
	}
	return e.WithDetail(DetailURL, url)
}

// MissingManifest reports an absent, unreadable or empty candidates file.
func MissingManifest(path string, err error) *SdkError {
	e := Wrapf(err, ErrMissingManifest, "the candidates file is missing: %s", path)
	if e == nil {
		e = Newf(ErrMissingManifest, "the candidates file is empty: %s", path)
	}
	return e.WithDetail(DetailPath, path)
}

// MissingEnv reports a required environment variable that is not set.
func MissingEnv(name string) *SdkError {
	return Newf(ErrMissingEnv, "required environment variable %s is not set", name).
		WithDetail(DetailVariable, name)
}

// IsUserFacing reports whether the error is an expected condition that the
// CLI answers with guidance rather than a raw error dump.
func IsUserFacing(err error) bool {
	switch GetErrorCode(err) {
	case ErrUnknownCandidate, ErrUnresolvableVersion, ErrVersionRequired,
		ErrNotInstalled, ErrAlreadyInstalled, ErrRefusedCurrentRemoval:
		return true
	}
	return false
}
