package resolver

import (
	"context"

	"github.com/arthur-debert/sdkman/pkg/candidates"
	"github.com/arthur-debert/sdkman/pkg/catalog"
	"github.com/arthur-debert/sdkman/pkg/datastore"
	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/logging"
	"github.com/arthur-debert/sdkman/pkg/paths"
	"github.com/arthur-debert/sdkman/pkg/types"
)

// Catalog is the part of the remote catalog the resolver consults
type Catalog interface {
	DefaultVersion(ctx context.Context, candidate string) (string, error)
	Validate(ctx context.Context, candidate, version, platform string) (catalog.Validity, error)
}

// Source tells how a version was accepted
type Source int

const (
	// SourceCatalog means the catalog validated the version
	SourceCatalog Source = iota
	// SourceTargetFolder means the user supplied a local build folder
	SourceTargetFolder
	// SourceLocalInstall means the version is already installed
	SourceLocalInstall
)

func (s Source) String() string {
	switch s {
	case SourceTargetFolder:
		return "target folder"
	case SourceLocalInstall:
		return "local install"
	default:
		return "catalog"
	}
}

// Resolution is the outcome of a successful resolution
type Resolution struct {
	Candidate string
	Version   string
	Source    Source
	// Defaulted is set when the version came from the catalog default
	Defaulted bool
}

// Resolver resolves versions against the catalog and the install state
type Resolver struct {
	catalog    Catalog
	store      datastore.DataStore
	fs         types.FS
	paths      types.Pather
	candidates candidates.Set
}

// New creates a Resolver. client may be nil when only offline resolution
// will be requested.
func New(client Catalog, store datastore.DataStore, fs types.FS, paths types.Pather, known candidates.Set) *Resolver {
	return &Resolver{
		catalog:    client,
		store:      store,
		fs:         fs,
		paths:      paths,
		candidates: known,
	}
}

// Resolve returns the version to operate on for rc
func (r *Resolver) Resolve(ctx context.Context, rc Context) (Resolution, error) {
	if rc.Online {
		if r.catalog == nil {
			return Resolution{}, errors.New(errors.ErrInternal, "online resolution requested without a catalog client")
		}
		return r.resolveOnline(ctx, rc)
	}
	return r.resolveOffline(rc)
}

func (r *Resolver) resolveOnline(ctx context.Context, rc Context) (Resolution, error) {
	logger := logging.GetLogger("resolver")

	if err := candidates.Validate(r.candidates, rc.Candidate); err != nil {
		return Resolution{}, err
	}

	res := Resolution{Candidate: rc.Candidate, Version: rc.Version}
	if res.Version == "" {
		v, err := r.catalog.DefaultVersion(ctx, rc.Candidate)
		if err != nil {
			return Resolution{}, err
		}
		res.Version = v
		res.Defaulted = true
		logger.Debug().Str("candidate", rc.Candidate).Str("version", v).Msg("using catalog default")
	}

	validity, err := r.catalog.Validate(ctx, rc.Candidate, res.Version, rc.Platform)
	if err != nil {
		return Resolution{}, err
	}

	if validity == catalog.Valid {
		res.Source = SourceCatalog
		return res, nil
	}

	logger.Debug().
		Str("candidate", rc.Candidate).
		Str("version", res.Version).
		Str("platform", rc.Platform).
		Msg("catalog rejected version, checking local escape hatches")

	if rc.Folder != "" {
		res.Source = SourceTargetFolder
		return res, nil
	}

	installed, err := r.isInstalled(rc.Candidate, res.Version)
	if err != nil {
		return Resolution{}, err
	}
	if installed {
		res.Source = SourceLocalInstall
		return res, nil
	}

	return Resolution{}, errors.UnresolvableVersion(rc.Candidate, res.Version, false).
		WithDetail(errors.DetailURL, rc.CatalogURL)
}

func (r *Resolver) resolveOffline(rc Context) (Resolution, error) {
	logger := logging.GetLogger("resolver")

	if rc.Version == "" {
		return Resolution{}, errors.VersionRequired(rc.Candidate)
	}

	candidateDir := r.paths.CandidateDir(rc.Candidate)
	hasDir, err := paths.DirExists(r.fs, candidateDir)
	if err != nil {
		return Resolution{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", candidateDir).
			WithDetail(errors.DetailPath, candidateDir)
	}

	if !hasDir {
		if err := candidates.Validate(r.candidates, rc.Candidate); err != nil {
			return Resolution{}, err
		}
	}

	res := Resolution{Candidate: rc.Candidate, Version: rc.Version}

	if rc.Folder != "" {
		res.Source = SourceTargetFolder
		return res, nil
	}

	if hasDir {
		installed, err := r.isInstalled(rc.Candidate, rc.Version)
		if err != nil {
			return Resolution{}, err
		}
		if installed {
			logger.Debug().Str("candidate", rc.Candidate).Str("version", rc.Version).Msg("resolved offline from local install")
			res.Source = SourceLocalInstall
			return res, nil
		}
	}

	return Resolution{}, errors.UnresolvableVersion(rc.Candidate, rc.Version, true)
}

// isInstalled reports whether the version directory exists. Only failures
// to inspect the filesystem are returned as errors.
func (r *Resolver) isInstalled(candidate, version string) (bool, error) {
	_, err := r.store.ValidateInstalledVersion(candidate, version)
	switch {
	case err == nil:
		return true, nil
	case errors.IsErrorCode(err, errors.ErrFileAccess):
		return false, err
	default:
		return false, nil
	}
}
