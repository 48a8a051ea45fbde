package resolver

import "github.com/arthur-debert/sdkman/pkg/config"

// Context bundles the inputs of a single resolution
type Context struct {
	Candidate string
	// Version is the requested version; empty asks for the catalog default
	Version string
	// Folder is a local build to install from; empty when not given
	Folder string
	// Online selects catalog resolution
	Online bool
	// Platform is sent to the catalog's validation endpoint
	Platform string
	// CatalogURL is the catalog base URL, for diagnostics
	CatalogURL string
}

// NewContext builds a Context from the process configuration
func NewContext(cfg config.Config, candidate, version, folder string) Context {
	return Context{
		Candidate:  candidate,
		Version:    version,
		Folder:     folder,
		Online:     cfg.Online(),
		Platform:   cfg.Platform,
		CatalogURL: cfg.CandidatesAPI,
	}
}
