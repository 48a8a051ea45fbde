package config

import (
	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Environment variable names
const (
	EnvDir           = "SDKMAN_DIR"
	EnvCandidatesDir = "SDKMAN_CANDIDATES_DIR"
	EnvCandidatesAPI = "SDKMAN_CANDIDATES_API"
	EnvAvailable     = "SDKMAN_AVAILABLE"
	EnvPlatform      = "SDKMAN_PLATFORM"
	EnvInsecureSSL   = "sdkman_insecure_ssl"
	EnvOfflineMode   = "sdkman_offline_mode"
)

// Configuration keys
const (
	KeyDir           = "dir"
	KeyCandidatesDir = "candidates_dir"
	KeyCandidatesAPI = "candidates_api"
	KeyAvailable     = "available"
	KeyPlatform      = "platform"
	KeyInsecureSSL   = "insecure_ssl"
	KeyOffline       = "offline"
)

// envKeys maps the upstream variable names onto configuration keys
var envKeys = map[string]string{
	EnvDir:           KeyDir,
	EnvCandidatesDir: KeyCandidatesDir,
	EnvCandidatesAPI: KeyCandidatesAPI,
	EnvAvailable:     KeyAvailable,
	EnvPlatform:      KeyPlatform,
	EnvInsecureSSL:   KeyInsecureSSL,
	EnvOfflineMode:   KeyOffline,
}

// boolKeys are the keys whose variables hold "true" or anything else
var boolKeys = map[string]bool{
	KeyAvailable:   true,
	KeyInsecureSSL: true,
	KeyOffline:     true,
}

// Config is the immutable, process-wide configuration
type Config struct {
	// Root is the absolute install root
	Root string `koanf:"dir" toml:"dir"`
	// CandidatesDir is the absolute directory holding all candidates
	CandidatesDir string `koanf:"candidates_dir" toml:"candidates_dir"`
	// CandidatesAPI is the remote catalog base URL
	CandidatesAPI string `koanf:"candidates_api" toml:"candidates_api"`
	// Available reports whether the remote catalog may be reached
	Available bool `koanf:"available" toml:"available"`
	// Platform identifies this machine to the catalog
	Platform string `koanf:"platform" toml:"platform"`
	// InsecureSSL disables TLS certificate verification
	InsecureSSL bool `koanf:"insecure_ssl" toml:"insecure_ssl"`
	// Offline forces offline resolution
	Offline bool `koanf:"offline" toml:"offline"`
}

// Online reports whether version resolution should consult the catalog
func (c Config) Online() bool {
	return c.Available && !c.Offline
}

// Validate checks the variables required for catalog access. Offline
// configurations need neither the API URL nor the platform.
func (c Config) Validate() error {
	if c.Root == "" {
		return errors.MissingEnv(EnvDir)
	}
	if !c.Online() {
		return nil
	}
	if c.CandidatesAPI == "" {
		return errors.MissingEnv(EnvCandidatesAPI)
	}
	if c.Platform == "" {
		return errors.MissingEnv(EnvPlatform)
	}
	return nil
}

// TOML renders the effective configuration
func (c Config) TOML() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
