// Package config assembles the version manager's configuration.
//
// Configuration is read once per process, layered with koanf:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The optional user file <root>/etc/config.toml
//  3. Environment variables, under the names the shell integration exports:
//     SDKMAN_DIR, SDKMAN_CANDIDATES_DIR, SDKMAN_CANDIDATES_API,
//     SDKMAN_AVAILABLE, SDKMAN_PLATFORM, sdkman_insecure_ssl and
//     sdkman_offline_mode
//  4. Programmatic overrides (command-line flags)
//
// The result is a plain Config value handed to every component explicitly.
// Nothing outside this package reads the environment.
package config
