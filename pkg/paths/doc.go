// Package paths provides centralized path handling for the version manager.
//
// Everything the tool persists lives under a single install root
// (SDKMAN_DIR, default ~/.sdkman):
//
//	<root>/
//	  candidates/<candidate>/<version>/   one directory per installed version
//	  candidates/<candidate>/current      relative symlink to one version dir
//	  var/candidates                      comma-separated candidate manifest
//	  etc/config.toml                     optional user configuration
//	  tmp/                                scratch space
//
// The candidates directory may be relocated with SDKMAN_CANDIDATES_DIR; all
// candidate and version paths are then computed from it.
//
// Path construction is pure: nothing in this package touches the disk except
// DirExists.
package paths
