// Package candidates loads the registry of known candidate names.
//
// The registry is the comma-separated manifest at <root>/var/candidates,
// refreshed by the shell integration. A candidate is valid only if it
// appears in the loaded set.
package candidates
