package types

// InstalledVersion describes one version directory of a candidate
type InstalledVersion struct {
	Candidate string `json:"candidate"`
	Version   string `json:"version"`
	Path      string `json:"path"`
	// Current is true when the candidate's current link resolves here
	Current bool `json:"current"`
	// Local is true when the version directory is a link to a folder outside
	// the install root (installed from a target folder)
	Local bool `json:"local"`
}
