package candidates

import (
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/logging"
	"github.com/arthur-debert/sdkman/pkg/types"
)

// Set is the loaded set of known candidate names
type Set map[string]struct{}

// NewSet builds a Set from names, ignoring blanks
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Contains reports whether name is a known candidate
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the candidates in sorted order
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Load reads the manifest at manifestPath. A missing, unreadable or empty
// manifest is fatal since no candidate can be validated without it.
func Load(fs types.FS, manifestPath string) (Set, error) {
	logger := logging.GetLogger("candidates")

	data, err := fs.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.MissingManifest(manifestPath, err)
		}
		return nil, errors.Wrapf(err, errors.ErrMissingManifest, "the candidates file is unreadable: %s", manifestPath).
			WithDetail(errors.DetailPath, manifestPath)
	}

	set := Parse(string(data))
	if len(set) == 0 {
		return nil, errors.MissingManifest(manifestPath, nil)
	}

	logger.Debug().Str("path", manifestPath).Int("count", len(set)).Msg("loaded candidates")
	return set, nil
}

// Parse splits manifest content on commas, trimming each name
func Parse(content string) Set {
	return NewSet(strings.Split(content, ",")...)
}

// Validate fails with UNKNOWN_CANDIDATE when name is not in set
func Validate(set Set, name string) error {
	if !set.Contains(name) {
		return errors.UnknownCandidate(name)
	}
	return nil
}

// LoadKnown loads the manifest at the install root's var/candidates
func LoadKnown(fs types.FS, p types.Pather) (Set, error) {
	return Load(fs, p.ManifestPath())
}
