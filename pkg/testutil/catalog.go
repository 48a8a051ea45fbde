// pkg/testutil/catalog.go
// DEPENDENCIES: net/http/httptest
// PURPOSE: Fake remote catalog for resolver and command tests

package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// CatalogServer fakes the remote catalog endpoints
type CatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	defaults map[string]string
	valid    map[string]bool
	requests []string
	status   int
}

// NewCatalogServer starts a catalog that knows no candidates. It is closed
// when the test ends.
func NewCatalogServer(t *testing.T) *CatalogServer {
	t.Helper()
	cs := &CatalogServer{
		defaults: map[string]string{},
		valid:    map[string]bool{},
	}
	cs.Server = httptest.NewServer(http.HandlerFunc(cs.handle))
	t.Cleanup(cs.Close)
	return cs
}

// SetDefault sets the default version answered for candidate
func (cs *CatalogServer) SetDefault(candidate, version string) *CatalogServer {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.defaults[candidate] = version
	return cs
}

// AddValid marks version of candidate as valid on platform
func (cs *CatalogServer) AddValid(candidate, version, platform string) *CatalogServer {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.valid[candidate+"/"+version+"/"+platform] = true
	return cs
}

// SetFailing makes every request answer 503
func (cs *CatalogServer) SetFailing(failing bool) {
	status := 0
	if failing {
		status = http.StatusServiceUnavailable
	}
	cs.SetStatus(status)
}

// SetStatus makes every request answer status with an "invalid" body. Zero
// restores normal answers.
func (cs *CatalogServer) SetStatus(status int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.status = status
}

// Unreachable closes the server so requests fail at the transport level
func (cs *CatalogServer) Unreachable() {
	cs.Close()
}

// Requests returns the paths requested so far
func (cs *CatalogServer) Requests() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]string(nil), cs.requests...)
}

func (cs *CatalogServer) handle(w http.ResponseWriter, r *http.Request) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.requests = append(cs.requests, r.URL.Path)

	if cs.status != 0 {
		w.WriteHeader(cs.status)
		_, _ = w.Write([]byte("invalid\n"))
		return
	}

	switch {
	case strings.HasPrefix(r.URL.Path, "/candidates/default/"):
		candidate := strings.TrimPrefix(r.URL.Path, "/candidates/default/")
		_, _ = w.Write([]byte(cs.defaults[candidate] + "\n"))
	case strings.HasPrefix(r.URL.Path, "/candidates/validate/"):
		key := strings.TrimPrefix(r.URL.Path, "/candidates/validate/")
		if cs.valid[key] {
			_, _ = w.Write([]byte("valid\n"))
			return
		}
		_, _ = w.Write([]byte("invalid\n"))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}
