// pkg/catalog/catalog_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: httptest server
// PURPOSE: Test catalog requests, response parsing and failure mapping

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestParseValidity(t *testing.T) {
	tests := []struct {
		body     string
		expected Validity
	}{
		{"valid", Valid},
		{" valid\n", Valid},
		{"invalid", Invalid},
		{"VALID", Invalid},
		{"", Invalid},
		{"valid version", Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseValidity(tt.body))
		})
	}
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "invalid", Invalid.String())
}

func TestDefaultVersion(t *testing.T) {
	var gotPath, gotAgent string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("17.0.1-tem\n"))
	})

	c := New(srv.URL+"/", false)
	v, err := c.DefaultVersion(context.Background(), "java")
	require.NoError(t, err)
	assert.Equal(t, "17.0.1-tem", v)
	assert.Equal(t, "/candidates/default/java", gotPath)
	assert.Contains(t, gotAgent, "sdkman-go/")
	assert.Equal(t, srv.URL, c.baseURL)
}

func TestDefaultVersion_EmptyBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("  "))
	})

	_, err := New(srv.URL, false).DefaultVersion(context.Background(), "java")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable))
}

func TestValidate(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/candidates/validate/java/17.0.1-tem/linuxx64":
			_, _ = w.Write([]byte("valid"))
		default:
			_, _ = w.Write([]byte("invalid"))
		}
	})
	c := New(srv.URL, false)

	v, err := c.Validate(context.Background(), "java", "17.0.1-tem", "linuxx64")
	require.NoError(t, err)
	assert.Equal(t, Valid, v)

	v, err = c.Validate(context.Background(), "java", "99.99.99", "linuxx64")
	require.NoError(t, err)
	assert.Equal(t, Invalid, v)
}

func TestValidate_ErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte("valid"))
			})

			v, err := New(srv.URL, false).Validate(context.Background(), "java", "17.0.1-tem", "linuxx64")
			require.NoError(t, err)
			assert.Equal(t, Invalid, v)
		})
	}
}

func TestValidate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, false).Validate(context.Background(), "java", "17.0.1-tem", "linuxx64")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable))
}

func TestGet_Failures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := New(srv.URL, false).Get(context.Background(), srv.URL+"/x")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable))
		assert.Equal(t, srv.URL+"/x", errors.DetailString(err, errors.DetailURL))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := New(url, false).Get(context.Background(), url+"/x")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable))
	})

	t.Run("untrusted certificate", func(t *testing.T) {
		srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("valid"))
		}))
		t.Cleanup(srv.Close)

		_, err := New(srv.URL, false).Get(context.Background(), srv.URL+"/x")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable))

		body, err := New(srv.URL, true).Get(context.Background(), srv.URL+"/x")
		require.NoError(t, err)
		assert.Equal(t, "valid", body)
	})
}

func TestEndpointEscaping(t *testing.T) {
	c := New("http://example.com", false)
	assert.Equal(t, "http://example.com/candidates/default/a%2Fb", c.endpoint("candidates", "default", "a/b"))
}
