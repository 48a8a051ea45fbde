package catalog

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/arthur-debert/sdkman/internal/version"
	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/logging"
	"github.com/hashicorp/go-cleanhttp"
)

// maxBodySize bounds catalog responses, which are single short tokens
const maxBodySize = 1 << 20

// Validity is the parsed answer of the validation endpoint
type Validity int

const (
	// Invalid covers every answer other than "valid": unknown version,
	// platform mismatch or not yet released
	Invalid Validity = iota
	// Valid means the catalog knows the version for the platform
	Valid
)

func (v Validity) String() string {
	if v == Valid {
		return "valid"
	}
	return "invalid"
}

// ParseValidity maps a validation response body onto a Validity. Only the
// exact trimmed text "valid" is Valid.
func ParseValidity(body string) Validity {
	if strings.TrimSpace(body) == "valid" {
		return Valid
	}
	return Invalid
}

// Client talks to the remote catalog
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for baseURL. When insecure is set, TLS certificates
// are not verified.
func New(baseURL string, insecure bool) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	if insecure {
		if transport, ok := httpClient.Transport.(*http.Transport); ok {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via sdkman_insecure_ssl
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Get performs a single GET and returns the trimmed body. Non-2xx answers
// are CATALOG_UNAVAILABLE.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	status, text, err := c.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", errors.Newf(errors.ErrCatalogUnavailable, "catalog request to %s returned %d %s", rawURL, status, http.StatusText(status)).
			WithDetail(errors.DetailURL, rawURL)
	}
	return text, nil
}

// fetch performs a GET and returns the status and trimmed body. Only
// transport, TLS and read failures are errors.
func (c *Client) fetch(ctx context.Context, rawURL string) (int, string, error) {
	logger := logging.GetLogger("catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, "", errors.CatalogUnavailable(rawURL, err)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	logger.Debug().Str("url", rawURL).Msg("catalog request")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", errors.CatalogUnavailable(rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, "", errors.CatalogUnavailable(rawURL, err)
	}

	text := strings.TrimSpace(string(body))
	logger.Trace().Str("url", rawURL).Int("status", resp.StatusCode).Str("body", text).Msg("catalog response")
	return resp.StatusCode, text, nil
}

// DefaultVersion returns the catalog's default version of candidate
func (c *Client) DefaultVersion(ctx context.Context, candidate string) (string, error) {
	u := c.endpoint("candidates", "default", candidate)
	v, err := c.Get(ctx, u)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", errors.Newf(errors.ErrCatalogUnavailable, "catalog returned no default version for %s", candidate).
			WithDetail(errors.DetailURL, u).
			WithDetail(errors.DetailCandidate, candidate)
	}
	return v, nil
}

// Validate asks whether version of candidate exists for platform. Any
// answer the catalog gives, whatever its status, is parsed as a Validity;
// only a catalog that cannot be reached is an error.
func (c *Client) Validate(ctx context.Context, candidate, ver, platform string) (Validity, error) {
	u := c.endpoint("candidates", "validate", candidate, ver, platform)
	status, body, err := c.fetch(ctx, u)
	if err != nil {
		return Invalid, err
	}
	if status < 200 || status > 299 {
		logger := logging.GetLogger("catalog")
		logger.Debug().Str("url", u).Int("status", status).Msg("validation answered with an error status, treating as invalid")
		return Invalid, nil
	}
	return ParseValidity(body), nil
}

func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}
