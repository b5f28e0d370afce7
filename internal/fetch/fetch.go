// Package fetch downloads catalog files over HTTP with atomic writes: a
// failed download never leaves a partial file at the destination path.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// partialSuffix is appended to the destination while downloading.
	partialSuffix = ".partial"

	defaultTimeout = 30 * time.Second
)

// Client downloads files relative to a catalog base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithLogger sets the logger used for download progress and warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(cl *Client) {
		cl.log = log
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	cl := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  "promptkit-installer",
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// BaseURL returns the base URL this client resolves relative paths against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch downloads relPath into destPath. The body is written to a .partial
// file next to the destination and renamed into place only after the full
// body has been read, so an interrupted download cannot be mistaken for an
// installed file on a later run.
func (c *Client) Fetch(relPath, destPath string) error {
	url := c.baseURL + "/" + strings.TrimPrefix(relPath, "/")

	body, err := c.get(url)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(destPath), err)
	}

	tmpPath := destPath + partialSuffix
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating download file: %w", err)
	}

	written, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("finalizing download: %w", err)
	}

	c.log.Debug().Str("url", url).Str("dest", destPath).Int64("bytes", written).Msg("fetched")
	return nil
}

// FetchBytes downloads relPath and returns the body. Used for the catalog
// index, which is validated before being written anywhere.
func (c *Client) FetchBytes(relPath string) ([]byte, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(relPath, "/")

	body, err := c.get(url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return data, nil
}

func (c *Client) get(url string) (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("downloading %s: status %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}
