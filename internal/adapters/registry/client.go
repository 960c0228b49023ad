// Package registry implements the release-listing client against the
// engine's remote registry.
//
// The registry speaks the GitHub releases API shape, but only the tag_name
// field is consumed. Tags are pulled out by forward-only marker scanning
// rather than a JSON parser: tolerance of partial or oversized payloads
// matters more than grammar fidelity here, and the scan pins down exactly
// which malformed inputs fail and how.
package registry

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"github.com/lume-engine/cli/internal/core/domain"
)

const (
	// tagMarker is the response field whose quoted value is a release tag.
	tagMarker = `"tag_name"`

	// maxLatestBody bounds the latest-release response read.
	maxLatestBody = 1 << 20
	// maxCatalogBody bounds the all-releases response read.
	maxCatalogBody = 4 << 20

	requestTimeout = 30 * time.Second
)

// Client implements ports.Registry over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a registry client for the given API base URL.
func NewClient(baseURL string) *Client {
	return newClientWithHTTP(baseURL, &http.Client{Timeout: requestTimeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// LatestTag fetches the latest-release endpoint and extracts its tag.
func (c *Client) LatestTag(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.baseURL+"/releases/latest", maxLatestBody)
	if err != nil {
		return "", err
	}

	tag, _, ok := scanTag(body, 0)
	if !ok {
		return "", zerr.With(domain.ErrInvalidResponse, "url", c.baseURL+"/releases/latest")
	}
	return tag, nil
}

// Tags fetches the all-releases endpoint and extracts every tag in document
// order.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	url := c.baseURL + "/releases"
	body, err := c.get(ctx, url, maxCatalogBody)
	if err != nil {
		return nil, err
	}

	// Single forward pass: each scan resumes where the previous match
	// ended, so consumed regions are never revisited.
	var tags []string
	pos := 0
	for {
		tag, next, ok := scanTag(body, pos)
		if !ok {
			break
		}
		tags = append(tags, tag)
		pos = next
	}

	if len(tags) == 0 {
		return nil, zerr.With(domain.ErrNoReleasesFound, "url", url)
	}
	return tags, nil
}

func (c *Client) get(ctx context.Context, url string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build registry request"), "url", url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to query registry"), "url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrInvalidResponse, "url", url)
		return nil, zerr.With(statusErr, "status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read registry response"), "url", url)
	}
	return body, nil
}

// scanTag extracts the quote-delimited value following the next tag marker
// at or after from. It returns the tag with any leading "v" stripped, the
// offset just past the closing quote, and whether a well-formed tag was
// found.
func scanTag(body []byte, from int) (tag string, next int, ok bool) {
	rel := bytes.Index(body[from:], []byte(tagMarker))
	if rel < 0 {
		return "", 0, false
	}
	cur := from + rel + len(tagMarker)

	open := bytes.IndexByte(body[cur:], '"')
	if open < 0 {
		return "", 0, false
	}
	start := cur + open + 1

	end := bytes.IndexByte(body[start:], '"')
	if end < 0 {
		return "", 0, false
	}

	tag = strings.TrimPrefix(string(body[start:start+end]), "v")
	return tag, start + end + 1, true
}
