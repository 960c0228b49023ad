package registry

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lume-engine/cli/internal/core/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestLatestTag(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name": "v0.33.0", "name": "0.33.0"}`))
	})

	tag, err := client.LatestTag(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.33.0", tag)
}

func TestLatestTag_NoPrefix(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "0.12.0"}`))
	})

	tag, err := client.LatestTag(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.12.0", tag)
}

func TestLatestTag_MissingMarker(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})

	_, err := client.LatestTag(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidResponse.Error())
}

func TestLatestTag_BadStatus(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.LatestTag(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidResponse.Error())
}

func TestLatestTag_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL)
	_, err := client.LatestTag(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query registry")
}

func TestTags_OrderPreserved(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/releases", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"tag_name": "v0.33.0", "draft": false},
			{"tag_name": "v0.32.0", "draft": false},
			{"tag_name": "0.31.0", "draft": false}
		]`))
	})

	tags, err := client.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0.33.0", "0.32.0", "0.31.0"}, tags)
}

func TestTags_Empty(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Tags(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrNoReleasesFound.Error())
}

func TestTags_LargeCatalog(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 200; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"tag_name": "v0.%d.0"}`, i)
	}
	b.WriteString("]")

	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(b.String()))
	})

	tags, err := client.Tags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 200)
	assert.Equal(t, "0.0.0", tags[0])
	assert.Equal(t, "0.199.0", tags[199])
}

func TestScanTag(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantTag string
		wantOK  bool
	}{
		{
			name:    "well formed",
			body:    `{"tag_name": "v1.2.3"}`,
			wantTag: "1.2.3",
			wantOK:  true,
		},
		{
			name:   "missing marker",
			body:   `{"name": "v1.2.3"}`,
			wantOK: false,
		},
		{
			name:   "unterminated quote",
			body:   `{"tag_name": "v1.2.3`,
			wantOK: false,
		},
		{
			name:   "marker without value",
			body:   `{"tag_name"`,
			wantOK: false,
		},
		{
			name:    "nested braces before value",
			body:    `{"extra": {"x": 1}, "tag_name": "v2.0.0"}`,
			wantTag: "2.0.0",
			wantOK:  true,
		},
		{
			name:   "empty body",
			body:   ``,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, _, ok := scanTag([]byte(tt.body), 0)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTag, tag)
			}
		})
	}
}

func TestScanTag_ForwardOnly(t *testing.T) {
	body := []byte(`{"tag_name": "v2.0.0"}{"tag_name": "v1.0.0"}`)

	first, next, ok := scanTag(body, 0)
	require.True(t, ok)
	assert.Equal(t, "2.0.0", first)

	second, _, ok := scanTag(body, next)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", second)

	_, _, ok = scanTag(body, len(body))
	assert.False(t, ok)
}
