// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wiktitrage/internal/httputil"
	"github.com/pdiddy/wiktitrage/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

const sampleQueryJSON = `{
  "batchcomplete": "",
  "query": {
    "pages": {
      "3025": {
        "pageid": 3025,
        "ns": 0,
        "title": "chat",
        "extract": "== Français ==\n\n\n=== Étymologie ===\nDu bas latin cattus.\n\n=== Nom commun ===\nchat masculin"
      }
    }
  }
}`

const missingQueryJSON = `{
  "batchcomplete": "",
  "query": {
    "pages": {
      "-1": {"ns": 0, "title": "qwxz", "missing": ""}
    }
  }
}`

func testServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(ts *httptest.Server) *Client {
	cfg := types.SourceConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "wiktitrage/test", MaxRetries: 1},
		Endpoint:   ts.URL + "/w/api.php",
	}
	return NewClient(cfg, ts.Client(), nil)
}

func TestFetch(t *testing.T) {
	var got url.Values
	var ua string
	ts := testServer(t, http.StatusOK, sampleQueryJSON, func(r *http.Request) {
		got = r.URL.Query()
		ua = r.Header.Get("User-Agent")
		assert.Equal(t, "/w/api.php", r.URL.Path)
	})

	article, err := newTestClient(ts).Fetch(context.Background(), "  chat\n")
	require.NoError(t, err)

	assert.Equal(t, "chat", got.Get("titles"))
	assert.Equal(t, "json", got.Get("format"))
	assert.Equal(t, "query", got.Get("action"))
	assert.Equal(t, "extracts", got.Get("prop"))
	assert.Equal(t, "1", got.Get("exlimit"))
	assert.True(t, got.Has("explaintext"))
	assert.Equal(t, "wiktitrage/test", ua)

	require.Contains(t, article.Pages, "3025")
	page := article.Pages["3025"]
	assert.Equal(t, uint64(3025), page.ID)
	assert.Equal(t, "chat", page.Title)
	require.NotNil(t, page.Text)
	assert.Contains(t, *page.Text, "Du bas latin cattus.")
}

func TestFetchMissingPage(t *testing.T) {
	ts := testServer(t, http.StatusOK, missingQueryJSON, nil)

	article, err := newTestClient(ts).Fetch(context.Background(), "qwxz")
	require.NoError(t, err)
	require.Contains(t, article.Pages, "-1")
	assert.False(t, article.Pages["-1"].HasText())
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		term   string
		errMsg string
	}{
		{"http error", http.StatusForbidden, "", "chat", "HTTP 403"},
		{"server error after retries", http.StatusInternalServerError, "", "chat", "HTTP 500"},
		{"invalid json", http.StatusOK, "<html>", "chat", "parsing wiktionary response"},
		{"no query object", http.StatusOK, `{"batchcomplete": ""}`, "chat", "missing query object"},
		{"api error", http.StatusOK, `{"error": {"code": "badvalue", "info": "bad titles"}}`, "chat", "badvalue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testServer(t, tt.status, tt.body, nil)
			_, err := newTestClient(ts).Fetch(context.Background(), tt.term)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestFetchEmptyTerm(t *testing.T) {
	ts := testServer(t, http.StatusOK, sampleQueryJSON, func(*http.Request) {
		t.Error("no request expected for an empty term")
	})
	for _, term := range []string{"", "   ", "\n\t"} {
		_, err := newTestClient(ts).Fetch(context.Background(), term)
		assert.ErrorIs(t, err, ErrEmptyTerm)
	}
}

func TestFetchTransportError(t *testing.T) {
	ts := testServer(t, http.StatusOK, sampleQueryJSON, nil)
	client := newTestClient(ts)
	ts.Close()

	_, err := client.Fetch(context.Background(), "chat")
	assert.ErrorContains(t, err, "wiktionary request")
}

func TestNormalizeTerm(t *testing.T) {
	decomposed := "e\u0301tymologie"
	assert.Equal(t, "\u00e9tymologie", NormalizeTerm(decomposed))
	assert.Equal(t, "chat", NormalizeTerm("  chat \n"))
}

func TestEndpointFromLanguage(t *testing.T) {
	c := NewClient(types.SourceConfig{Language: "en"}, nil, nil)
	assert.Contains(t, c.QueryURL("cat"), "https://en.wiktionary.org/w/api.php?")

	c = NewClient(types.SourceConfig{}, nil, nil)
	assert.Contains(t, c.QueryURL("chat"), Endpoint("fr"))
}
