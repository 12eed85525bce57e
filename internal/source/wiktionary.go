// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source fetches Wiktionary articles through the MediaWiki
// extracts API.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/wiktitrage/internal/httputil"
	"github.com/pdiddy/wiktitrage/internal/logging"
	"github.com/pdiddy/wiktitrage/pkg/types"
)

// ErrEmptyTerm is returned when the search term is empty after trimming.
var ErrEmptyTerm = errors.New("search term is empty")

const (
	defaultLanguage = "fr"
	defaultTimeout  = 10 * time.Second
)

// Endpoint returns the api.php URL of the Wiktionary edition for lang.
func Endpoint(lang string) string {
	return "https://" + lang + ".wiktionary.org/w/api.php"
}

// Client queries one Wiktionary edition.
type Client struct {
	http     *http.Client
	endpoint string
	cfg      types.HTTPConfig
	log      *slog.Logger
}

// NewClient returns a Client for cfg. A nil httpClient gets one with
// cfg.Timeout; a nil logger discards output.
func NewClient(cfg types.SourceConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		lang := cfg.Language
		if lang == "" {
			lang = defaultLanguage
		}
		endpoint = Endpoint(lang)
	}
	return &Client{
		http:     httpClient,
		endpoint: endpoint,
		cfg:      cfg.HTTPConfig,
		log:      logger.With("component", "source"),
	}
}

// NormalizeTerm trims term and converts it to NFC so that text copied from
// decomposed sources matches page titles.
func NormalizeTerm(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}

// QueryURL returns the request URL for term.
func (c *Client) QueryURL(term string) string {
	params := url.Values{
		"format":      {"json"},
		"action":      {"query"},
		"prop":        {"extracts"},
		"explaintext": {"1"},
		"exlimit":     {"1"},
		"titles":      {term},
	}
	return c.endpoint + "?" + params.Encode()
}

// Fetch retrieves the article for term. It fails with ErrEmptyTerm, a
// transport error, or a decode error; a term without a page is not an
// error and yields pages without text.
func (c *Client) Fetch(ctx context.Context, term string) (types.Article, error) {
	term = NormalizeTerm(term)
	if term == "" {
		return types.Article{}, ErrEmptyTerm
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.QueryURL(term), nil)
	if err != nil {
		return types.Article{}, fmt.Errorf("creating request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "wiktionary request", slog.String("term", term), slog.String("endpoint", c.endpoint))

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries, c.log)
	if err != nil {
		return types.Article{}, fmt.Errorf("wiktionary request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Article{}, fmt.Errorf("wiktionary returned HTTP %d", resp.StatusCode)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return types.Article{}, fmt.Errorf("parsing wiktionary response: %w", err)
	}
	if qr.Error != nil {
		return types.Article{}, fmt.Errorf("wiktionary API error %s: %s", qr.Error.Code, qr.Error.Info)
	}
	if qr.Query == nil {
		return types.Article{}, fmt.Errorf("parsing wiktionary response: missing query object")
	}

	c.log.DebugContext(ctx, "wiktionary response", slog.String("term", term), slog.Int("pages", len(qr.Query.Pages)))
	return types.Article{Pages: qr.Query.Pages}, nil
}

// MediaWiki API JSON structures.
type queryResponse struct {
	Query *types.Article `json:"query"`
	Error *apiError      `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}
