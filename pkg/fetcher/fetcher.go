// Package fetcher retrieves a web page and reduces it to the text and
// markup the analyzer consumes.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/dtnitsch/llm-citability/models"
)

// ErrFetch is matched by every error Fetch returns.
var ErrFetch = errors.New("unable to retrieve content")

// Error kinds recorded in the fetch log.
const (
	KindRequest  = "fetch_error"
	KindStatus   = "http_status"
	KindBodySize = "body_too_large"
	KindRead     = "read_error"
	KindInvalid  = "invalid_url"
	KindExtract  = "extract_error"
)

// FetchError describes a failed retrieval.
type FetchError struct {
	URL        string
	Kind       string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s from %s: %v", ErrFetch, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFetch) hold for any FetchError.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// Response is a raw HTTP body with the metadata worth keeping.
type Response struct {
	Body        []byte
	StatusCode  int
	ContentType string
	FinalURL    string
}

// Fetcher retrieves pages over HTTP with a fixed timeout, user agent and
// body size limit. It is safe for concurrent use.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewFetcher builds a fetcher from cfg. Zero fields take the defaults; a nil
// logger discards debug output.
func NewFetcher(cfg models.FetchConfig, logger *slog.Logger) *Fetcher {
	defaults := models.DefaultFetchConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Fetcher{
		client:       &http.Client{Timeout: cfg.Timeout},
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}

// Fetch retrieves rawURL and extracts its main content.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (models.Content, error) {
	resp, err := f.Get(ctx, rawURL)
	if err != nil {
		return models.Content{}, err
	}

	if isPlainText(resp.ContentType) {
		f.logger.Debug("Plain text response, skipping HTML extraction", "url", rawURL)
		return models.Content{URL: rawURL, Title: rawURL, Text: string(resp.Body)}, nil
	}

	content, err := Extract(rawURL, resp.Body)
	if err != nil {
		return models.Content{}, &FetchError{URL: rawURL, Kind: KindExtract, StatusCode: resp.StatusCode, Err: err}
	}
	f.logger.Debug("Extracted content", "url", rawURL, "title", content.Title, "text_bytes", len(content.Text))
	return content, nil
}

// Get performs the HTTP request. Anything but 200 OK is an error.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Kind: KindInvalid, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	f.logger.Debug("Fetching URL", "url", rawURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Kind: KindRequest, Err: fmt.Errorf("failed to make HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			URL:        rawURL,
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("status code: %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, &FetchError{URL: rawURL, Kind: KindRead, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, &FetchError{
			URL:        rawURL,
			Kind:       KindBodySize,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response body exceeds %d bytes", f.maxBodyBytes),
		}
	}

	return &Response{
		Body:        body,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
	}, nil
}

func isPlainText(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, "text/plain")
}
