package tvdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vmunix/tvdbgo/pkg/httpcache"
)

//go:generate mockgen -destination mocks/loader.go -package mocks . Loader

// Loader fetches raw response bodies for the client. Implementations
// decide how to honor the useCache hint; the client passes false when
// the caller requested a fresh fetch.
type Loader interface {
	// Load fetches url and returns the response body. A transport
	// failure returns a *ConnectionError; a 404 returns ErrNotFound.
	Load(ctx context.Context, url string, useCache bool) ([]byte, error)
}

// HTTPLoader is the default Loader: plain GET requests with an
// optional response store consulted before the network.
type HTTPLoader struct {
	httpClient *http.Client
	store      httpcache.Store
	log        *slog.Logger
}

// NewHTTPLoader creates a loader. A nil httpClient gets a 30 second
// timeout default; a nil store disables caching entirely.
func NewHTTPLoader(httpClient *http.Client, store httpcache.Store, log *slog.Logger) *HTTPLoader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	var loaderLog *slog.Logger
	if log != nil {
		loaderLog = log.With("component", "loader")
	}
	return &HTTPLoader{httpClient: httpClient, store: store, log: loaderLog}
}

// Load fetches url, serving from the store when useCache is set and an
// entry exists. Fresh responses are always written back to the store
// so a later cached call can reuse them.
func (l *HTTPLoader) Load(ctx context.Context, url string, useCache bool) ([]byte, error) {
	if useCache && l.store != nil {
		if body, ok := l.store.Get(ctx, url); ok {
			if l.log != nil {
				l.log.Debug("cache hit", "url", url)
			}
			return body, nil
		}
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, &ConnectionError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{URL: url, Err: err}
	}

	if l.store != nil {
		if err := l.store.Set(ctx, url, body); err != nil && l.log != nil {
			l.log.Warn("failed to cache response", "url", url, "error", err)
		}
	}

	if l.log != nil {
		l.log.Debug("fetched", "url", url, "bytes", len(body), "duration_ms", time.Since(start).Milliseconds())
	}

	return body, nil
}
