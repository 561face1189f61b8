// Package tvdb is a client library for the TVDB XML API. It maps the
// service's XML responses onto an in-memory object graph of shows,
// seasons, and episodes, with lazy loading of detail data and on-disk
// caching of HTTP responses.
package tvdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/vmunix/tvdbgo/pkg/httpcache"
	"github.com/vmunix/tvdbgo/pkg/xmltree"
)

const defaultBaseURL = "http://thetvdb.com"

// URL templates for the endpoints consumed from the service.
const (
	mirrorsPath = "%s/api/%s/mirrors.xml"
	searchPath  = "%s/api/GetSeries.php?seriesname=%s&language=%s"
	seriesPath  = "%s/api/%s/series/%d/all/%s.xml"
	episodePath = "%s/api/%s/episodes/%d/%s.xml"
	actorsPath  = "%s/api/%s/series/%d/actors.xml"
	bannersPath = "%s/api/%s/series/%d/banners.xml"
	airDatePath = "%s/api/GetEpisodeByAirDate.php?apikey=%s&seriesid=%d&airdate=%s&language=%s"
)

// Client is the entry point for the API. All operations are blocking
// and synchronous; the client holds only read-mostly state (mirror
// list, in-session search buffer) and is intended for single-threaded
// call patterns.
type Client struct {
	apiKey     string
	baseURL    string
	loader     Loader
	languages  *LanguageSet
	log        *slog.Logger
	httpClient *http.Client
	store      httpcache.Store
	cacheDir   string

	ignoreCase bool
	actors     bool
	banners    bool
	useCache   bool

	mirrors  *mirrorList
	searches map[searchKey][]*Show
}

type searchKey struct {
	name     string
	language string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client for the default loader.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLoader replaces the transport entirely.
func WithLoader(l Loader) Option {
	return func(c *Client) {
		c.loader = l
	}
}

// WithStore sets the response cache store for the default loader.
func WithStore(s httpcache.Store) Option {
	return func(c *Client) {
		c.store = s
	}
}

// WithCacheDir sets the directory for the default disk response
// cache. Defaults to a "tvdbgo" directory under the system temp dir.
func WithCacheDir(dir string) Option {
	return func(c *Client) {
		c.cacheDir = dir
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tvdb")
	}
}

// WithLanguages overrides the bundled language registry.
func WithLanguages(set *LanguageSet) Option {
	return func(c *Client) {
		c.languages = set
	}
}

// IgnoreCase makes all dynamic attribute lookups on entities built by
// this client case insensitive.
func IgnoreCase() Option {
	return func(c *Client) {
		c.ignoreCase = true
	}
}

// WithActors eagerly loads extended actor information whenever a
// show's full data set is fetched.
func WithActors() Option {
	return func(c *Client) {
		c.actors = true
	}
}

// WithBanners eagerly loads extended banner information whenever a
// show's full data set is fetched.
func WithBanners() Option {
	return func(c *Client) {
		c.banners = true
	}
}

// WithoutCache disables the response cache for all calls.
func WithoutCache() Option {
	return func(c *Client) {
		c.useCache = false
	}
}

// New creates a client. Unless a loader or store is supplied, HTTP
// responses are cached in a disk store under the cache directory.
func New(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		useCache: true,
		searches: make(map[searchKey][]*Show),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.languages == nil {
		c.languages = DefaultLanguages()
	}
	if c.loader == nil {
		store := c.store
		if store == nil && c.useCache {
			dir := c.cacheDir
			if dir == "" {
				dir = filepath.Join(os.TempDir(), "tvdbgo")
			}
			var err error
			store, err = httpcache.NewDisk(dir)
			if err != nil {
				return nil, err
			}
		}
		c.loader = NewHTTPLoader(c.httpClient, store, c.log)
	}
	return c, nil
}

// Languages returns the client's language registry.
func (c *Client) Languages() *LanguageSet {
	return c.languages
}

// CallOption adjusts a single façade call.
type CallOption func(*callOptions)

type callOptions struct {
	skipCache bool
}

// SkipCache forces the call to bypass the response cache and reload
// from the server. The fresh response still replaces the cached one.
func SkipCache() CallOption {
	return func(o *callOptions) {
		o.skipCache = true
	}
}

func (c *Client) callCache(opts []CallOption) bool {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return c.useCache && !o.skipCache
}

// Search queries the service for shows matching name in the given
// language (a registered abbreviation, or "all"). The returned shows
// are summaries; their full data loads on first deep access. An empty
// result is valid. Results are buffered per (name, language) for the
// client's lifetime, so repeating a search is cheap.
func (c *Client) Search(ctx context.Context, name, language string, opts ...CallOption) (*SearchResult, error) {
	start := time.Now()

	if err := c.validateLanguage(language); err != nil {
		return nil, err
	}
	useCache := c.callCache(opts)

	key := searchKey{name: name, language: language}
	if useCache {
		if shows, ok := c.searches[key]; ok {
			return &SearchResult{shows: shows, name: name, language: language}, nil
		}
	}

	u := fmt.Sprintf(searchPath, c.baseURL, url.QueryEscape(name), language)
	doc, err := c.loadDoc(ctx, u, useCache)
	if err != nil {
		return nil, err
	}

	var shows []*Show
	for _, el := range doc.Elements("Series") {
		shows = append(shows, newShow(el, c, language))
	}
	c.searches[key] = shows

	if c.log != nil {
		c.log.Debug("search completed", "name", name, "language", language,
			"results", len(shows), "duration_ms", time.Since(start).Milliseconds())
	}

	return &SearchResult{shows: shows, name: name, language: language}, nil
}

// GetSeries fetches a show directly by id, bypassing search. The
// returned show is fully loaded, including its season/episode tree.
func (c *Client) GetSeries(ctx context.Context, seriesID int, language string, opts ...CallOption) (*Show, error) {
	start := time.Now()

	if err := c.validateLanguage(language); err != nil {
		return nil, err
	}

	doc, err := c.seriesDoc(ctx, seriesID, language, c.callCache(opts))
	if err != nil {
		return nil, err
	}

	series := doc.Elements("Series")
	if len(series) == 0 {
		return nil, &NotFoundError{Kind: "series", ID: seriesID}
	}

	show := newShow(series[0], c, language)
	if err := show.populate(doc); err != nil {
		return nil, err
	}
	show.state = StateFull

	if c.actors {
		if err := show.LoadActors(ctx); err != nil {
			return nil, err
		}
	}
	if c.banners {
		if err := show.LoadBanners(ctx); err != nil {
			return nil, err
		}
	}

	if c.log != nil {
		c.log.Debug("fetched series", "id", seriesID, "name", show.SeriesName,
			"duration_ms", time.Since(start).Milliseconds())
	}

	return show, nil
}

// GetEpisode fetches a single episode by its server id without
// materializing the whole show. The episode's Season back-reference
// is nil.
func (c *Client) GetEpisode(ctx context.Context, episodeID int, language string, opts ...CallOption) (*Episode, error) {
	if err := c.validateLanguage(language); err != nil {
		return nil, err
	}

	mirror, err := c.mirrorURL(ctx, MaskXML)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf(episodePath, mirror, c.apiKey, episodeID, language)
	body, err := c.loader.Load(ctx, u, c.callCache(opts))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &NotFoundError{Kind: "episode", ID: episodeID}
		}
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &NotFoundError{Kind: "episode", ID: episodeID}
	}

	doc, err := xmltree.Parse(body)
	if err != nil {
		return nil, err
	}

	episodes := doc.Elements("Episode")
	if len(episodes) == 0 {
		return nil, &NotFoundError{Kind: "episode", ID: episodeID}
	}
	return newEpisode(episodes[0], nil, c.ignoreCase), nil
}

// GetEpisodeByAirDate fetches the episode of a series that first
// aired on the given date. No match is an *IndexError, the same
// family callers handle for season/episode misses.
func (c *Client) GetEpisodeByAirDate(ctx context.Context, seriesID int, language string, airDate time.Time, opts ...CallOption) (*Episode, error) {
	if err := c.validateLanguage(language); err != nil {
		return nil, err
	}

	mirror, err := c.mirrorURL(ctx, MaskXML)
	if err != nil {
		return nil, err
	}

	date := airDate.Format("2006-01-02")
	u := fmt.Sprintf(airDatePath, mirror, c.apiKey, seriesID, date, language)
	doc, err := c.loadDoc(ctx, u, c.callCache(opts))
	if err != nil {
		return nil, err
	}

	episodes := doc.Elements("Episode")
	if len(episodes) == 0 {
		return nil, &IndexError{Kind: "air date", Index: date}
	}
	return newEpisode(episodes[0], nil, c.ignoreCase), nil
}

func (c *Client) validateLanguage(language string) error {
	if language == "all" || c.languages.Contains(language) {
		return nil
	}
	return &ValueError{Msg: fmt.Sprintf("%s is not a valid language", language)}
}

// mirrorURL returns a mirror base URL matching mask, fetching and
// memoizing the mirror listing on first use.
func (c *Client) mirrorURL(ctx context.Context, mask TypeMask) (string, error) {
	if c.mirrors == nil {
		u := fmt.Sprintf(mirrorsPath, c.baseURL, c.apiKey)
		doc, err := c.loadDoc(ctx, u, c.useCache)
		if err != nil {
			return "", err
		}
		c.mirrors = newMirrorList(doc)
	}
	m, err := c.mirrors.pick(mask)
	if err != nil {
		return "", err
	}
	return m.URL, nil
}

// loadDoc fetches a URL and parses the body as XML.
func (c *Client) loadDoc(ctx context.Context, url string, useCache bool) (*xmltree.Document, error) {
	body, err := c.loader.Load(ctx, url, useCache)
	if err != nil {
		return nil, err
	}
	return xmltree.Parse(body)
}

// seriesDoc fetches and parses the full series document for an id.
func (c *Client) seriesDoc(ctx context.Context, seriesID int, language string, useCache bool) (*xmltree.Document, error) {
	mirror, err := c.mirrorURL(ctx, MaskXML)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf(seriesPath, mirror, c.apiKey, seriesID, language)
	body, err := c.loader.Load(ctx, u, useCache)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &NotFoundError{Kind: "series", ID: seriesID}
		}
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &NotFoundError{Kind: "series", ID: seriesID}
	}
	return xmltree.Parse(body)
}

// actorsDoc fetches and parses the extended actor document.
func (c *Client) actorsDoc(ctx context.Context, seriesID int, useCache bool) (*xmltree.Document, error) {
	mirror, err := c.mirrorURL(ctx, MaskXML)
	if err != nil {
		return nil, err
	}
	return c.loadDoc(ctx, fmt.Sprintf(actorsPath, mirror, c.apiKey, seriesID), useCache)
}

// bannersDoc fetches and parses the extended banner document.
func (c *Client) bannersDoc(ctx context.Context, seriesID int, useCache bool) (*xmltree.Document, error) {
	mirror, err := c.mirrorURL(ctx, MaskXML)
	if err != nil {
		return nil, err
	}
	return c.loadDoc(ctx, fmt.Sprintf(bannersPath, mirror, c.apiKey, seriesID), useCache)
}
