package tvdb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vmunix/tvdbgo/pkg/xmltree"
)

// State tracks how much of a Show's remote data has been loaded.
type State int

const (
	// StateSummary means the show was built from a search hit and
	// carries only the basic field set.
	StateSummary State = iota

	// StateLoading means the full-detail fetch is in flight.
	StateLoading

	// StateFull means seasons and episodes are populated.
	StateFull
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateFull:
		return "full"
	default:
		return "summary"
	}
}

// Show holds the attributes of a single show and owns its seasons.
// A show built from a search result starts in StateSummary; any
// operation that needs season data triggers the full-detail fetch
// transparently. Known fields are typed; everything else the server
// sent is reachable through Attr.
//
// A Show is not safe for concurrent use; callers needing concurrency
// must serialize access to its load transitions.
type Show struct {
	ID            int
	SeriesName    string
	FirstAired    time.Time
	Network       string
	Genre         []string
	ActorNames    []string
	Overview      string
	Status        string
	Runtime       int
	Rating        float64
	ContentRating string
	AirsDayOfWeek string
	AirsTime      string
	IMDBID        string
	Zap2itID      string
	BannerPath    string

	client   *Client
	language string
	state    State
	attrs    attrBag
	seasons  map[int]*Season

	actorsLoaded  bool
	actors        []*Actor
	bannersLoaded bool
	banners       []*Banner
}

func newShow(el xmltree.Element, client *Client, language string) *Show {
	s := &Show{
		client:   client,
		language: language,
		attrs:    newAttrBag(el, client.ignoreCase),
	}
	s.refresh()
	return s
}

// refresh re-resolves the typed fields from the attribute bag.
func (s *Show) refresh() {
	b := s.attrs
	s.ID = b.intval("id")
	if s.ID == 0 {
		// Search summaries carry the id under seriesid as well.
		s.ID = b.intval("seriesid")
	}
	s.SeriesName = b.str("SeriesName")
	s.FirstAired = b.date("FirstAired")
	s.Network = b.str("Network")
	s.Genre = b.list("Genre")
	s.ActorNames = b.list("Actors")
	s.Overview = b.str("Overview")
	s.Status = b.str("Status")
	s.Runtime = b.intval("Runtime")
	s.Rating = b.floatval("Rating")
	s.ContentRating = b.str("ContentRating")
	s.AirsDayOfWeek = b.str("Airs_DayOfWeek")
	s.AirsTime = b.str("Airs_Time")
	s.IMDBID = b.str("IMDB_ID")
	s.Zap2itID = b.str("zap2it_id")
	s.BannerPath = b.str("banner")
}

// State returns the show's load state.
func (s *Show) State() State {
	return s.state
}

// Language returns the language the show was requested in.
func (s *Show) Language() string {
	return s.language
}

// Attr returns the raw decoded value of any server-provided field.
// The lookup is case insensitive when the owning client was built
// with IgnoreCase.
func (s *Show) Attr(name string) (xmltree.Value, error) {
	if v, ok := s.attrs.lookup(name); ok {
		return v, nil
	}
	return nil, &AttributeError{Entity: "Show", Name: name}
}

// AttrNames returns the names of all server-provided fields, sorted.
func (s *Show) AttrNames() []string {
	return s.attrs.names()
}

// Update forces a fresh full-detail fetch, replacing the season tree.
func (s *Show) Update(ctx context.Context) error {
	return s.load(ctx)
}

// ensureFull triggers the full-detail load once; it is a no-op after
// the show reaches StateFull.
func (s *Show) ensureFull(ctx context.Context) error {
	if s.state == StateFull {
		return nil
	}
	return s.load(ctx)
}

// load fetches the full series document and rebuilds the season tree.
// On any failure the show keeps its prior state and data, so the
// transition is retryable.
func (s *Show) load(ctx context.Context) error {
	prev := s.state
	s.state = StateLoading

	doc, err := s.client.seriesDoc(ctx, s.ID, s.language, s.client.useCache)
	if err != nil {
		s.state = prev
		return err
	}
	if err := s.populate(doc); err != nil {
		s.state = prev
		return err
	}
	s.state = StateFull

	if s.client.actors && !s.actorsLoaded {
		if err := s.LoadActors(ctx); err != nil {
			return err
		}
	}
	if s.client.banners && !s.bannersLoaded {
		if err := s.LoadBanners(ctx); err != nil {
			return err
		}
	}
	return nil
}

// populate decodes the full series document into the show. The season
// tree and merged attributes are built completely before anything is
// committed, so a decode failure leaves no partial state behind.
func (s *Show) populate(doc *xmltree.Document) error {
	series := doc.Elements("Series")
	if len(series) != 1 {
		return &BadDataError{Err: fmt.Errorf("expected one Series element, found %d", len(series))}
	}

	merged := s.attrs.merged(series[0])

	seasons := make(map[int]*Season)
	for _, el := range doc.Elements("Episode") {
		num, _ := el["SeasonNumber"].(int)
		season, ok := seasons[num]
		if !ok {
			season = newSeason(num, s)
			seasons[num] = season
		}
		season.add(newEpisode(el, season, s.client.ignoreCase))
	}

	s.attrs = merged
	s.refresh()
	s.seasons = seasons
	return nil
}

// NumSeasons returns the count of distinct season numbers, loading
// the full data set on first call.
func (s *Show) NumSeasons(ctx context.Context) (int, error) {
	if err := s.ensureFull(ctx); err != nil {
		return 0, err
	}
	return len(s.seasons), nil
}

// Season returns the season with the given number (0 = specials), or
// an *IndexError when that number is absent.
func (s *Show) Season(ctx context.Context, number int) (*Season, error) {
	if err := s.ensureFull(ctx); err != nil {
		return nil, err
	}
	season, ok := s.seasons[number]
	if !ok {
		return nil, indexErr("season", number)
	}
	return season, nil
}

// SeasonRange returns the seasons whose number falls in [start, stop),
// ascending. The season key space may be sparse.
func (s *Show) SeasonRange(ctx context.Context, start, stop int) ([]*Season, error) {
	if err := s.ensureFull(ctx); err != nil {
		return nil, err
	}
	var out []*Season
	for _, n := range s.numbers() {
		if n >= start && n < stop {
			out = append(out, s.seasons[n])
		}
	}
	return out, nil
}

// Seasons returns all seasons ordered by ascending season number.
// Each call returns a fresh slice.
func (s *Show) Seasons(ctx context.Context) ([]*Season, error) {
	if err := s.ensureFull(ctx); err != nil {
		return nil, err
	}
	out := make([]*Season, 0, len(s.seasons))
	for _, n := range s.numbers() {
		out = append(out, s.seasons[n])
	}
	return out, nil
}

// SeasonsDesc returns all seasons ordered by descending season number.
func (s *Show) SeasonsDesc(ctx context.Context) ([]*Season, error) {
	asc, err := s.Seasons(ctx)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(asc)-1; i < j; i, j = i+1, j-1 {
		asc[i], asc[j] = asc[j], asc[i]
	}
	return asc, nil
}

// Filter returns every episode across all seasons satisfying pred, in
// season then episode ascending order. Triggers the full-detail load
// if needed.
func (s *Show) Filter(ctx context.Context, pred func(*Episode) bool) ([]*Episode, error) {
	seasons, err := s.Seasons(ctx)
	if err != nil {
		return nil, err
	}
	var out []*Episode
	for _, season := range seasons {
		out = append(out, season.Filter(pred)...)
	}
	return out, nil
}

// Find returns the first episode (season then episode ascending)
// satisfying pred, or ErrNoMatch.
func (s *Show) Find(ctx context.Context, pred func(*Episode) bool) (*Episode, error) {
	seasons, err := s.Seasons(ctx)
	if err != nil {
		return nil, err
	}
	for _, season := range seasons {
		if e, err := season.Find(pred); err == nil {
			return e, nil
		}
	}
	return nil, ErrNoMatch
}

// LoadActors fetches the extended actor information and replaces the
// show's actor objects. Independent of the season/episode load.
func (s *Show) LoadActors(ctx context.Context) error {
	doc, err := s.client.actorsDoc(ctx, s.ID, s.client.useCache)
	if err != nil {
		return err
	}
	bannerMirror, err := s.client.mirrorURL(ctx, MaskBanner)
	if err != nil {
		return err
	}

	var actors []*Actor
	for _, el := range doc.Elements("Actor") {
		actors = append(actors, newActor(el, s, bannerMirror))
	}
	s.actors = actors
	s.actorsLoaded = true
	return nil
}

// Actors returns the actor objects loaded by LoadActors, in server
// order. Empty until loaded.
func (s *Show) Actors() []*Actor {
	return s.actors
}

// ActorsLoaded reports whether LoadActors has completed.
func (s *Show) ActorsLoaded() bool {
	return s.actorsLoaded
}

// LoadBanners fetches the extended banner information and replaces
// the show's banner objects. Independent of the season/episode load.
func (s *Show) LoadBanners(ctx context.Context) error {
	doc, err := s.client.bannersDoc(ctx, s.ID, s.client.useCache)
	if err != nil {
		return err
	}
	bannerMirror, err := s.client.mirrorURL(ctx, MaskBanner)
	if err != nil {
		return err
	}

	var banners []*Banner
	for _, el := range doc.Elements("Banner") {
		banners = append(banners, newBanner(el, s, bannerMirror))
	}
	s.banners = banners
	s.bannersLoaded = true
	return nil
}

// Banners returns the banner objects loaded by LoadBanners, in server
// order. Empty until loaded.
func (s *Show) Banners() []*Banner {
	return s.banners
}

// BannersLoaded reports whether LoadBanners has completed.
func (s *Show) BannersLoaded() bool {
	return s.bannersLoaded
}

func (s *Show) numbers() []int {
	nums := make([]int, 0, len(s.seasons))
	for n := range s.seasons {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

func (s *Show) String() string {
	if s.SeriesName == "" {
		return "<Show>"
	}
	return fmt.Sprintf("<Show - %s>", s.SeriesName)
}
