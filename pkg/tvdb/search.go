package tvdb

import (
	"strconv"

	"github.com/vmunix/tvdbgo/pkg/match"
)

// SearchResult is an ordered sequence of show summaries returned from
// a name search. Shows are kept in server order; the service states
// that a perfect match comes first. An empty result is valid.
type SearchResult struct {
	shows    []*Show
	name     string
	language string
}

// Name returns the search term the result was produced for.
func (r *SearchResult) Name() string {
	return r.name
}

// Language returns the language the search was issued in.
func (r *SearchResult) Language() string {
	return r.language
}

// Len returns the number of matching shows.
func (r *SearchResult) Len() int {
	return len(r.shows)
}

// Show returns the i-th match (0-based), or an *IndexError when i is
// out of range.
func (r *SearchResult) Show(i int) (*Show, error) {
	if i < 0 || i >= len(r.shows) {
		return nil, &IndexError{Kind: "search result", Index: strconv.Itoa(i)}
	}
	return r.shows[i], nil
}

// Shows returns all matches in server order. Each call returns a
// fresh slice.
func (r *SearchResult) Shows() []*Show {
	out := make([]*Show, len(r.shows))
	copy(out, r.shows)
	return out
}

// BestMatch fuzzy-ranks the matches against the original search term
// and returns the most similar show. ok is false when the result is
// empty or nothing scores above the plausibility floor.
func (r *SearchResult) BestMatch() (show *Show, ok bool) {
	names := make([]string, len(r.shows))
	for i, s := range r.shows {
		names[i] = s.SeriesName
	}
	best := match.Best(r.name, names)
	if best.Index < 0 {
		return nil, false
	}
	return r.shows[best.Index], true
}
