package tvdb

import (
	"fmt"
	"time"

	"github.com/vmunix/tvdbgo/pkg/xmltree"
)

// Episode holds all information about an individual episode. It is
// immutable once constructed from decoded data. The known fields are
// typed; everything else the server sent is reachable through Attr.
type Episode struct {
	ID             int
	SeasonNumber   int
	EpisodeNumber  int
	EpisodeName    string
	FirstAired     time.Time
	Overview       string
	Director       []string
	Writer         []string
	GuestStars     []string
	ProductionCode string
	Rating         float64
	AbsoluteNumber int
	Filename       string
	IMDBID         string
	Language       string

	season *Season
	attrs  attrBag
}

func newEpisode(el xmltree.Element, season *Season, ignoreCase bool) *Episode {
	b := newAttrBag(el, ignoreCase)
	return &Episode{
		ID:             b.intval("id"),
		SeasonNumber:   b.intval("SeasonNumber"),
		EpisodeNumber:  b.intval("EpisodeNumber"),
		EpisodeName:    b.str("EpisodeName"),
		FirstAired:     b.date("FirstAired"),
		Overview:       b.str("Overview"),
		Director:       b.list("Director"),
		Writer:         b.list("Writer"),
		GuestStars:     b.list("GuestStars"),
		ProductionCode: b.str("ProductionCode"),
		Rating:         b.floatval("Rating"),
		AbsoluteNumber: b.intval("absolute_number"),
		Filename:       b.str("filename"),
		IMDBID:         b.str("IMDB_ID"),
		Language:       b.str("Language"),
		season:         season,
		attrs:          b,
	}
}

// Season returns the owning season. It is nil for episodes fetched
// standalone via Client.GetEpisode.
func (e *Episode) Season() *Season {
	return e.season
}

// Attr returns the raw decoded value of any server-provided field.
// The lookup is case insensitive when the owning client was built
// with IgnoreCase.
func (e *Episode) Attr(name string) (xmltree.Value, error) {
	if v, ok := e.attrs.lookup(name); ok {
		return v, nil
	}
	return nil, &AttributeError{Entity: "Episode", Name: name}
}

// AttrNames returns the names of all server-provided fields, sorted.
func (e *Episode) AttrNames() []string {
	return e.attrs.names()
}

func (e *Episode) String() string {
	return fmt.Sprintf("<Episode S%03dE%03d>", e.SeasonNumber, e.EpisodeNumber)
}
