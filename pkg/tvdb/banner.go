package tvdb

import (
	"strconv"

	"github.com/vmunix/tvdbgo/pkg/xmltree"
)

// Banner is one entry from a show's extended banner information.
type Banner struct {
	ID          int
	BannerPath  string
	BannerType  string
	BannerType2 string
	Language    string
	Season      string // "" when the server omits it
	Rating      float64
	RatingCount int

	show   *Show
	mirror string
	attrs  attrBag
}

func newBanner(el xmltree.Element, show *Show, bannerMirror string) *Banner {
	b := newAttrBag(el, show.client.ignoreCase)
	banner := &Banner{
		ID:          b.intval("id"),
		BannerPath:  b.str("BannerPath"),
		BannerType:  b.str("BannerType"),
		BannerType2: b.str("BannerType2"),
		Language:    b.str("Language"),
		Rating:      b.floatval("Rating"),
		RatingCount: b.intval("RatingCount"),
		show:        show,
		mirror:      bannerMirror,
		attrs:       b,
	}
	// Season is not always present in the banner XML; it can also be
	// numeric, so render whatever arrived as a string.
	if v, ok := b.lookup("Season"); ok {
		switch s := v.(type) {
		case string:
			banner.Season = s
		case int:
			banner.Season = strconv.Itoa(s)
		}
	}
	return banner
}

// Show returns the owning show.
func (b *Banner) Show() *Show {
	return b.show
}

// URL returns the full URL of the banner image.
func (b *Banner) URL() string {
	if b.BannerPath == "" {
		return ""
	}
	return b.mirror + "/banners/" + b.BannerPath
}

// Attr returns the raw decoded value of any server-provided field.
// Season is special-cased to "" when absent, matching the service's
// inconsistent banner schema.
func (b *Banner) Attr(name string) (xmltree.Value, error) {
	if v, ok := b.attrs.lookup(name); ok {
		return v, nil
	}
	if b.attrs.key(name) == b.attrs.key("Season") {
		return "", nil
	}
	return nil, &AttributeError{Entity: "Banner", Name: name}
}

func (b *Banner) String() string {
	return "<Banner>"
}
