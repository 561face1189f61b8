package tvdb

import (
	"fmt"

	"github.com/vmunix/tvdbgo/pkg/xmltree"
)

// Actor is one entry from a show's extended actor information. A flat
// attribute bag with a few typed conveniences.
type Actor struct {
	ID        int
	Name      string
	Role      string
	Image     string
	SortOrder int

	show   *Show
	mirror string
	attrs  attrBag
}

func newActor(el xmltree.Element, show *Show, bannerMirror string) *Actor {
	b := newAttrBag(el, show.client.ignoreCase)
	return &Actor{
		ID:        b.intval("id"),
		Name:      b.str("Name"),
		Role:      b.str("Role"),
		Image:     b.str("Image"),
		SortOrder: b.intval("SortOrder"),
		show:      show,
		mirror:    bannerMirror,
		attrs:     b,
	}
}

// Show returns the owning show.
func (a *Actor) Show() *Show {
	return a.show
}

// ImageURL returns the full URL of the actor's image, or "" when the
// server provided none.
func (a *Actor) ImageURL() string {
	if a.Image == "" {
		return ""
	}
	return a.mirror + "/banners/" + a.Image
}

// Attr returns the raw decoded value of any server-provided field.
func (a *Actor) Attr(name string) (xmltree.Value, error) {
	if v, ok := a.attrs.lookup(name); ok {
		return v, nil
	}
	return nil, &AttributeError{Entity: "Actor", Name: name}
}

func (a *Actor) String() string {
	return fmt.Sprintf("<Actor - %s>", a.Name)
}
