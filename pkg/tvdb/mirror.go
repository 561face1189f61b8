package tvdb

import (
	"fmt"
	"math/rand"

	"github.com/vmunix/tvdbgo/pkg/xmltree"
)

// TypeMask flags describe what content a mirror serves.
type TypeMask int

const (
	MaskXML    TypeMask = 1 << iota // XML API documents
	MaskBanner                      // banner images
	MaskZip                         // zipped API documents
)

// Mirror is one server from the mirror listing.
type Mirror struct {
	ID   int
	URL  string
	Mask TypeMask
}

func (m Mirror) String() string {
	return fmt.Sprintf("<Mirror (%s:%d)>", m.URL, m.Mask)
}

// mirrorList manages the mirrors announced by the service. The
// listing has been a single entry for years, but the type mask
// contract is kept.
type mirrorList struct {
	mirrors []Mirror
}

func newMirrorList(doc *xmltree.Document) *mirrorList {
	var list mirrorList
	for _, el := range doc.Elements("Mirror") {
		b := newAttrBag(el, false)
		list.mirrors = append(list.mirrors, Mirror{
			ID:   b.intval("id"),
			URL:  b.str("mirrorpath"),
			Mask: TypeMask(b.intval("typemask")),
		})
	}
	return &list
}

// pick returns a random mirror matching mask.
func (l *mirrorList) pick(mask TypeMask) (Mirror, error) {
	var matching []Mirror
	for _, m := range l.mirrors {
		if m.Mask&mask == mask {
			matching = append(matching, m)
		}
	}
	if len(matching) == 0 {
		return Mirror{}, fmt.Errorf("no mirror matching mask %d", mask)
	}
	return matching[rand.Intn(len(matching))], nil
}
