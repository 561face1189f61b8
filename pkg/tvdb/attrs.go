package tvdb

import (
	"sort"
	"strings"
	"time"

	"github.com/vmunix/tvdbgo/pkg/xmltree"
)

// attrBag holds the decoded fields of one entity. Keys are normalized
// to lower case at construction when ignoreCase is set, so lookups
// stay O(1) in either mode.
type attrBag struct {
	ignoreCase bool
	data       map[string]xmltree.Value
}

func newAttrBag(el xmltree.Element, ignoreCase bool) attrBag {
	b := attrBag{
		ignoreCase: ignoreCase,
		data:       make(map[string]xmltree.Value, len(el)),
	}
	for name, value := range el {
		b.data[b.key(name)] = value
	}
	return b
}

func (b attrBag) key(name string) string {
	if b.ignoreCase {
		return strings.ToLower(name)
	}
	return name
}

func (b attrBag) lookup(name string) (xmltree.Value, bool) {
	v, ok := b.data[b.key(name)]
	return v, ok
}

// merged returns a copy of the bag with el's fields layered on top.
// The receiver is left untouched so a failed load never leaks partial
// data into the entity.
func (b attrBag) merged(el xmltree.Element) attrBag {
	next := attrBag{
		ignoreCase: b.ignoreCase,
		data:       make(map[string]xmltree.Value, len(b.data)+len(el)),
	}
	for name, value := range b.data {
		next.data[name] = value
	}
	for name, value := range el {
		next.data[next.key(name)] = value
	}
	return next
}

// names returns the stored attribute names in sorted order.
func (b attrBag) names() []string {
	out := make([]string, 0, len(b.data))
	for name := range b.data {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Typed accessors below tolerate both missing fields and the decoder's
// type variance (a lone name decodes as string, a piped one as list).

func (b attrBag) str(name string) string {
	if v, ok := b.lookup(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (b attrBag) intval(name string) int {
	if v, ok := b.lookup(name); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return 0
}

func (b attrBag) floatval(name string) float64 {
	if v, ok := b.lookup(name); ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return 0
}

func (b attrBag) date(name string) time.Time {
	if v, ok := b.lookup(name); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

func (b attrBag) list(name string) []string {
	v, ok := b.lookup(name)
	if !ok {
		return nil
	}
	switch l := v.(type) {
	case []string:
		return l
	case string:
		if l == "" {
			return nil
		}
		return []string{l}
	}
	return nil
}
