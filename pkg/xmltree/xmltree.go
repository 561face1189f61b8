// Package xmltree decodes TVDB XML documents into field maps with
// typed value coercion.
package xmltree

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Value holds a decoded element value. It is one of string, int,
// float64, []string, or time.Time.
type Value = any

// Element maps child tag names to their decoded values for a single
// XML element. Tags absent from the source document are absent from
// the map.
type Element map[string]Value

// BadDataError reports a payload that could not be parsed as XML.
type BadDataError struct {
	Err error
}

func (e *BadDataError) Error() string {
	return fmt.Sprintf("bad XML data: %v", e.Err)
}

func (e *BadDataError) Unwrap() error {
	return e.Err
}

// node is the generic tree the raw document unmarshals into.
type node struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
	Nodes   []node `xml:",any"`
}

// Document is a parsed XML document.
type Document struct {
	root node
}

// Parse decodes data into a Document. A payload that is not
// well-formed XML returns a *BadDataError.
func Parse(data []byte) (*Document, error) {
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &BadDataError{Err: err}
	}
	return &Document{root: root}, nil
}

// Elements collects all direct children of the document root with the
// given tag and decodes each into an Element. Children of each match
// become name/value pairs; unknown tags are kept as raw values and
// missing tags are simply absent. The result preserves document order.
func (d *Document) Elements(tag string) []Element {
	var out []Element
	for _, child := range d.root.Nodes {
		if child.XMLName.Local != tag {
			continue
		}
		el := make(Element, len(child.Nodes))
		for _, field := range child.Nodes {
			el[field.XMLName.Local] = coerce(field.Text)
		}
		out = append(out, el)
	}
	return out
}

var (
	floatPattern = regexp.MustCompile(`^\d+\.\d+$`)
	intPattern   = regexp.MustCompile(`^\d+$`)
)

// coerce converts a raw text value to its natural type. Dates come
// first since "2006-10-01" would otherwise survive as a plain string,
// then pipe lists, then numerics.
func coerce(raw string) Value {
	s := strings.TrimSpace(raw)

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if strings.Contains(s, "|") {
		parts := strings.Split(strings.Trim(s, "|"), "|")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			list = append(list, strings.TrimSpace(p))
		}
		return list
	}
	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if intPattern.MatchString(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return s
}
