package tvdb

import (
	"errors"
	"fmt"

	"github.com/vmunix/tvdbgo/pkg/xmltree"
)

// BadDataError reports a response payload that was received but could
// not be parsed as XML.
type BadDataError = xmltree.BadDataError

// Sentinel errors.
var (
	// ErrNotFound is returned by a Loader when the server reports 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNoMatch is returned by Find when no episode satisfies the
	// predicate.
	ErrNoMatch = errors.New("no matching episode")
)

// ConnectionError reports a transport failure (DNS, refused
// connection, timeout) reaching the remote service. Never retried
// automatically.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unable to connect to %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IndexError reports a season, episode, or search-result index outside
// the valid sparse key set.
type IndexError struct {
	Kind  string // "season", "episode", "search result", "air date"
	Index string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Index)
}

func indexErr(kind string, index int) *IndexError {
	return &IndexError{Kind: kind, Index: fmt.Sprintf("%d", index)}
}

// AttributeError reports a dynamic attribute lookup miss.
type AttributeError struct {
	Entity string // "Show", "Episode", "Actor", "Banner"
	Name   string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s has no attribute %s", e.Entity, e.Name)
}

// NotFoundError reports a direct id fetch for a nonexistent series or
// episode.
type NotFoundError struct {
	Kind string // "series" or "episode"
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValueError reports an invalid argument, such as an unregistered
// language code.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string {
	return e.Msg
}
