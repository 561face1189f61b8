package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/tvdbgo/pkg/tvdb"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-te", truncate("exactly-te", 10))
	assert.Equal(t, "a very ...", truncate("a very long title", 10))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestSummarize(t *testing.T) {
	show := &tvdb.Show{
		ID:         79349,
		SeriesName: "Dexter",
		Network:    "Showtime",
		FirstAired: time.Date(2006, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	got := summarize(show)
	assert.Equal(t, 79349, got.ID)
	assert.Equal(t, "Dexter", got.Name)
	assert.Equal(t, "2006-10-01", got.FirstAired)

	// Zero air date stays out of the JSON.
	got = summarize(&tvdb.Show{SeriesName: "Unaired"})
	assert.Empty(t, got.FirstAired)
}

func TestJoinOrDash(t *testing.T) {
	assert.Equal(t, "-", joinOrDash(nil))
	assert.Equal(t, "a, b", joinOrDash([]string{"a", "b"}))
}
