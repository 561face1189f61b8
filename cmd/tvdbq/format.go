package main

import (
	"strings"

	"github.com/vmunix/tvdbgo/pkg/tvdb"
)

func callOptions() []tvdb.CallOption {
	if noCache {
		return []tvdb.CallOption{tvdb.SkipCache()}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// showSummary is the JSON shape for a show listing.
type showSummary struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	FirstAired string   `json:"first_aired,omitempty"`
	Network    string   `json:"network,omitempty"`
	Status     string   `json:"status,omitempty"`
	Genre      []string `json:"genre,omitempty"`
	Overview   string   `json:"overview,omitempty"`
}

func summarize(s *tvdb.Show) showSummary {
	out := showSummary{
		ID:       s.ID,
		Name:     s.SeriesName,
		Network:  s.Network,
		Status:   s.Status,
		Genre:    s.Genre,
		Overview: s.Overview,
	}
	if !s.FirstAired.IsZero() {
		out.FirstAired = s.FirstAired.Format("2006-01-02")
	}
	return out
}

func showSummaries(shows []*tvdb.Show) []showSummary {
	out := make([]showSummary, len(shows))
	for i, s := range shows {
		out[i] = summarize(s)
	}
	return out
}

// episodeSummary is the JSON shape for an episode listing.
type episodeSummary struct {
	ID         int      `json:"id"`
	Season     int      `json:"season"`
	Episode    int      `json:"episode"`
	Name       string   `json:"name"`
	FirstAired string   `json:"first_aired,omitempty"`
	Writer     []string `json:"writer,omitempty"`
	Overview   string   `json:"overview,omitempty"`
}

func summarizeEpisode(e *tvdb.Episode) episodeSummary {
	out := episodeSummary{
		ID:       e.ID,
		Season:   e.SeasonNumber,
		Episode:  e.EpisodeNumber,
		Name:     e.EpisodeName,
		Writer:   e.Writer,
		Overview: e.Overview,
	}
	if !e.FirstAired.IsZero() {
		out.FirstAired = e.FirstAired.Format("2006-01-02")
	}
	return out
}

func joinOrDash(parts []string) string {
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
