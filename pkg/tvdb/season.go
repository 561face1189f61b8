package tvdb

import (
	"fmt"
	"sort"
)

// Season holds the episodes belonging to one season of a show,
// keyed by episode number. Episode numbering starts at 1 and may have
// gaps; season 0 holds specials. Created as a byproduct of a Show's
// full-detail load, never standalone.
type Season struct {
	show     *Show
	number   int
	episodes map[int]*Episode
}

func newSeason(number int, show *Show) *Season {
	return &Season{show: show, number: number, episodes: make(map[int]*Episode)}
}

// add inserts an episode keyed by its EpisodeNumber, overwriting any
// previous episode with the same number.
func (s *Season) add(e *Episode) {
	s.episodes[e.EpisodeNumber] = e
}

// Number returns the season number (0 = specials).
func (s *Season) Number() int {
	return s.number
}

// Show returns the owning show.
func (s *Season) Show() *Show {
	return s.show
}

// Len returns the number of episodes in the season.
func (s *Season) Len() int {
	return len(s.episodes)
}

// Episode returns the episode with the given number, or an
// *IndexError when that number is absent.
func (s *Season) Episode(number int) (*Episode, error) {
	e, ok := s.episodes[number]
	if !ok {
		return nil, indexErr("episode", number)
	}
	return e, nil
}

// EpisodeRange returns the episodes whose number falls in
// [start, stop), ascending. The key space may be sparse, so the
// result can be shorter than stop-start.
func (s *Season) EpisodeRange(start, stop int) []*Episode {
	var out []*Episode
	for _, n := range s.numbers() {
		if n >= start && n < stop {
			out = append(out, s.episodes[n])
		}
	}
	return out
}

// Episodes returns all episodes ordered by ascending episode number.
// Each call returns a fresh slice.
func (s *Season) Episodes() []*Episode {
	out := make([]*Episode, 0, len(s.episodes))
	for _, n := range s.numbers() {
		out = append(out, s.episodes[n])
	}
	return out
}

// EpisodesDesc returns all episodes ordered by descending episode
// number.
func (s *Season) EpisodesDesc() []*Episode {
	asc := s.Episodes()
	for i, j := 0, len(asc)-1; i < j; i, j = i+1, j-1 {
		asc[i], asc[j] = asc[j], asc[i]
	}
	return asc
}

// Filter returns every episode satisfying pred, in ascending episode
// order.
func (s *Season) Filter(pred func(*Episode) bool) []*Episode {
	var out []*Episode
	for _, e := range s.Episodes() {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the first episode (in ascending order) satisfying
// pred, or ErrNoMatch.
func (s *Season) Find(pred func(*Episode) bool) (*Episode, error) {
	for _, e := range s.Episodes() {
		if pred(e) {
			return e, nil
		}
	}
	return nil, ErrNoMatch
}

func (s *Season) numbers() []int {
	nums := make([]int, 0, len(s.episodes))
	for n := range s.episodes {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

func (s *Season) String() string {
	return fmt.Sprintf("<Season %03d>", s.number)
}
