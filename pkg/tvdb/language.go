package tvdb

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language describes one language supported by the service.
type Language struct {
	Abbreviation string // ISO-ish code, e.g. "en"
	Name         string // native display name, e.g. "English"
	ID           int    // server-side numeric id
}

func (l Language) String() string {
	return fmt.Sprintf("<Language (%s:%s:%d)>", l.Name, l.Abbreviation, l.ID)
}

// languageIDs maps the supported codes to the service's numeric ids.
var languageIDs = map[string]int{
	"cs": 28, "da": 10, "de": 14, "el": 20, "en": 7, "es": 16,
	"fi": 11, "fr": 17, "he": 24, "hr": 31, "hu": 19, "it": 15,
	"ja": 25, "ko": 32, "nl": 13, "no": 9, "pl": 18, "pt": 26,
	"ru": 22, "sl": 30, "sv": 8, "tr": 21, "zh": 27,
}

// LanguageSet is the read-only registry of supported languages,
// shared across all clients built from it.
type LanguageSet struct {
	byAbbr map[string]Language
}

// DefaultLanguages builds the registry bundled with the library.
// Native names come from the Unicode CLDR self-display data.
func DefaultLanguages() *LanguageSet {
	set := &LanguageSet{byAbbr: make(map[string]Language, len(languageIDs))}
	for abbr, id := range languageIDs {
		tag := language.MustParse(abbr)
		set.byAbbr[abbr] = Language{
			Abbreviation: abbr,
			Name:         display.Self.Name(tag),
			ID:           id,
		}
	}
	return set
}

// Get looks up a language by its abbreviation.
func (s *LanguageSet) Get(abbr string) (Language, bool) {
	l, ok := s.byAbbr[abbr]
	return l, ok
}

// Contains reports whether abbr is a registered language.
func (s *LanguageSet) Contains(abbr string) bool {
	_, ok := s.byAbbr[abbr]
	return ok
}

// Len returns the number of registered languages.
func (s *LanguageSet) Len() int {
	return len(s.byAbbr)
}

// All returns the languages sorted by abbreviation.
func (s *LanguageSet) All() []Language {
	out := make([]Language, 0, len(s.byAbbr))
	for _, l := range s.byAbbr {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Abbreviation < out[j].Abbreviation })
	return out
}
