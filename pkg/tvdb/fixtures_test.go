package tvdb

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const apiKey = "TESTKEY"

// mirrorsXML announces the given base URL as the sole mirror serving
// everything (mask 7 = XML | banner | zip).
func mirrorsXML(baseURL string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" ?>
<Mirrors>
  <Mirror>
    <id>1</id>
    <mirrorpath>%s</mirrorpath>
    <typemask>7</typemask>
  </Mirror>
</Mirrors>`, baseURL)
}

const searchDexterXML = `<?xml version="1.0" encoding="UTF-8" ?>
<Data>
  <Series>
    <seriesid>79349</seriesid>
    <language>en</language>
    <SeriesName>Dexter</SeriesName>
    <banner>graphical/79349-g6.jpg</banner>
    <Overview>Dexter Morgan is a forensics expert.</Overview>
    <FirstAired>2006-10-01</FirstAired>
    <Network>Showtime</Network>
    <IMDB_ID>tt0773262</IMDB_ID>
    <zap2it_id>SH859795</zap2it_id>
    <id>79349</id>
  </Series>
</Data>`

const searchEmptyXML = `<?xml version="1.0" encoding="UTF-8" ?>
<Data>
</Data>`

// episodeXML renders one Episode element of a full series document.
func episodeXML(id, season, episode int, name, aired, writer string) string {
	return fmt.Sprintf(`  <Episode>
    <id>%d</id>
    <SeasonNumber>%d</SeasonNumber>
    <EpisodeNumber>%d</EpisodeNumber>
    <EpisodeName>%s</EpisodeName>
    <FirstAired>%s</FirstAired>
    <Writer>%s</Writer>
    <Director>Michael Cuesta</Director>
    <Rating>7.8</Rating>
  </Episode>`, id, season, episode, name, aired, writer)
}

// dexterSeriesXML builds a full series document: 2 specials
// (season 0), 12 episodes in season 1, and 12 in season 2 with
// "See-Through" at S02E04. Writers rotate so filter tests have a
// known subset.
func dexterSeriesXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n<Data>\n")
	b.WriteString(`  <Series>
    <id>79349</id>
    <SeriesName>Dexter</SeriesName>
    <FirstAired>2006-10-01</FirstAired>
    <Network>Showtime</Network>
    <Genre>|Crime|Drama|Thriller|</Genre>
    <Actors>|Michael C. Hall|Jennifer Carpenter|</Actors>
    <Status>Ended</Status>
    <Runtime>50</Runtime>
    <Rating>8.9</Rating>
    <ContentRating>TV-MA</ContentRating>
    <Airs_DayOfWeek>Sunday</Airs_DayOfWeek>
    <Airs_Time>9:00 PM</Airs_Time>
    <IMDB_ID>tt0773262</IMDB_ID>
    <Language>en</Language>
  </Series>
`)

	id := 300000
	for ep := 1; ep <= 2; ep++ {
		id++
		b.WriteString(episodeXML(id, 0, ep, fmt.Sprintf("Special %d", ep), "2007-05-01", "Showtime"))
		b.WriteString("\n")
	}
	for ep := 1; ep <= 12; ep++ {
		id++
		writer := "James Manos, Jr."
		if ep%4 == 0 {
			writer = "Clyde Phillips"
		}
		b.WriteString(episodeXML(id, 1, ep, fmt.Sprintf("Chapter %d", ep), fmt.Sprintf("2006-10-%02d", ep), writer))
		b.WriteString("\n")
	}
	for ep := 1; ep <= 12; ep++ {
		id++
		name := fmt.Sprintf("Second Chapter %d", ep)
		if ep == 4 {
			name = "See-Through"
		}
		writer := "Melissa Rosenberg"
		if ep%4 == 0 {
			writer = "Clyde Phillips"
		}
		b.WriteString(episodeXML(id, 2, ep, name, fmt.Sprintf("2007-10-%02d", ep), writer))
		b.WriteString("\n")
	}

	b.WriteString("</Data>")
	return b.String()
}

const actorsXML = `<?xml version="1.0" encoding="UTF-8" ?>
<Actors>
  <Actor>
    <id>70947</id>
    <Image>actors/70947.jpg</Image>
    <Name>Michael C. Hall</Name>
    <Role>Dexter Morgan</Role>
    <SortOrder>0</SortOrder>
  </Actor>
  <Actor>
    <id>70948</id>
    <Image>actors/70948.jpg</Image>
    <Name>Jennifer Carpenter</Name>
    <Role>Debra Morgan</Role>
    <SortOrder>1</SortOrder>
  </Actor>
</Actors>`

const bannersXML = `<?xml version="1.0" encoding="UTF-8" ?>
<Banners>
  <Banner>
    <id>23585</id>
    <BannerPath>fanart/original/79349-2.jpg</BannerPath>
    <BannerType>fanart</BannerType>
    <BannerType2>1920x1080</BannerType2>
    <Language>en</Language>
    <Rating>8.0</Rating>
    <RatingCount>3</RatingCount>
  </Banner>
  <Banner>
    <id>23586</id>
    <BannerPath>seasons/79349-2-2.jpg</BannerPath>
    <BannerType>season</BannerType>
    <BannerType2>season</BannerType2>
    <Language>en</Language>
    <Season>2</Season>
  </Banner>
</Banners>`

const singleEpisodeXML = `<?xml version="1.0" encoding="UTF-8" ?>
<Data>
  <Episode>
    <id>308834</id>
    <SeasonNumber>1</SeasonNumber>
    <EpisodeNumber>2</EpisodeNumber>
    <EpisodeName>Crocodile</EpisodeName>
    <FirstAired>2006-10-08</FirstAired>
    <Writer>Clyde Phillips</Writer>
  </Episode>
</Data>`

// fixtureServer simulates the remote service for the Dexter fixtures.
// Handlers may be overridden per path; every request bumps the
// matching counter.
type fixtureServer struct {
	*httptest.Server
	counts map[string]*int
}

func newFixtureServer(t *testing.T, overrides map[string]http.HandlerFunc) *fixtureServer {
	t.Helper()

	fs := &fixtureServer{counts: make(map[string]*int)}

	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		n := new(int)
		fs.counts[pattern] = n
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			*n++
			if override, ok := overrides[pattern]; ok {
				override(w, r)
				return
			}
			h(w, r)
		})
	}

	route("/api/"+apiKey+"/mirrors.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mirrorsXML(fs.URL))
	})
	route("/api/GetSeries.php", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("seriesname") == "Dexter" {
			fmt.Fprint(w, searchDexterXML)
			return
		}
		fmt.Fprint(w, searchEmptyXML)
	})
	route("/api/"+apiKey+"/series/79349/all/en.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, dexterSeriesXML())
	})
	route("/api/"+apiKey+"/series/79349/actors.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, actorsXML)
	})
	route("/api/"+apiKey+"/series/79349/banners.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, bannersXML)
	})
	route("/api/"+apiKey+"/episodes/308834/en.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, singleEpisodeXML)
	})
	route("/api/GetEpisodeByAirDate.php", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("airdate") == "2006-10-08" && r.URL.Query().Get("seriesid") == "79349" {
			fmt.Fprint(w, singleEpisodeXML)
			return
		}
		fmt.Fprint(w, searchEmptyXML)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

// requests returns the hit count for a route pattern.
func (fs *fixtureServer) requests(pattern string) int {
	if n, ok := fs.counts[pattern]; ok {
		return *n
	}
	return 0
}

// newTestClient builds a client against the fixture server with the
// response cache off, so request counting reflects real traffic.
func newTestClient(t *testing.T, fs *fixtureServer, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithBaseURL(fs.URL), WithoutCache()}, opts...)
	c, err := New(apiKey, opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}
