package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/tvdbgo/pkg/tvdb"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] <series-id>",
	Short: "Fetch a show with its seasons and episodes",
	Long: `Fetch a show by its numeric id, including the full season and
episode tree.

Examples:
  tvdbq show 79349
  tvdbq show 79349 --season 2
  tvdbq show 79349 --actors --banners`,
	Args: cobra.ExactArgs(1),
	RunE: runShowCmd,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Int("season", -1, "Only list this season")
	showCmd.Flags().Bool("actors", false, "Include extended actor information")
	showCmd.Flags().Bool("banners", false, "Include extended banner information")
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	seriesID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid series id %q", args[0])
	}
	seasonFlag, _ := cmd.Flags().GetInt("season")
	wantActors, _ := cmd.Flags().GetBool("actors")
	wantBanners, _ := cmd.Flags().GetBool("banners")

	client, cfg, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	show, err := client.GetSeries(ctx, seriesID, cfg.Language, callOptions()...)
	if err != nil {
		return err
	}

	// The season tree is already loaded; the extended documents are
	// independent fetches, so run them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	if wantActors && !show.ActorsLoaded() {
		g.Go(func() error { return show.LoadActors(gctx) })
	}
	if wantBanners && !show.BannersLoaded() {
		g.Go(func() error { return show.LoadBanners(gctx) })
	}
	if err := g.Wait(); err != nil {
		return err
	}

	seasons, err := selectSeasons(ctx, show, seasonFlag)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(showDetail(show, seasons))
		return nil
	}

	printShowHuman(show, seasons)
	if wantActors {
		printActors(show.Actors())
	}
	if wantBanners {
		printBanners(show.Banners())
	}
	return nil
}

func selectSeasons(ctx context.Context, show *tvdb.Show, seasonFlag int) ([]*tvdb.Season, error) {
	if seasonFlag < 0 {
		return show.Seasons(ctx)
	}
	season, err := show.Season(ctx, seasonFlag)
	if err != nil {
		return nil, err
	}
	return []*tvdb.Season{season}, nil
}

type showDetailJSON struct {
	showSummary
	Seasons []seasonJSON `json:"seasons"`
	Actors  []actorJSON  `json:"actors,omitempty"`
	Banners []bannerJSON `json:"banners,omitempty"`
}

type seasonJSON struct {
	Number   int              `json:"number"`
	Episodes []episodeSummary `json:"episodes"`
}

type actorJSON struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Image string `json:"image,omitempty"`
}

type bannerJSON struct {
	Type   string `json:"type"`
	Season string `json:"season,omitempty"`
	URL    string `json:"url"`
}

func showDetail(show *tvdb.Show, seasons []*tvdb.Season) showDetailJSON {
	out := showDetailJSON{showSummary: summarize(show)}
	for _, season := range seasons {
		sj := seasonJSON{Number: season.Number()}
		for _, ep := range season.Episodes() {
			sj.Episodes = append(sj.Episodes, summarizeEpisode(ep))
		}
		out.Seasons = append(out.Seasons, sj)
	}
	for _, a := range show.Actors() {
		out.Actors = append(out.Actors, actorJSON{Name: a.Name, Role: a.Role, Image: a.ImageURL()})
	}
	for _, b := range show.Banners() {
		out.Banners = append(out.Banners, bannerJSON{Type: b.BannerType, Season: b.Season, URL: b.URL()})
	}
	return out
}

func printShowHuman(show *tvdb.Show, seasons []*tvdb.Season) {
	fmt.Printf("%s (%d)\n", show.SeriesName, show.ID)
	if show.Network != "" {
		fmt.Printf("  Network: %s\n", show.Network)
	}
	if show.Status != "" {
		fmt.Printf("  Status:  %s\n", show.Status)
	}
	if len(show.Genre) > 0 {
		fmt.Printf("  Genre:   %s\n", joinOrDash(show.Genre))
	}
	if !show.FirstAired.IsZero() {
		fmt.Printf("  Aired:   %s\n", show.FirstAired.Format("2006-01-02"))
	}

	for _, season := range seasons {
		label := fmt.Sprintf("Season %d", season.Number())
		if season.Number() == 0 {
			label = "Specials"
		}
		fmt.Printf("\n%s (%d episodes)\n", label, season.Len())
		for _, ep := range season.Episodes() {
			aired := ""
			if !ep.FirstAired.IsZero() {
				aired = ep.FirstAired.Format("2006-01-02")
			}
			fmt.Printf("  S%02dE%02d │ %-40s │ %s\n",
				ep.SeasonNumber, ep.EpisodeNumber, truncate(ep.EpisodeName, 40), aired)
		}
	}
}

func printActors(actors []*tvdb.Actor) {
	if len(actors) == 0 {
		return
	}
	fmt.Printf("\nActors\n")
	for _, a := range actors {
		fmt.Printf("  %-30s as %s\n", a.Name, a.Role)
	}
}

func printBanners(banners []*tvdb.Banner) {
	if len(banners) == 0 {
		return
	}
	fmt.Printf("\nBanners\n")
	for _, b := range banners {
		season := b.Season
		if season == "" {
			season = "-"
		}
		fmt.Printf("  %-10s │ season %-3s │ %s\n", b.BannerType, season, b.URL())
	}
}
