package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/tvdbgo/pkg/tvdb"
)

var episodeCmd = &cobra.Command{
	Use:   "episode <episode-id>",
	Short: "Fetch a single episode by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodeCmd,
}

var airdateCmd = &cobra.Command{
	Use:   "airdate <series-id> <yyyy-mm-dd>",
	Short: "Fetch the episode of a series that aired on a date",
	Args:  cobra.ExactArgs(2),
	RunE:  runAirdateCmd,
}

func init() {
	rootCmd.AddCommand(episodeCmd)
	rootCmd.AddCommand(airdateCmd)
}

func runEpisodeCmd(cmd *cobra.Command, args []string) error {
	episodeID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid episode id %q", args[0])
	}

	client, cfg, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ep, err := client.GetEpisode(cmd.Context(), episodeID, cfg.Language, callOptions()...)
	if err != nil {
		return err
	}
	printEpisode(ep)
	return nil
}

func runAirdateCmd(cmd *cobra.Command, args []string) error {
	seriesID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid series id %q", args[0])
	}
	airDate, err := time.Parse("2006-01-02", args[1])
	if err != nil {
		return fmt.Errorf("invalid air date %q, want yyyy-mm-dd", args[1])
	}

	client, cfg, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ep, err := client.GetEpisodeByAirDate(cmd.Context(), seriesID, cfg.Language, airDate, callOptions()...)
	if err != nil {
		return err
	}
	printEpisode(ep)
	return nil
}

func printEpisode(ep *tvdb.Episode) {
	if jsonOutput {
		printJSON(summarizeEpisode(ep))
		return
	}

	fmt.Printf("S%02dE%02d %s (%d)\n", ep.SeasonNumber, ep.EpisodeNumber, ep.EpisodeName, ep.ID)
	if !ep.FirstAired.IsZero() {
		fmt.Printf("  Aired:  %s\n", ep.FirstAired.Format("2006-01-02"))
	}
	fmt.Printf("  Writer: %s\n", joinOrDash(ep.Writer))
	if ep.Overview != "" {
		fmt.Printf("\n%s\n", ep.Overview)
	}
}
