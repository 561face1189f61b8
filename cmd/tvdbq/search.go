package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/tvdbgo/pkg/tvdb"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <name>...",
	Short: "Search for shows by name",
	Long: `Search for shows by name.

Examples:
  tvdbq search "Dexter"
  tvdbq search --lang sv "Bron"
  tvdbq search --best "dexter"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("best", false, "Show only the closest fuzzy match")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	best, _ := cmd.Flags().GetBool("best")

	client, cfg, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := client.Search(cmd.Context(), name, cfg.Language, callOptions()...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	shows := result.Shows()
	if best {
		match, ok := result.BestMatch()
		if !ok {
			fmt.Println("No close match found")
			return nil
		}
		shows = []*tvdb.Show{match}
	}

	if jsonOutput {
		printJSON(showSummaries(shows))
		return nil
	}

	if len(shows) == 0 {
		fmt.Println("No shows found")
		return nil
	}

	fmt.Printf("Found %d shows for %q:\n\n", len(shows), name)
	fmt.Printf("  %8s │ %-40s │ %-10s │ %s\n", "ID", "NAME", "FIRST AIRED", "NETWORK")
	for _, s := range shows {
		aired := ""
		if !s.FirstAired.IsZero() {
			aired = s.FirstAired.Format("2006-01-02")
		}
		fmt.Printf("  %8d │ %-40s │ %-11s │ %s\n", s.ID, truncate(s.SeriesName, 40), aired, s.Network)
	}
	return nil
}
