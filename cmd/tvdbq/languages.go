package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/tvdbgo/pkg/tvdb"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported languages",
	Args:  cobra.NoArgs,
	RunE:  runLanguagesCmd,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguagesCmd(cmd *cobra.Command, args []string) error {
	all := tvdb.DefaultLanguages().All()

	if jsonOutput {
		type lang struct {
			Code string `json:"code"`
			Name string `json:"name"`
		}
		out := make([]lang, len(all))
		for i, l := range all {
			out[i] = lang{Code: l.Abbreviation, Name: l.Name}
		}
		printJSON(out)
		return nil
	}

	for _, l := range all {
		fmt.Printf("  %-4s %s\n", l.Abbreviation, l.Name)
	}
	return nil
}
