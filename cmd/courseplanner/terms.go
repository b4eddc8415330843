package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Prints the upstream term catalog",
	Long: `Prints the upstream term catalog. Descriptions are what term names and
aliases resolve against, so this is the place to discover valid terms.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices(cfg)
		if err != nil {
			return err
		}

		entries, err := svc.upstream.Terms(cmd.Context())
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("year") {
			year, _ := cmd.Flags().GetInt("year")
			entries = filterTerms(entries, year)
		}

		return printJSON(entries)
	},
}

func init() {
	termsCmd.Flags().Int("year", 0, "only show terms of this year")
	rootCmd.AddCommand(termsCmd)
}

func filterTerms(entries []courseplanner.RawTermEntry, year int) []courseplanner.RawTermEntry {
	prefix := strconv.Itoa(year) + " "
	filtered := []courseplanner.RawTermEntry{}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Description, prefix) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
