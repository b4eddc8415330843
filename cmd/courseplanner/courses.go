package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jacobmichels/Course-Planner-Go/catalog"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Lists the courses offered in a year, optionally for one term",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		if !cmd.Flags().Changed("year") {
			year = catalog.DefaultYear(time.Now())
		}

		var term *string
		if cmd.Flags().Changed("term") {
			t, _ := cmd.Flags().GetString("term")
			term = &t
		}

		svc, err := newServices(cfg)
		if err != nil {
			return err
		}

		courses, err := svc.catalog.ListCourses(cmd.Context(), year, term)
		if err != nil {
			return err
		}

		return printJSON(courses)
	},
}

func init() {
	coursesCmd.Flags().Int("year", 0, "academic year, defaults to the current year")
	coursesCmd.Flags().String("term", "", "term name or alias, every term when omitted")
	rootCmd.AddCommand(coursesCmd)
}
