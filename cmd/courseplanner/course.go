package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacobmichels/Course-Planner-Go/catalog"
)

var courseCmd = &cobra.Command{
	Use:   "course <course id>",
	Short: "Prints one course as the API would serve it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("course id %q is not a number", args[0])
		}

		now := time.Now()
		year, _ := cmd.Flags().GetInt("year")
		if !cmd.Flags().Changed("year") {
			year = catalog.DefaultYear(now)
		}
		term, _ := cmd.Flags().GetString("term")
		if !cmd.Flags().Changed("term") {
			term = catalog.DefaultTerm(now)
		}

		svc, err := newServices(cfg)
		if err != nil {
			return err
		}

		record, err := svc.catalog.GetCourse(cmd.Context(), courseID, year, term)
		if err != nil {
			return err
		}

		return printJSON(record)
	},
}

func init() {
	courseCmd.Flags().Int("year", 0, "academic year, defaults to the current year")
	courseCmd.Flags().String("term", "", `term name or alias such as "sem1", defaults to the current semester`)
	rootCmd.AddCommand(courseCmd)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
