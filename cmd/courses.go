package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/courses"
	"github.com/abhisek/pathfinder/internal/skills"
)

var coursesCmd = &cobra.Command{
	Use:   "courses <skill> [skill...]",
	Short: "Look up curated courses for one or more skills",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers, _ := cmd.Flags().GetInt("workers")

		ids := skills.NormalizeAll(args)
		found := courses.Lookup(context.Background(), ids, workers)

		for _, id := range ids {
			fmt.Println(id)
			fmt.Println(strings.Repeat("─", 72))

			list := found[id]
			if len(list) == 0 {
				fmt.Println("  no curated courses")
				fmt.Println()
				continue
			}
			for _, c := range list {
				info := courses.Parse(c)
				fmt.Printf("  %-44s  %-18s  %s\n", info.Title, info.Platform, info.Duration)
				fmt.Printf("  %s\n", info.URL)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	coursesCmd.Flags().IntP("workers", "w", courses.DefaultWorkers, "Concurrent lookup workers")
}
