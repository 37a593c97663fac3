package cmd

import (
	"github.com/abhisek/pathfinder/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "AI career transition planner",
	Long:  "Pathfinder — AI-native terminal app that maps your skills against a target role and builds a phased learning roadmap.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHFINDER_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHFINDER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
