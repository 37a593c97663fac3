package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/store"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect stored sessions and assessments",
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		sessions, err := s.EventRepo().QuerySessions(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-7s  %-8s  %s\n",
			"Session", "Timestamp", "Source", "Method", "Skills")
		fmt.Println(strings.Repeat("─", 92))

		for _, sess := range sessions {
			fmt.Printf("%-36s  %-19s  %-7s  %-8s  %d\n",
				sess.SessionID,
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				sess.Source,
				sess.ExtractionMethod,
				len(sess.Skills),
			)
		}
		return nil
	},
}

var sessionViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "View one session and its assessments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		sess, err := s.EventRepo().GetSession(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if sess == nil {
			return fmt.Errorf("session %q not found", args[0])
		}

		fmt.Printf("Session:  %s\n", sess.SessionID)
		fmt.Printf("Time:     %s\n", sess.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Source:   %s (%s)\n", sess.Source, sess.ExtractionMethod)
		fmt.Printf("Skills:   %s\n", strings.Join(sess.Skills, ", "))

		assessments, err := s.EventRepo().QueryAssessments(ctx, sess.SessionID, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		if len(assessments) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-24s  %-6s  %-8s  %-6s  %s\n",
			"Timestamp", "Role", "Score", "Gaps", "Hours", "Level")
		fmt.Println(strings.Repeat("─", 96))
		for _, a := range assessments {
			fmt.Printf("%-19s  %-24s  %-6.2f  %-8d  %-6d  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				a.TargetRole,
				a.OverallScore,
				a.MissingCount,
				a.RoadmapHours,
				a.ReadinessLevel,
			)
		}
		return nil
	},
}

func init() {
	sessionListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")

	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionViewCmd)
}
