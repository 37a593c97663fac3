package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/llm"
	"github.com/abhisek/pathfinder/internal/pipeline"
	"github.com/abhisek/pathfinder/internal/resume"
	"github.com/abhisek/pathfinder/internal/store"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a phased learning roadmap for a target role",
	Long: `Run the full planning pipeline for a target role and print only the
roadmap. Skills come from --skills, a resume file (--resume), or a
stored session (--session). Use --weekly-hours to adjust the time
estimates to your study capacity.`,
	RunE: runRoadmap,
}

func init() {
	roadmapCmd.Flags().StringP("role", "r", "", "Target role, e.g. devops-engineer (required)")
	roadmapCmd.Flags().StringP("skills", "s", "", "Comma-separated list of current skills")
	roadmapCmd.Flags().String("resume", "", "Path to a resume file (.pdf, .docx, or .txt)")
	roadmapCmd.Flags().String("session", "", "Reuse skills from a stored session id")
	roadmapCmd.Flags().Int("weekly-hours", 0, "Weekly study hours for time estimates (default 8)")
	_ = roadmapCmd.MarkFlagRequired("role")
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	role, _ := cmd.Flags().GetString("role")
	skillsArg, _ := cmd.Flags().GetString("skills")
	resumePath, _ := cmd.Flags().GetString("resume")
	sessionArg, _ := cmd.Flags().GetString("session")
	weeklyHours, _ := cmd.Flags().GetInt("weekly-hours")

	if skillsArg == "" && resumePath == "" && sessionArg == "" {
		return fmt.Errorf("one of --skills, --resume, or --session is required")
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	input := pipeline.Input{
		SessionID:  uuid.NewString(),
		TargetRole: role,
		Skills:     splitSkills(skillsArg),
	}

	if sessionArg != "" && len(input.Skills) == 0 {
		sess, err := eventRepo.GetSession(ctx, sessionArg)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if sess == nil {
			return fmt.Errorf("session %q not found", sessionArg)
		}
		input.SessionID = sess.SessionID
		input.Skills = sess.Skills
	}

	if resumePath != "" && len(input.Skills) == 0 {
		text, err := resume.ExtractText(resumePath)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		input.ResumeText = text
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Building a curated fallback roadmap.")
		provider = nil
	}

	runner := pipeline.NewRunner(provider, eventRepo, pipeline.WithWeeklyHours(weeklyHours))
	res := runner.Run(ctx, input)

	fmt.Printf("Role:    %s\n", displayRole(res.Role))
	fmt.Printf("Skills:  %s\n\n", strings.Join(res.Skills, ", "))
	printRoadmap(&res.Roadmap)
	return nil
}
