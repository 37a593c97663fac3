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
	"github.com/abhisek/pathfinder/internal/roles"
	"github.com/abhisek/pathfinder/internal/store"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a full assessment: skills, gaps, readiness, and roadmap",
	Long: `Assess your readiness for a target role and build a learning roadmap.

Skills come from --skills (comma-separated), a resume file (--resume),
or a previously stored session (--session). Results are stored in the
local database so they can be reviewed later with "pathfinder session".`,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().StringP("role", "r", "", "Target role, e.g. devops-engineer (required)")
	assessCmd.Flags().String("resume", "", "Path to a resume file (.pdf, .docx, or .txt)")
	assessCmd.Flags().StringP("skills", "s", "", "Comma-separated list of skills (skips resume extraction)")
	assessCmd.Flags().String("session", "", "Reuse skills from a stored session id")
	_ = assessCmd.MarkFlagRequired("role")
}

func runAssess(cmd *cobra.Command, args []string) error {
	role, _ := cmd.Flags().GetString("role")
	resumePath, _ := cmd.Flags().GetString("resume")
	skillsArg, _ := cmd.Flags().GetString("skills")
	sessionArg, _ := cmd.Flags().GetString("session")

	if resumePath == "" && skillsArg == "" && sessionArg == "" {
		return fmt.Errorf("one of --resume, --skills, or --session is required")
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
		fmt.Fprintln(os.Stderr, "Falling back to pattern matching and curated data.")
		provider = nil
	}

	runner := pipeline.NewRunner(provider, eventRepo)
	res := runner.Run(ctx, input)

	// A reused session already has its event; only new runs append one.
	if sessionArg == "" {
		source := "manual"
		if input.ResumeText != "" {
			source = "resume"
		}
		_ = eventRepo.AppendSession(ctx, store.SessionData{
			SessionID:        res.SessionID,
			Source:           source,
			ExtractionMethod: res.SkillSource,
			ResumeText:       input.ResumeText,
			Skills:           res.Skills,
		})
	}

	printAssessment(res)
	return nil
}

// printAssessment renders the full pipeline result to stdout.
func printAssessment(res *pipeline.Result) {
	sep := strings.Repeat("─", 72)

	fmt.Printf("Session:  %s\n", res.SessionID)
	fmt.Printf("Role:     %s\n", displayRole(res.Role))
	fmt.Printf("Skills:   %s  (%s)\n", strings.Join(res.Skills, ", "), res.SkillSource)

	fmt.Println()
	fmt.Println("Skill Gap")
	fmt.Println(sep)
	if len(res.Gap.Missing) == 0 && len(res.Gap.NiceToHave) == 0 {
		fmt.Println("No gaps identified.")
	} else {
		if len(res.Gap.Missing) > 0 {
			fmt.Printf("Missing:       %s\n", strings.Join(res.Gap.Missing, ", "))
		}
		if len(res.Gap.NiceToHave) > 0 {
			fmt.Printf("Nice to have:  %s\n", strings.Join(res.Gap.NiceToHave, ", "))
		}
	}

	if res.Readiness != nil {
		fmt.Println()
		printReadiness(res.Readiness)
	}

	fmt.Println()
	printRoadmap(&res.Roadmap)

	fmt.Println()
	for _, s := range res.Metrics.Stages() {
		fmt.Printf("%-14s  %6dms\n", s.Stage, s.Duration.Milliseconds())
	}
}

// displayRole resolves a curated display name, falling back to the raw input.
func displayRole(role string) string {
	if p, ok := roles.Find(role); ok {
		return p.Name
	}
	return role
}

// splitSkills parses a comma-separated skill list, dropping empties.
func splitSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
