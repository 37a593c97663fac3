package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/extract"
	"github.com/abhisek/pathfinder/internal/llm"
	"github.com/abhisek/pathfinder/internal/resume"
	"github.com/abhisek/pathfinder/internal/store"
)

var extractCmd = &cobra.Command{
	Use:   "extract [resume-file]",
	Short: "Extract skills from a resume (.pdf, .docx, .txt, or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")

		var text string
		if len(args) == 1 {
			t, err := resume.ExtractText(args[0])
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}
			text = t
		} else {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(raw)
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("no resume text on stdin; pass a file or pipe text in")
			}
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var eventRepo store.EventRepo
		var st *store.Store
		if save {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			st, err = store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()
			eventRepo = st.EventRepo()
		}

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to pattern matching.")
			provider = nil
		}

		ex := extract.New(provider, extract.DefaultConfig())
		res := ex.Extract(ctx, text)

		if len(res.Skills) == 0 {
			fmt.Println("No skills found.")
			return nil
		}

		for _, s := range res.Skills {
			fmt.Println(s)
		}
		fmt.Printf("\n%d skills (%s)\n", len(res.Skills), res.Source)

		if save {
			data := store.SessionData{
				SessionID:        uuid.NewString(),
				Source:           "resume",
				ExtractionMethod: res.Source,
				ResumeText:       text,
				Skills:           res.Skills,
			}
			if err := eventRepo.AppendSession(ctx, data); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Printf("Saved session %s\n", data.SessionID)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().Bool("save", false, "Store the extracted skills as a session")
}
