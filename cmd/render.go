package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathfinder/internal/readiness"
	"github.com/abhisek/pathfinder/internal/roadmap"
)

// printReadiness renders a readiness report to stdout.
func printReadiness(r *readiness.Report) {
	sep := strings.Repeat("─", 72)

	fmt.Println("Readiness")
	fmt.Println(sep)
	fmt.Printf("Overall:  %.2f  %s\n", r.OverallScore, r.Level)

	fmt.Println()
	for _, cb := range r.Breakdown {
		fmt.Printf("%-28s  %.2f\n", cb.Category, cb.Score)
		if len(cb.Present) > 0 {
			fmt.Printf("  have:     %s\n", strings.Join(cb.Present, ", "))
		}
		if len(cb.Missing) > 0 {
			fmt.Printf("  missing:  %s\n", strings.Join(cb.Missing, ", "))
		}
		if cb.Notes != "" {
			fmt.Printf("  %s\n", cb.Notes)
		}
	}

	if len(r.MissingCritical) > 0 {
		fmt.Println()
		fmt.Println("Critical Gaps")
		fmt.Printf("%-3s  %-20s  %-8s  %s\n", "#", "Skill", "Severity", "Level")
		for _, m := range r.MissingCritical {
			fmt.Printf("%-3d  %-20s  %-8s  %d/%d\n",
				m.Priority, m.SkillID, m.Severity, m.CurrentLevel, m.RequiredLevel)
		}
	}

	if len(r.Recommendations) > 0 {
		fmt.Println()
		fmt.Println("Recommendations")
		for _, rec := range r.Recommendations {
			fmt.Printf("%d. %s  (%s)\n", rec.Priority, rec.Action, rec.Timeline)
			fmt.Printf("   %s\n", rec.Impact)
		}
	}

	if len(r.Strengths) > 0 {
		fmt.Println()
		fmt.Println("Strengths")
		for _, s := range r.Strengths {
			fmt.Printf("  • %s\n", s)
		}
	}

	if r.NextSteps != "" {
		fmt.Println()
		fmt.Println(r.NextSteps)
	}
}

// printRoadmap renders a learning roadmap to stdout.
func printRoadmap(rm *roadmap.Roadmap) {
	sep := strings.Repeat("─", 72)

	fmt.Println("Learning Roadmap")
	fmt.Println(sep)
	if len(rm.Phases) == 0 {
		fmt.Println("No roadmap: no skill gaps to plan for.")
		return
	}

	for _, phase := range rm.Phases {
		fmt.Println()
		fmt.Println(phase.Name)
		for _, step := range phase.Steps {
			fmt.Printf("  %-20s  %3dh  %s\n", step.SkillID, step.EstHours, step.Course)
			if step.Reason != "" {
				fmt.Printf("  %-20s        %s\n", "", step.Reason)
			}
		}
		if phase.TimeFrame != "" {
			fmt.Printf("  %s\n", phase.TimeFrame)
		}
	}

	fmt.Println()
	fmt.Println(rm.TimeFrame)
	fmt.Printf("Source: %s\n", rm.Source)
}
