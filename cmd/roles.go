package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/roles"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Browse the curated role profiles",
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all curated target roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := roles.All()

		fmt.Printf("%-24s  %-28s  %4s  %5s  %4s\n",
			"Key", "Name", "Core", "Other", "Soft")
		fmt.Println(strings.Repeat("─", 75))

		for _, p := range all {
			fmt.Printf("%-24s  %-28s  %4d  %5d  %4d\n",
				p.Key, p.Name, len(p.Core), len(p.Other), len(p.Soft))
		}

		fmt.Printf("\n%d roles\n", len(all))
		return nil
	},
}

var rolesShowCmd = &cobra.Command{
	Use:   "show <role>",
	Short: "Show the skill requirements for one role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := roles.Find(args[0])
		if !ok {
			return fmt.Errorf("no curated profile for %q (try: %s)",
				args[0], strings.Join(roles.Names(), ", "))
		}

		fmt.Printf("%s (%s)\n", p.Name, p.Key)

		printReqs := func(label string, reqs []roles.Requirement) {
			if len(reqs) == 0 {
				return
			}
			fmt.Println()
			fmt.Println(label)
			fmt.Println(strings.Repeat("─", 48))
			for _, r := range reqs {
				fmt.Printf("%-28s  level %d  %.2f\n", r.SkillID, r.RequiredLevel, r.Weight)
			}
		}

		printReqs(fmt.Sprintf("Core Technical (%.0f%%)", roles.WeightCore*100), p.Core)
		printReqs(fmt.Sprintf("Other Technical (%.0f%%)", roles.WeightOther*100), p.Other)
		printReqs(fmt.Sprintf("Soft Skills (%.0f%%)", roles.WeightSoft*100), p.Soft)
		return nil
	},
}

func init() {
	rolesCmd.AddCommand(rolesListCmd)
	rolesCmd.AddCommand(rolesShowCmd)
}
