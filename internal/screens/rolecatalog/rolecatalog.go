// Package rolecatalog is a browser for the curated role profiles.
package rolecatalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/roles"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/ui/layout"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// RoleCatalogScreen lists curated roles and their requirements.
type RoleCatalogScreen struct {
	profiles []roles.Profile
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*RoleCatalogScreen)(nil)
var _ screen.KeyHintProvider = (*RoleCatalogScreen)(nil)

// New creates a new RoleCatalogScreen.
func New() *RoleCatalogScreen {
	return &RoleCatalogScreen{
		profiles: roles.All(),
		expanded: make(map[int]bool),
	}
}

func (s *RoleCatalogScreen) Init() tea.Cmd {
	return nil
}

func (s *RoleCatalogScreen) Title() string {
	return "Role Profiles"
}

func (s *RoleCatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Requirements"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RoleCatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.profiles)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *RoleCatalogScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	for i, p := range s.profiles {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-28s  %d core  %d other  %d soft",
			prefix, p.Name, len(p.Core), len(p.Other), len(p.Soft))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, group := range []struct {
				label string
				reqs  []roles.Requirement
			}{
				{"core ", p.Core},
				{"other", p.Other},
				{"soft ", p.Soft},
			} {
				if len(group.reqs) == 0 {
					continue
				}
				ids := make([]string, len(group.reqs))
				for j, r := range group.reqs {
					ids[j] = r.SkillID
				}
				detail := fmt.Sprintf("    %s  %s", group.label, strings.Join(ids, ", "))
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
