// Package history shows past planning sessions and their assessments.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/store"
	"github.com/abhisek/pathfinder/internal/ui/layout"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions    []store.Session
	Assessments map[string][]store.Assessment // sessionID → assessments
	Err         error
}

// HistoryScreen displays past sessions and their assessments.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	sessions    []store.Session
	assessments map[string][]store.Assessment
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.QuerySessions(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Load all assessments and group by session.
		all, err := s.eventRepo.QueryAssessments(ctx, "", store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Sessions: sessions, Assessments: make(map[string][]store.Assessment)}
		}

		bySession := make(map[string][]store.Assessment)
		for _, a := range all {
			bySession[a.SessionID] = append(bySession[a.SessionID], a)
		}

		return historyLoadedMsg{Sessions: sessions, Assessments: bySession}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.assessments = msg.Assessments
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Run an assessment!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006")

		assessStr := ""
		if n := len(s.assessments[sess.SessionID]); n > 0 {
			assessStr = fmt.Sprintf("  %d assessment", n)
			if n > 1 {
				assessStr += "s"
			}
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d skills%s",
			prefix, dateStr, sess.Source, len(sess.Skills), assessStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded assessment details.
		if s.expanded[i] {
			skillLine := "    " + strings.Join(sess.Skills, ", ")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(skillLine)))
			b.WriteString("\n")

			list := s.assessments[sess.SessionID]
			if len(list) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No assessments this session")))
				b.WriteString("\n")
			} else {
				for _, a := range list {
					aLine := fmt.Sprintf("    %s — %.2f  %s  (%d gaps, %dh roadmap)",
						a.TargetRole, a.OverallScore, a.ReadinessLevel,
						a.MissingCount, a.RoadmapHours)
					b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
						lipgloss.NewStyle().Foreground(scoreColor(a.OverallScore)).Render(aLine)))
					b.WriteString("\n")
				}
			}
		}
	}

	return b.String()
}

func scoreColor(score float64) color.Color {
	switch {
	case score >= 0.8:
		return theme.Success
	case score >= 0.6:
		return theme.Accent
	default:
		return theme.Error
	}
}
