// Package home is the main menu screen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/pipeline"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/screens/history"
	"github.com/abhisek/pathfinder/internal/screens/plan"
	"github.com/abhisek/pathfinder/internal/screens/rolecatalog"
	"github.com/abhisek/pathfinder/internal/store"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu         components.Menu
	last         *store.Assessment
	sessionCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(runner *pipeline.Runner, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{}

	items := []components.MenuItem{
		{Label: "NEW ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: plan.New(runner, eventRepo)}
			}
		}},
		{Label: "ROLE PROFILES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: rolecatalog.New()}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			if eventRepo == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.loadStats(eventRepo)

	return h
}

// loadStats pulls the latest assessment synchronously. It runs once at
// startup against a local SQLite file, so blocking here is fine.
func (h *HomeScreen) loadStats(eventRepo store.EventRepo) {
	if eventRepo == nil {
		return
	}
	ctx := context.Background()

	sessions, err := eventRepo.QuerySessions(ctx, store.QueryOpts{})
	if err == nil {
		h.sessionCount = len(sessions)
	}

	assessments, err := eventRepo.QueryAssessments(ctx, "", store.QueryOpts{Limit: 1})
	if err == nil && len(assessments) > 0 {
		h.last = &assessments[0]
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := theme.Title.Render("PATHFINDER") + "\n" +
		theme.Subtitle.Render("AI career transition planner")
	sections = append(sections, components.TitleCard(title, cw))

	sections = append(sections, components.Card(h.renderStats(), cw))
	sections = append(sections, components.Card(h.menu.View(), cw))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	if h.last == nil {
		return theme.Hint.Render("No assessments yet. Start with a new assessment.")
	}

	line1 := theme.Body.Render("Last: ") +
		theme.Selected.Render(h.last.TargetRole) +
		theme.Body.Render(fmt.Sprintf("  %.2f", h.last.OverallScore))
	line2 := theme.Hint.Render(h.last.ReadinessLevel)
	line3 := theme.Hint.Render(fmt.Sprintf("%d sessions recorded", h.sessionCount))

	return line1 + "\n" + line2 + "\n" + line3
}

func (h *HomeScreen) Title() string {
	return "Home"
}
