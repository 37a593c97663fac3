// Package plan implements the assessment wizard: pick a target role,
// enter skills, run the pipeline, and browse the results.
package plan

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/pathfinder/internal/pipeline"
	"github.com/abhisek/pathfinder/internal/roles"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/store"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/layout"
)

type step int

const (
	stepRole step = iota
	stepRoleInput
	stepSkills
	stepRunning
	stepResults
)

const customRoleLabel = "Other role..."

// PlanScreen walks the user through one assessment.
type PlanScreen struct {
	runner *pipeline.Runner
	events store.EventRepo

	step        step
	roleMenu    components.Menu
	roleInput   components.TextInput
	skillsInput components.TextInput

	role    string
	res     *pipeline.Result
	lines   []string
	scroll  int
	spinner int
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

// New creates a new PlanScreen.
func New(runner *pipeline.Runner, events store.EventRepo) *PlanScreen {
	p := &PlanScreen{
		runner:      runner,
		events:      events,
		roleInput:   components.NewTextInput("e.g. Platform Engineer", 64),
		skillsInput: components.NewTextInput("python, sql, docker, git", 256),
	}

	items := make([]components.MenuItem, 0, len(roles.Names())+1)
	for _, name := range roles.Names() {
		items = append(items, components.MenuItem{Label: name})
	}
	items = append(items, components.MenuItem{Label: customRoleLabel})
	p.roleMenu = components.NewMenu(items)

	return p
}

func (p *PlanScreen) Init() tea.Cmd {
	return nil
}

func (p *PlanScreen) Title() string {
	return "New Assessment"
}

func (p *PlanScreen) KeyHints() []layout.KeyHint {
	switch p.step {
	case stepResults:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Done"},
		}
	case stepRunning:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (p *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		p.res = msg.Result
		p.lines = p.buildResultLines()
		p.scroll = 0
		p.step = stepResults
		return p, nil

	case spinnerTickMsg:
		if p.step != stepRunning {
			return p, nil
		}
		p.spinner++
		return p, spinnerTick()
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && p.step == stepRunning {
		if kmsg.String() == "esc" {
			// The pipeline keeps running; its result lands on a popped
			// screen and is dropped.
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)

	switch p.step {
	case stepRole:
		if isKey && kmsg.String() == "esc" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if isKey && kmsg.String() == "enter" {
			label := p.roleMenu.Items[p.roleMenu.Selected].Label
			if label == customRoleLabel {
				p.step = stepRoleInput
				return p, p.roleInput.Init()
			}
			p.role = label
			p.step = stepSkills
			return p, p.skillsInput.Init()
		}
		var cmd tea.Cmd
		p.roleMenu, cmd = p.roleMenu.Update(msg)
		return p, cmd

	case stepRoleInput:
		if isKey && kmsg.String() == "esc" {
			p.step = stepRole
			return p, nil
		}
		if isKey && kmsg.String() == "enter" {
			role := p.roleInput.Value()
			if role == "" {
				p.roleInput.Submit(false)
				return p, nil
			}
			p.role = role
			p.step = stepSkills
			return p, p.skillsInput.Init()
		}
		var cmd tea.Cmd
		p.roleInput, cmd = p.roleInput.Update(msg)
		return p, cmd

	case stepSkills:
		if isKey && kmsg.String() == "esc" {
			p.step = stepRole
			return p, nil
		}
		if isKey && kmsg.String() == "enter" {
			skills := p.skillsInput.ListValue()
			if len(skills) == 0 {
				p.skillsInput.Submit(false)
				return p, nil
			}
			p.step = stepRunning
			return p, tea.Batch(p.runCmd(skills), spinnerTick())
		}
		var cmd tea.Cmd
		p.skillsInput, cmd = p.skillsInput.Update(msg)
		return p, cmd

	case stepResults:
		if !isKey {
			return p, nil
		}
		switch kmsg.String() {
		case "up", "k":
			if p.scroll > 0 {
				p.scroll--
			}
		case "down", "j":
			if p.scroll < len(p.lines)-1 {
				p.scroll++
			}
		case "esc", "enter":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	return p, nil
}

// runCmd executes the pipeline off the UI loop and records the session.
func (p *PlanScreen) runCmd(skills []string) tea.Cmd {
	runner := p.runner
	events := p.events
	role := p.role

	return func() tea.Msg {
		ctx := context.Background()
		res := runner.Run(ctx, pipeline.Input{
			SessionID:  uuid.NewString(),
			TargetRole: role,
			Skills:     skills,
		})

		if events != nil {
			_ = events.AppendSession(ctx, store.SessionData{
				SessionID:        res.SessionID,
				Source:           "manual",
				ExtractionMethod: res.SkillSource,
				Skills:           res.Skills,
			})
		}

		return resultMsg{Result: res}
	}
}

// spinnerTick drives the loading animation.
func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
