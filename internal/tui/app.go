package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenMain screen = iota
	screenManual
	screenPrompt
)

// action is what a name prompt will do with the entered value.
type action int

const (
	actNone action = iota
	actAdd
	actRemove
	actSave
)

type menuItem struct {
	choice string
	title  string
}

var (
	mainMenu = []menuItem{
		{"1", "Place facilities manually"},
		{"2", "Place facilities automatically"},
		{"3", "Save the network"},
		{"4", "Quit"},
	}
	manualMenu = []menuItem{
		{"1", "Add a facility"},
		{"2", "Remove a facility"},
		{"3", "Back"},
		{"4", "Facility in every town"},
		{"5", "Show roads"},
	}
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger
	ctx   context.Context

	scr     screen
	pending action
	input   textinput.Model
	help    help.Model
	keys    keyMap

	message    string
	messageErr bool
	saving     bool
}

// Run starts the interactive menu and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)

	var opts []tea.ProgramOption
	if deps.Input != nil {
		opts = append(opts, tea.WithInput(deps.Input))
	}
	if deps.Output != nil {
		opts = append(opts, tea.WithOutput(deps.Output))
	}

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		log:   log,
		ctx:   ctx,
		scr:   screenMain,
		input: ti,
		help:  help.New(),
		keys:  keys,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case saveDoneMsg:
		m.saving = false
		m.scr = screenMain
		if msg.err != nil {
			m.fail(msg.err)
		} else {
			m.ok("Saved to " + msg.location)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.saving {
				return m, nil
			}
			m.back()
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			if m.saving {
				return m, nil
			}
			value := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if value == "" {
				// Re-prompt.
				return m, nil
			}
			return m.submit(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) back() {
	m.input.Reset()
	switch m.scr {
	case screenPrompt:
		if m.pending == actSave {
			m.scr = screenMain
		} else {
			m.scr = screenManual
		}
		m.pending = actNone
	case screenManual:
		m.scr = screenMain
	}
}

func (m model) submit(value string) (tea.Model, tea.Cmd) {
	s := m.deps.Session
	m.message = ""

	switch m.scr {
	case screenMain:
		switch value {
		case "1":
			m.scr = screenManual
		case "2":
			rep := s.Solve()
			m.ok(fmt.Sprintf("Before: %s\nAfter:  %s", joinTowns(rep.Before), joinTowns(rep.After)))
		case "3":
			m.prompt(actSave)
			m.input.SetValue(s.Location())
			m.input.CursorEnd()
		case "4":
			return m, tea.Quit
		default:
			m.fail(fmt.Errorf("unknown choice %q", value))
		}

	case screenManual:
		switch value {
		case "1":
			m.prompt(actAdd)
		case "2":
			m.prompt(actRemove)
		case "3":
			m.scr = screenMain
		case "4":
			s.FullCoverage()
			m.ok("Every town now hosts a facility")
		case "5":
			m.ok(roadsText(m))
		default:
			m.fail(fmt.Errorf("unknown choice %q", value))
		}

	case screenPrompt:
		act := m.pending
		m.pending = actNone
		switch act {
		case actAdd:
			m.scr = screenManual
			if err := s.AddFacility(value); err != nil {
				m.fail(err)
			} else {
				m.ok("Facility added in " + value)
			}
		case actRemove:
			m.scr = screenManual
			if err := s.RemoveFacility(value); err != nil {
				m.fail(err)
			} else {
				m.ok("Facility removed from " + value)
			}
		case actSave:
			m.saving = true
			m.ok("Saving...")
			return m, saveCmd(m.ctx, s, value)
		}
	}

	return m, nil
}

func (m *model) prompt(act action) {
	m.scr = screenPrompt
	m.pending = act
}

func (m *model) ok(text string) {
	m.message, m.messageErr = text, false
}

func (m *model) fail(err error) {
	m.message, m.messageErr = err.Error(), true
	m.log.Debug("tui.error", "err", err)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("schoolnet"))
	if loc := m.deps.Session.Location(); loc != "" {
		b.WriteString(" " + m.theme.Subtitle.Render(loc))
	}
	if m.deps.Session.Dirty() {
		b.WriteString(" " + m.theme.Subtitle.Render("(modified)"))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Card.Render("Facilities: " + joinTowns(m.deps.Session.Coverage())))
	b.WriteString("\n\n")

	switch m.scr {
	case screenMain:
		b.WriteString(renderMenu(mainMenu))
	case screenManual:
		b.WriteString(renderMenu(manualMenu))
	case screenPrompt:
		b.WriteString(promptText(m.pending))
		b.WriteString("\n")
	}

	if m.message != "" {
		style := m.theme.Success
		if m.messageErr {
			style = m.theme.Error
		}
		b.WriteString("\n" + style.Render(m.message) + "\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func renderMenu(items []menuItem) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s) %s\n", it.choice, it.title)
	}
	return b.String()
}

func promptText(act action) string {
	switch act {
	case actAdd:
		return "Town that gets a facility:"
	case actRemove:
		return "Town that loses its facility:"
	case actSave:
		return "Save to (file path or s3://bucket/key):"
	}
	return ""
}

func roadsText(m model) string {
	var b strings.Builder
	for i, e := range m.deps.Session.Roads() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", e.Town, joinTowns(e.Neighbors))
	}
	return b.String()
}

func joinTowns(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
