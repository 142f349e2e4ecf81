package component

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloznelis/lgm/internal/adapters/tui/style"
)

// InputResult is emitted when the prompt is resolved. Value is only
// meaningful when Submitted is true.
type InputResult struct {
	Submitted bool
	Value     int
	Action    string
	Data      any
}

// InputPrompt is a modal numeric prompt, used to ask how many hours
// back a subscription cursor should seek.
type InputPrompt struct {
	visible bool
	title   string
	action  string
	data    any
	input   textinput.Model
}

// NewInputPrompt creates a hidden prompt accepting digits only.
func NewInputPrompt() InputPrompt {
	ti := textinput.New()
	ti.CharLimit = 5
	ti.Width = 8
	ti.Prompt = "> "
	ti.Validate = func(s string) error {
		_, err := strconv.Atoi(s)
		return err
	}
	return InputPrompt{input: ti}
}

// Show opens the prompt with an empty buffer.
func (p *InputPrompt) Show(title, action string, data any) {
	p.visible = true
	p.title = title
	p.action = action
	p.data = data
	p.input.SetValue("")
	p.input.Focus()
}

// Hide dismisses the prompt without emitting a result.
func (p *InputPrompt) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible reports whether the prompt is on screen.
func (p InputPrompt) IsVisible() bool {
	return p.visible
}

func (p InputPrompt) Init() tea.Cmd {
	return nil
}

// Update handles prompt keys: Esc cancels, Enter submits when the
// buffer parses to a positive number, everything else edits the buffer.
func (p InputPrompt) Update(msg tea.Msg) (InputPrompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			p.Hide()
			return p, p.resolve(false, 0)
		case "enter":
			value, err := strconv.Atoi(p.input.Value())
			if err != nil || value <= 0 {
				return p, nil
			}
			p.Hide()
			return p, p.resolve(true, value)
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p InputPrompt) resolve(submitted bool, value int) tea.Cmd {
	result := InputResult{Submitted: submitted, Value: value, Action: p.action, Data: p.data}
	return func() tea.Msg { return result }
}

// View renders the prompt box, or nothing when hidden.
func (p InputPrompt) View() string {
	if !p.visible {
		return ""
	}
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		style.TitleStyle.Render(p.title),
		"",
		p.input.View(),
		"",
		style.HelpDescStyle.Render("enter submit · esc cancel"),
	)
	return style.DialogStyle.Render(body)
}
