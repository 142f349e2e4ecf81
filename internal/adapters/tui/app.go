// Package tui implements the interactive Pulsar browser.
//
// This package implements the bubbletea Model interface, managing the
// navigation stack, view transitions, and message handling. It
// coordinates between the Pulsar admin client, the UI components, and
// user interactions.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloznelis/lgm/configs"
	"github.com/bloznelis/lgm/internal/adapters/tui/component"
	"github.com/bloznelis/lgm/internal/adapters/tui/keys"
	"github.com/bloznelis/lgm/internal/adapters/tui/style"
	"github.com/bloznelis/lgm/internal/domain/entity"
	"github.com/bloznelis/lgm/internal/domain/port"
	"github.com/bloznelis/lgm/internal/navigation"
)

// Model is the main application state implementing tea.Model. It holds
// the navigation stack, the fetch coordinator, and all UI components.
type Model struct {
	admin       port.PulsarAdmin
	config      *configs.Config
	stack       *navigation.Stack
	coordinator *navigation.Coordinator

	confirmDialog component.ConfirmDialog
	inputPrompt   component.InputPrompt
	help          component.HelpPanel
	breadcrumb    component.Breadcrumb
	detail        component.DetailViewer
	spinner       spinner.Model
	keys          keys.KeyMap

	mode      SessionMode
	priorMode SessionMode // Mode to restore when a message is dismissed

	statusMsg  string
	statusKind messageKind
	statusSeq  int // Guards against stale auto-dismiss timers

	width  int
	height int

	loadingDetail bool
	startSelected bool // Start tenant cursor preselection applied
}

// New creates the application model around an admin client and the
// loaded configuration.
func New(admin port.PulsarAdmin, cfg *configs.Config) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.SpinnerStyle

	return &Model{
		admin:         admin,
		config:        cfg,
		stack:         navigation.NewStack(),
		coordinator:   navigation.NewCoordinator(),
		confirmDialog: component.NewConfirmDialog(),
		inputPrompt:   component.NewInputPrompt(),
		help:          component.NewHelpPanel(),
		breadcrumb:    component.NewBreadcrumb(),
		detail:        component.NewDetailViewer(),
		spinner:       s,
		keys:          keys.DefaultKeyMap(),
		mode:          ModeListing,
	}
}

func (m *Model) Init() tea.Cmd {
	intent := m.coordinator.BeginFetch(m.stack.Current())
	return tea.Batch(
		m.spinner.Tick,
		m.loadLevel(intent),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.detail.SetSize(msg.Width, msg.Height)
		m.breadcrumb.SetWidth(msg.Width - 4)
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case itemsLoadedMsg:
		return m.handleItemsLoaded(msg)

	case detailLoadedMsg:
		m.loadingDetail = false
		if msg.err != nil {
			return m, m.showMessage(messageError, "Error loading subscription: "+msg.err.Error())
		}
		m.detail.Show(msg.detail)
		m.mode = ModeDetail
		return m, nil

	case component.DetailClosedMsg:
		m.mode = ModeListing
		return m, nil

	case component.ConfirmResult:
		return m.handleConfirmResult(msg)

	case component.InputResult:
		return m.handleInputResult(msg)

	case actionDoneMsg:
		return m.handleActionDone(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq && m.mode == ModeMessage {
			m.dismissMessage()
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes a key event. Overlay components get their keys
// first, everything else goes through the dispatcher.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.confirmDialog.IsVisible() {
		var cmd tea.Cmd
		m.confirmDialog, cmd = m.confirmDialog.Update(msg)
		return m, cmd
	}

	if m.inputPrompt.IsVisible() {
		var cmd tea.Cmd
		m.inputPrompt, cmd = m.inputPrompt.Update(msg)
		return m, cmd
	}

	if m.help.IsVisible() {
		m.help.Hide()
		return m, nil
	}

	if m.mode == ModeDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	action := Dispatch(msg, m.mode, m.stack.Current().Level, m.keys)
	return m.executeAction(action)
}

// handleItemsLoaded resolves a finished fetch against the stack. Stale
// results are discarded silently, failures surface as an error message
// while the last good items stay on screen.
func (m *Model) handleItemsLoaded(msg itemsLoadedMsg) (tea.Model, tea.Cmd) {
	outcome := m.coordinator.Resolve(m.stack, msg.intent, msg.items, msg.err)
	switch outcome {
	case navigation.Failed:
		return m, m.showMessage(messageError, "Fetch failed: "+msg.err.Error())
	case navigation.Applied:
		m.preselectStartTenant(msg.intent)
	}
	return m, nil
}

// preselectStartTenant moves the cursor to the configured start tenant
// the first time the tenant listing arrives.
func (m *Model) preselectStartTenant(intent navigation.Intent) {
	if m.startSelected || intent.Level != entity.LevelTenants {
		return
	}
	m.startSelected = true

	want := m.config.StartTenant()
	if want == "" {
		return
	}
	frame := m.stack.Current()
	if frame.Level != entity.LevelTenants {
		return
	}
	for i, item := range frame.Items {
		if item.Name == want {
			frame.Cursor = i
			return
		}
	}
}

// handleConfirmResult applies a resolved confirm dialog. Cancellation
// returns to the listing with the frame untouched.
func (m *Model) handleConfirmResult(msg component.ConfirmResult) (tea.Model, tea.Cmd) {
	m.mode = ModeListing
	if !msg.Confirmed {
		return m, nil
	}

	sub, ok := msg.Data.(string)
	if !ok || sub == "" {
		return m, nil
	}
	path := m.stack.Current().Path

	switch msg.Action {
	case "delete":
		return m, m.deleteSubscription(path, sub)
	case "skip":
		return m, m.skipAllMessages(path, sub)
	}
	return m, nil
}

// handleInputResult applies a resolved input prompt.
func (m *Model) handleInputResult(msg component.InputResult) (tea.Model, tea.Cmd) {
	m.mode = ModeListing
	if !msg.Submitted {
		return m, nil
	}

	sub, ok := msg.Data.(string)
	if !ok || sub == "" {
		return m, nil
	}
	path := m.stack.Current().Path

	if msg.Action == "seek" {
		return m, m.resetCursor(path, sub, msg.Value)
	}
	return m, nil
}

// handleActionDone reports a finished mutation and refreshes the
// current level so the listing reflects the new broker state.
func (m *Model) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.showMessage(messageError, "Operation failed: "+msg.err.Error())
	}

	var text string
	switch msg.action {
	case "delete":
		text = "Deleted subscription " + msg.subscription
	case "skip":
		text = "Skipped backlog of " + msg.subscription
	case "seek":
		text = "Cursor reset for " + msg.subscription
	default:
		text = "Done"
	}

	intent := m.coordinator.BeginFetch(m.stack.Current())
	return m, tea.Batch(
		m.showMessage(messageInfo, text),
		m.loadLevel(intent),
	)
}

// pageSize is the number of rows one PageUp/PageDown jump covers.
func (m *Model) pageSize() int {
	size := m.height - 6
	if size < 1 {
		size = 1
	}
	return size
}
