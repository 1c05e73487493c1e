package ui

import (
	"fmt"
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickwheel/quickwheel/internal/engine"
	"github.com/quickwheel/quickwheel/internal/hotkey"
	"github.com/quickwheel/quickwheel/internal/theme"
)

// Mode selects which surface owns keyboard input.
type Mode int

const (
	ModeWheel Mode = iota
	ModeSlotForm
	ModeSettingsForm
)

// pollInterval matches the cursor sampling rate of the overlay: the engine
// re-evaluates hover and dwell on every tick.
const pollInterval = 16 * time.Millisecond

type msgHandler func(tea.Msg) tea.Cmd

type tickMsg time.Time

// Model implements the Bubble Tea model for the wheel overlay preview.
type Model struct {
	engine  *engine.Engine
	styles  *theme.Styles
	keys    *keySource
	watcher *hotkey.Watcher

	width     int
	height    int
	mouseX    int
	mouseY    int
	haveMouse bool

	errMsg         string
	infoMsg        string
	fallbackNotice bool

	mode         Mode
	slotForm     *SlotForm
	settingsForm *SettingsForm

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the engine to a terminal front end. The activation chord from
// the stored settings is driven by keyboard shortcuts, since terminals deliver
// no key-release events: "a" holds the chord, enter or space releases it.
func NewModel(eng *engine.Engine, fallbackNotice bool) *Model {
	s := eng.Settings()
	chord := hotkey.NewChord(s.ActivationKeys[0], s.ActivationKeys[1])
	keys := newKeySource(chord)
	m := &Model{
		engine:         eng,
		styles:         theme.FromPalette(s.Colors),
		keys:           keys,
		watcher:        hotkey.NewWatcher(chord, keys),
		fallbackNotice: fallbackNotice,
		mode:           ModeWheel,
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		waitForSignal(m.watcher),
		func() tea.Msg { m.keys.Hold(); return nil },
	)
}

// Update responds to Bubble Tea messages. Key and mouse input goes to the
// active form first; everything else is routed through the handler registry.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		if handled, cmd := m.handleActiveForm(msg); handled {
			return m, cmd
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg(time.Time{})): m.handleTickMsg,
		reflect.TypeOf(signalMsg{}):          m.handleSignalMsg,
		reflect.TypeOf(signalDoneMsg{}):      m.handleSignalDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	if m.engine.Active() && m.haveMouse {
		dx, dy := m.pointerOffset()
		m.engine.OnTick(dx, dy)
	}
	return tickCmd()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		m.watcher.Stop()
		m.keys.Close()
		return tea.Quit
	case "a":
		if !m.engine.Active() {
			m.errMsg = ""
			m.infoMsg = ""
			m.keys.Hold()
		}
	case "enter", " ":
		if m.engine.Active() {
			m.keys.Release()
		}
	case "s":
		if !m.engine.Active() {
			m.openSettingsForm()
		}
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	m.mouseX = mouse.X
	m.mouseY = mouse.Y
	m.haveMouse = true
	if mouse.Action != tea.MouseActionPress {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonLeft:
		m.applyCommit(m.engine.OnPrimaryClick())
	case tea.MouseButtonRight:
		commit := m.engine.OnSecondaryClick()
		if commit.Kind == engine.CommitEdit {
			// The overlay closes without committing; the editor takes over.
			m.engine.DeactivateAndCommit()
			m.openSlotForm(commit.Path, commit.Index)
		}
	}
	return nil
}

func (m *Model) handleSignalMsg(msg tea.Msg) tea.Cmd {
	sig, ok := msg.(signalMsg)
	if !ok {
		return nil
	}
	switch sig.signal {
	case hotkey.SignalActivated:
		m.errMsg = ""
		m.infoMsg = ""
		m.engine.ActivateAtRoot()
	case hotkey.SignalDeactivated:
		m.applyCommit(m.engine.DeactivateAndCommit())
	}
	return waitForSignal(m.watcher)
}

func (m *Model) handleSignalDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) applyCommit(c engine.Commit) {
	switch c.Kind {
	case engine.CommitAction:
		m.infoMsg = fmt.Sprintf("dispatched %s: %s", c.Action, c.Value)
	case engine.CommitEdit:
		m.openSlotForm(c.Path, c.Index)
	case engine.CommitSettings:
		m.openSettingsForm()
	}
}

func (m *Model) openSlotForm(path []string, index int) {
	draft, err := m.engine.EditSlot(path, index)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.slotForm = NewSlotForm(path, index, draft, m.engine.Orphans())
	m.mode = ModeSlotForm
}

func (m *Model) openSettingsForm() {
	m.settingsForm = NewSettingsForm(m.engine.Settings())
	m.mode = ModeSettingsForm
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeSlotForm:
		return m.handleSlotForm(msg)
	case ModeSettingsForm:
		return m.handleSettingsForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) handleSlotForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.slotForm == nil {
		m.mode = ModeWheel
		return false, nil
	}
	cmd, done, cancel := m.slotForm.Update(msg)
	if cancel {
		m.slotForm = nil
		m.mode = ModeWheel
		return true, cmd
	}
	if done {
		path, index := m.slotForm.Target()
		slot := m.slotForm.Slot()
		m.slotForm = nil
		m.mode = ModeWheel
		if err := m.engine.CommitSlotEdit(path, index, slot); err != nil {
			m.errMsg = err.Error()
		} else {
			m.infoMsg = fmt.Sprintf("saved slot %d", index)
		}
		return true, cmd
	}
	return true, cmd
}

func (m *Model) handleSettingsForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.settingsForm == nil {
		m.mode = ModeWheel
		return false, nil
	}
	cmd, done, cancel := m.settingsForm.Update(msg)
	if cancel {
		m.settingsForm = nil
		m.mode = ModeWheel
		return true, cmd
	}
	if done {
		settings := m.settingsForm.Settings()
		m.settingsForm = nil
		m.mode = ModeWheel
		m.engine.ApplySettings(settings)
		m.styles = theme.FromPalette(settings.Colors)
		m.infoMsg = "settings saved"
		return true, cmd
	}
	return true, cmd
}

// pointerOffset converts the last mouse cell into a pixel offset from the
// wheel center, using the same cell scales and center as the renderer. The
// header row sits above the grid, hence the +1 on the vertical center.
func (m *Model) pointerOffset() (float64, float64) {
	_, _, cx, cy := m.wheelGrid()
	dx := float64(m.mouseX-cx) * cellWidthPx
	dy := float64(m.mouseY-(cy+1)) * cellHeightPx
	return dx, dy
}

// wheelGrid reports the wheel canvas dimensions and its center in grid
// coordinates. One row each is reserved for the header and the footer.
func (m *Model) wheelGrid() (w, h, cx, cy int) {
	w, h = m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	h -= 2
	if h < 3 {
		h = 3
	}
	return w, h, w / 2, h / 2
}
