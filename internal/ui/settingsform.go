package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickwheel/quickwheel/internal/wheel"
)

// settingsField describes one numeric input with its allowed range.
type settingsField struct {
	name  string
	min   int
	max   int
	input textinput.Model
}

// SettingsForm edits the numeric wheel settings. Colors and activation keys
// stay file-only, as in the original dialog.
type SettingsForm struct {
	base   wheel.Settings
	fields []settingsField
	focus  int
	err    string
}

// NewSettingsForm builds the form from the current settings.
func NewSettingsForm(s wheel.Settings) *SettingsForm {
	f := &SettingsForm{base: s}
	f.fields = []settingsField{
		newSettingsField("wheel radius (px)", s.WheelRadius, 100, 400),
		newSettingsField("inner radius (px)", s.InnerRadius, 20, 150),
		newSettingsField("folder dwell (ms)", s.DwellMs, 100, 2000),
		newSettingsField("auto-continue extra (ms)", s.AutoContinueExtraMs, 0, 2000),
	}
	f.fields[0].input.Focus()
	return f
}

func newSettingsField(name string, value, min, max int) settingsField {
	input := textinput.New()
	input.SetValue(strconv.Itoa(value))
	input.CharLimit = 5
	input.Width = 6
	return settingsField{name: name, min: min, max: max, input: input}
}

// Settings returns the edited settings. Call only after Update reported done.
func (f *SettingsForm) Settings() wheel.Settings {
	s := f.base
	s.WheelRadius = f.intValue(0)
	s.InnerRadius = f.intValue(1)
	s.DwellMs = f.intValue(2)
	s.AutoContinueExtraMs = f.intValue(3)
	return s
}

func (f *SettingsForm) intValue(idx int) int {
	v, err := strconv.Atoi(strings.TrimSpace(f.fields[idx].input.Value()))
	if err != nil {
		return 0
	}
	return v
}

// Update consumes one message and reports (cmd, done, cancel).
func (f *SettingsForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg), false, false
	}
	switch key.String() {
	case "esc":
		return nil, false, true
	case "tab", "down":
		f.moveFocus(1)
		return nil, false, false
	case "shift+tab", "up":
		f.moveFocus(-1)
		return nil, false, false
	case "enter":
		if err := f.validate(); err != "" {
			f.err = err
			return nil, false, false
		}
		f.err = ""
		return nil, true, false
	}
	return f.updateFocused(msg), false, false
}

func (f *SettingsForm) validate() string {
	for i := range f.fields {
		field := &f.fields[i]
		v, err := strconv.Atoi(strings.TrimSpace(field.input.Value()))
		if err != nil {
			return fmt.Sprintf("%s: not a number", field.name)
		}
		if v < field.min || v > field.max {
			return fmt.Sprintf("%s must be within %d..%d", field.name, field.min, field.max)
		}
	}
	if f.intValue(1) >= f.intValue(0) {
		return "inner radius must be smaller than the wheel radius"
	}
	return ""
}

func (f *SettingsForm) moveFocus(dir int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + dir + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *SettingsForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}
