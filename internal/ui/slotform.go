package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	uistate "github.com/quickwheel/quickwheel/internal/ui/state"
	"github.com/quickwheel/quickwheel/internal/wheel"
)

type slotFormFocus int

const (
	focusLabel slotFormFocus = iota
	focusType
	focusValue
	focusFolder
)

// newFolderID is the picker entry that mints a fresh child folder on commit.
const newFolderID = ""

// SlotForm edits one slot: label, action type, and the type-specific value.
// For folder slots the value is picked from a list of orphaned folder ids, so
// a detached subtree can be reattached instead of creating a new child.
type SlotForm struct {
	path  []string
	index int
	draft wheel.Slot

	label   textinput.Model
	value   textinput.Model
	filter  textinput.Model
	types   *uistate.Picker
	folders *uistate.Picker
	focus   slotFormFocus
	err     string
}

var actionTypeItems = []uistate.Item{
	{ID: string(wheel.ActionKeystroke), Label: "Keystroke"},
	{ID: string(wheel.ActionCommand), Label: "Command"},
	{ID: string(wheel.ActionLaunch), Label: "Launch program"},
	{ID: string(wheel.ActionFolder), Label: "Folder"},
}

// NewSlotForm builds the editor pre-populated from the draft slot.
func NewSlotForm(path []string, index int, draft wheel.Slot, orphans []string) *SlotForm {
	label := textinput.New()
	label.Placeholder = "label"
	label.CharLimit = 64
	if draft.IsSet() {
		label.SetValue(draft.Label)
	}
	label.Focus()

	value := textinput.New()
	value.Placeholder = "value"
	value.CharLimit = 256
	if draft.Action != wheel.ActionFolder {
		value.SetValue(draft.Value)
	}

	filter := textinput.New()
	filter.Placeholder = "filter folders"
	filter.CharLimit = 64

	folderItems := make([]uistate.Item, 0, len(orphans)+2)
	folderItems = append(folderItems, uistate.Item{ID: newFolderID, Label: "Create new folder"})
	if draft.Action == wheel.ActionFolder && draft.Value != "" {
		folderItems = append(folderItems, uistate.Item{ID: draft.Value, Label: draft.Value + " (current)"})
	}
	for _, id := range orphans {
		folderItems = append(folderItems, uistate.Item{ID: id, Label: id + " (orphaned)"})
	}

	f := &SlotForm{
		path:    append([]string(nil), path...),
		index:   index,
		draft:   draft,
		label:   label,
		value:   value,
		filter:  filter,
		types:   uistate.NewPicker(actionTypeItems),
		folders: uistate.NewPicker(folderItems),
	}
	if draft.IsSet() {
		f.types.Select(string(draft.Action))
		if draft.Action == wheel.ActionFolder {
			f.folders.Select(draft.Value)
		}
	}
	return f
}

// Target returns the folder path and slot index being edited.
func (f *SlotForm) Target() ([]string, int) {
	return f.path, f.index
}

// Slot assembles the edited slot from the form fields.
func (f *SlotForm) Slot() wheel.Slot {
	slot := wheel.Slot{
		Label:     strings.TrimSpace(f.label.Value()),
		Action:    f.selectedAction(),
		ShowLabel: true,
		Icon:      f.draft.Icon,
	}
	if slot.Action == wheel.ActionFolder {
		if item, ok := f.folders.Selected(); ok {
			slot.Value = item.ID
		}
	} else {
		slot.Value = strings.TrimSpace(f.value.Value())
	}
	if slot.Label == "" {
		slot.Label = slot.Value
	}
	return slot
}

// Update consumes one message and reports (cmd, done, cancel).
func (f *SlotForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg), false, false
	}
	switch key.String() {
	case "esc":
		return nil, false, true
	case "tab":
		f.cycleFocus(1)
		return nil, false, false
	case "shift+tab":
		f.cycleFocus(-1)
		return nil, false, false
	case "up":
		f.moveCursor(-1)
		return nil, false, false
	case "down":
		f.moveCursor(1)
		return nil, false, false
	case "enter":
		if err := f.validate(); err != "" {
			f.err = err
			return nil, false, false
		}
		f.err = ""
		return nil, true, false
	}
	return f.updateInputs(msg), false, false
}

func (f *SlotForm) validate() string {
	action := f.selectedAction()
	if action == wheel.ActionNone {
		return "pick an action type"
	}
	if action != wheel.ActionFolder && strings.TrimSpace(f.value.Value()) == "" {
		return "value must not be empty"
	}
	return ""
}

func (f *SlotForm) selectedAction() wheel.ActionType {
	item, ok := f.types.Selected()
	if !ok {
		return wheel.ActionNone
	}
	return wheel.ActionType(item.ID)
}

func (f *SlotForm) moveCursor(dir int) {
	switch f.focus {
	case focusType:
		if dir < 0 {
			f.types.MoveUp()
		} else {
			f.types.MoveDown()
		}
	case focusFolder:
		if dir < 0 {
			f.folders.MoveUp()
		} else {
			f.folders.MoveDown()
		}
	}
}

func (f *SlotForm) cycleFocus(dir int) {
	order := []slotFormFocus{focusLabel, focusType, focusValue}
	if f.selectedAction() == wheel.ActionFolder {
		order = []slotFormFocus{focusLabel, focusType, focusFolder}
	}
	idx := 0
	for i, focus := range order {
		if focus == f.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(order)) % len(order)
	f.focus = order[idx]

	f.label.Blur()
	f.value.Blur()
	f.filter.Blur()
	switch f.focus {
	case focusLabel:
		f.label.Focus()
	case focusValue:
		f.value.Focus()
	case focusFolder:
		f.filter.Focus()
	}
}

func (f *SlotForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusLabel:
		f.label, cmd = f.label.Update(msg)
	case focusValue:
		f.value, cmd = f.value.Update(msg)
	case focusFolder:
		f.filter, cmd = f.filter.Update(msg)
		f.folders.SetFilter(f.filter.Value())
	}
	return cmd
}
