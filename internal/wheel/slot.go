package wheel

// NumSlots is the fixed number of segments in every folder.
const NumSlots = 8

// BackIndex is the slot reserved for the back action in non-root folders.
const BackIndex = 7

// ActionType enumerates what a slot does when committed.
type ActionType string

const (
	ActionNone      ActionType = ""
	ActionKeystroke ActionType = "keystroke"
	ActionCommand   ActionType = "command"
	ActionLaunch    ActionType = "launch"
	ActionFolder    ActionType = "folder"
	ActionBack      ActionType = "back"
)

// IconKind distinguishes how Icon.Data should be interpreted by a renderer.
type IconKind string

const (
	IconEmoji IconKind = "emoji"
	IconImage IconKind = "image"
)

// Icon is an opaque icon reference passed through to the renderer. The core
// never validates that an image path exists.
type Icon struct {
	Kind IconKind `json:"kind"`
	Data string   `json:"data"`
}

// Slot is one of the eight positions in a folder. Value holds the keystroke
// sequence, command line, program path, or child folder id depending on the
// action type.
type Slot struct {
	Label     string     `json:"label"`
	Action    ActionType `json:"type"`
	Value     string     `json:"value,omitempty"`
	Icon      *Icon      `json:"icon,omitempty"`
	ShowLabel bool       `json:"show_label"`
}

const unsetLabel = "Select to add action"

// EmptySlot returns an unconfigured slot.
func EmptySlot() Slot {
	return Slot{Label: unsetLabel, Action: ActionNone, ShowLabel: true}
}

// BackSlot returns the fixed back slot placed at BackIndex of every subfolder.
func BackSlot() Slot {
	return Slot{Label: "Back", Action: ActionBack, ShowLabel: true}
}

// IsNavigation reports whether dwelling on the slot triggers navigation
// instead of a release-commit.
func (s Slot) IsNavigation() bool {
	return s.Action == ActionFolder || s.Action == ActionBack
}

// IsSet reports whether the slot has an action configured.
func (s Slot) IsSet() bool {
	return s.Action != ActionNone
}
