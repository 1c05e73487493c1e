package engine

import "github.com/quickwheel/quickwheel/internal/wheel"

// CommitKind classifies what a deactivation or click resolved to.
type CommitKind int

const (
	// CommitNone means nothing fires: no hover, a navigation slot, or a
	// commit suppressed by a prior edit click.
	CommitNone CommitKind = iota
	// CommitAction means an executable action was dispatched.
	CommitAction
	// CommitEdit requests the slot editor for Path/Index.
	CommitEdit
	// CommitSettings requests the settings dialog.
	CommitSettings
)

// Commit is the finalized selection handed to the activation controller's
// caller when the overlay closes.
type Commit struct {
	Kind   CommitKind
	Action wheel.ActionType
	Value  string
	Path   []string
	Index  int
}

// Executor performs a committed action. Implementations must not block: the
// core fires and forgets.
type Executor interface {
	Execute(action wheel.ActionType, value string)
}

// Snapshot is what the renderer consumes each tick.
type Snapshot struct {
	Slots         [wheel.NumSlots]wheel.Slot
	HoverIndex    int
	HoverSettings bool
	Depth         int
	// Parent is the folder-typed slot in the enclosing folder that references
	// the current one; shown in the wheel center when inside a folder.
	Parent *wheel.Slot
}
