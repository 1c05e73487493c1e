package engine

// Suppression blocks dwell arming right after a navigation so the new layout
// cannot immediately bounce the user back where they came from.
type Suppression struct {
	Back   bool
	Folder bool
}

func (s Suppression) any() bool { return s.Back || s.Folder }

// HoverState is the per-activation hover snapshot: the hovered slot index
// (-1 for the dead zone or outside the wheel), whether the settings button is
// hovered, and the active suppression flags. Reset on every show.
type HoverState struct {
	Index      int
	Settings   bool
	Suppressed Suppression
}

func (h *HoverState) reset() {
	h.Index = -1
	h.Settings = false
	h.Suppressed = Suppression{}
}

// SuppressionClear selects when post-navigation suppression flags clear. The
// original's intent is ambiguous between the two, so both are supported and
// tested.
type SuppressionClear int

const (
	// ClearOnSlotChange keeps a flag until the hovered slot changes to a
	// different index, or the cursor leaves the wheel.
	ClearOnSlotChange SuppressionClear = iota
	// ClearOnObservation consumes a flag after the first hover evaluation it
	// blocks, so the same slot re-arms on the following tick.
	ClearOnObservation
)
