// Package engine owns the dwell-driven navigation state machine and the
// activation controller. All state is touched from a single goroutine: the
// poll tick drives hover evaluation, and the dwell deadline is checked on the
// same tick, so the core needs no locks.
package engine

import (
	"time"

	"github.com/quickwheel/quickwheel/internal/geometry"
	"github.com/quickwheel/quickwheel/internal/logging"
	"github.com/quickwheel/quickwheel/internal/logging/events"
	"github.com/quickwheel/quickwheel/internal/wheel"
)

// Engine combines the navigation cursor, hover state, and dwell timing over a
// folder graph store.
type Engine struct {
	store     *wheel.Store
	exec      Executor
	clock     Clock
	clearMode SuppressionClear

	active         bool
	cursor         []string
	hover          HoverState
	dwellDeadline  time.Time
	dwellIndex     int
	justNavigated  bool
	rearmPending   bool
	suppressCommit bool
}

// New creates an engine over the given store. A nil clock selects the system
// clock; a nil executor drops dispatches.
func New(store *wheel.Store, exec Executor, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	e := &Engine{store: store, exec: exec, clock: clock}
	e.hover.reset()
	return e
}

// SetSuppressionClear selects the post-navigation suppression clearing rule.
func (e *Engine) SetSuppressionClear(mode SuppressionClear) {
	e.clearMode = mode
}

// Active reports whether the overlay session is live.
func (e *Engine) Active() bool { return e.active }

// Cursor returns a copy of the navigation cursor.
func (e *Engine) Cursor() []string {
	return append([]string(nil), e.cursor...)
}

// Hover returns the current hover state.
func (e *Engine) Hover() HoverState { return e.hover }

// Settings returns the live settings.
func (e *Engine) Settings() wheel.Settings { return e.store.Settings() }

// ApplySettings replaces the settings and persists them.
func (e *Engine) ApplySettings(s wheel.Settings) {
	e.store.ApplySettings(s)
}

// Orphans lists unreachable folder ids, for the editor's restore picker.
func (e *Engine) Orphans() []string {
	return e.store.FindOrphans()
}

// ActivateAtRoot opens a fresh overlay session: cursor back to root, hover and
// suppression cleared, no pending dwell.
func (e *Engine) ActivateAtRoot() {
	e.active = true
	e.cursor = e.cursor[:0]
	e.hover.reset()
	e.cancelDwell()
	e.justNavigated = false
	e.rearmPending = false
	e.suppressCommit = false
	events.Session.Activated()
}

// OnTick feeds one cursor sample, as an offset from the wheel center, through
// hit-testing and the hover state machine. It reports whether a navigation
// happened, i.e. the view must re-render a different folder.
func (e *Engine) OnTick(dx, dy float64) bool {
	if !e.active {
		return false
	}
	s := e.store.Settings()
	target := geometry.HitTest(dx, dy, geometry.ForWheel(float64(s.InnerRadius), float64(s.WheelRadius)))
	switch target.Kind {
	case geometry.TargetSettings:
		e.enterSettings()
		return false
	case geometry.TargetSlot:
		return e.evaluateSlot(target.Slot)
	default:
		e.enterIdle()
		return false
	}
}

func (e *Engine) enterSettings() {
	e.justNavigated = false
	e.rearmPending = false
	if e.hover.Settings {
		return
	}
	e.cancelDwell()
	e.hover.Index = -1
	e.hover.Settings = true
	events.Wheel.Hover(-1, true)
}

// enterIdle handles the dead zone and the outside region. Leaving the wheel is
// an intentional reset: both suppression flags clear here.
func (e *Engine) enterIdle() {
	e.justNavigated = false
	e.rearmPending = false
	if e.hover.Index == -1 && !e.hover.Settings && !e.hover.Suppressed.any() {
		return
	}
	e.cancelDwell()
	e.hover.reset()
	events.Wheel.Hover(-1, false)
}

func (e *Engine) evaluateSlot(index int) bool {
	first := e.justNavigated
	e.justNavigated = false
	changed := first || e.hover.Settings || index != e.hover.Index
	if !changed {
		if !e.dwellDeadline.IsZero() {
			if index == e.dwellIndex && !e.clock.Now().Before(e.dwellDeadline) {
				return e.fireDwell(index)
			}
			return false
		}
		if e.rearmPending {
			e.rearmPending = false
			e.maybeArm(index, false)
		}
		return false
	}
	e.cancelDwell()
	if !first && index != e.hover.Index {
		// The hovered slot actually moved somewhere else: suppression is done.
		e.hover.Suppressed = Suppression{}
	}
	e.hover.Index = index
	e.hover.Settings = false
	events.Wheel.Hover(index, false)
	e.maybeArm(index, first)
	return false
}

// maybeArm arms the dwell deadline for a navigation slot unless suppressed.
// The extended duration applies on the first evaluation after a navigation,
// giving the user time to read the newly revealed folder.
func (e *Engine) maybeArm(index int, extended bool) {
	slot := e.currentFolder().Slots[index]
	if !slot.IsNavigation() {
		return
	}
	suppressed := (slot.Action == wheel.ActionBack && e.hover.Suppressed.Back) ||
		(slot.Action == wheel.ActionFolder && e.hover.Suppressed.Folder)
	if suppressed {
		events.Wheel.DwellSuppressed(index, string(slot.Action))
		if e.clearMode == ClearOnObservation {
			e.hover.Suppressed = Suppression{}
			e.rearmPending = true
		}
		return
	}
	d := time.Duration(e.store.Settings().DwellMs) * time.Millisecond
	if extended {
		d += time.Duration(e.store.Settings().AutoContinueExtraMs) * time.Millisecond
	}
	e.dwellDeadline = e.clock.Now().Add(d)
	e.dwellIndex = index
	events.Wheel.DwellArmed(index, int(d/time.Millisecond))
}

// fireDwell performs the navigation for an elapsed dwell and re-arms hover
// evaluation from a synthetic just-transitioned state, so the slot now under
// the cursor gets the extended dwell and suppression rules without the mouse
// moving.
func (e *Engine) fireDwell(index int) bool {
	e.cancelDwell()
	slot := e.currentFolder().Slots[index]
	events.Wheel.DwellFired(index, string(slot.Action))
	switch slot.Action {
	case wheel.ActionFolder:
		id := slot.Value
		if id == "" {
			return false
		}
		if !e.store.Has(id) {
			e.store.CreateFolder(id)
		}
		e.cursor = append(e.cursor, id)
		e.hover.Suppressed = Suppression{Back: true}
		e.justNavigated = true
		events.Nav.Push(id, len(e.cursor))
		return true
	case wheel.ActionBack:
		if len(e.cursor) > 0 {
			e.cursor = e.cursor[:len(e.cursor)-1]
		}
		e.hover.Suppressed = Suppression{Folder: true}
		e.justNavigated = true
		events.Nav.Pop(len(e.cursor))
		return true
	}
	return false
}

// DeactivateAndCommit closes the session and finalizes the selection as of
// this instant: the hovered slot and the folder the cursor pointed at right
// now, regardless of any dwell navigation that was still pending.
func (e *Engine) DeactivateAndCommit() Commit {
	if !e.active {
		return Commit{Kind: CommitNone, Index: -1}
	}
	folder := e.currentFolder()
	path := append([]string(nil), e.cursor...)
	index := e.hover.Index
	settings := e.hover.Settings
	suppressed := e.suppressCommit

	e.active = false
	e.cancelDwell()
	e.hover.reset()
	e.justNavigated = false
	e.rearmPending = false
	e.suppressCommit = false
	events.Session.Deactivated(index, settings)

	if suppressed {
		return Commit{Kind: CommitNone, Index: -1}
	}
	if settings {
		return Commit{Kind: CommitSettings, Index: -1}
	}
	if index < 0 || index >= wheel.NumSlots {
		return Commit{Kind: CommitNone, Index: -1}
	}
	slot := folder.Slots[index]
	switch slot.Action {
	case wheel.ActionNone:
		return Commit{Kind: CommitEdit, Path: path, Index: index}
	case wheel.ActionFolder, wheel.ActionBack:
		// Navigation happens via dwell, never via release.
		return Commit{Kind: CommitNone, Index: -1}
	default:
		e.dispatch(slot)
		return Commit{Kind: CommitAction, Action: slot.Action, Value: slot.Value, Path: path, Index: index}
	}
}

// OnPrimaryClick commits the hovered target immediately, closing the overlay
// without waiting for the activation keys to release. Clicking the dead zone
// does nothing.
func (e *Engine) OnPrimaryClick() Commit {
	if !e.active || (!e.hover.Settings && e.hover.Index < 0) {
		return Commit{Kind: CommitNone, Index: -1}
	}
	return e.DeactivateAndCommit()
}

// OnSecondaryClick requests the slot editor for the hovered slot and
// suppresses the release-commit that would otherwise follow. The back slot is
// not editable.
func (e *Engine) OnSecondaryClick() Commit {
	if !e.active || e.hover.Index < 0 {
		return Commit{Kind: CommitNone, Index: -1}
	}
	folder := e.currentFolder()
	if folder.Slots[e.hover.Index].Action == wheel.ActionBack {
		return Commit{Kind: CommitNone, Index: -1}
	}
	e.suppressCommit = true
	return Commit{Kind: CommitEdit, Path: append([]string(nil), e.cursor...), Index: e.hover.Index}
}

// EditSlot returns a draft copy of a slot for editing.
func (e *Engine) EditSlot(path []string, index int) (wheel.Slot, error) {
	folder, err := e.store.Resolve(path)
	if err != nil {
		return wheel.Slot{}, err
	}
	if index < 0 || index >= wheel.NumSlots {
		return wheel.Slot{}, wheel.ErrInvalidIndex
	}
	if index == wheel.BackIndex && folder.HasBackSlot() {
		return wheel.Slot{}, wheel.ErrInvalidIndex
	}
	return folder.Slots[index], nil
}

// CommitSlotEdit writes an edited slot back. A folder slot without a child id
// gets a freshly minted one; reusing an orphan's id reattaches its subtree.
func (e *Engine) CommitSlotEdit(path []string, index int, slot wheel.Slot) error {
	if slot.Action == wheel.ActionFolder && slot.Value == "" {
		slot.Value = wheel.NewFolderID()
	}
	return e.store.SetSlot(path, index, slot)
}

// Snapshot assembles what the renderer needs for the current tick.
func (e *Engine) Snapshot() Snapshot {
	folder := e.currentFolder()
	snap := Snapshot{
		Slots:         folder.Slots,
		HoverIndex:    e.hover.Index,
		HoverSettings: e.hover.Settings,
		Depth:         len(e.cursor),
	}
	if len(e.cursor) > 0 {
		if parent, err := e.store.Resolve(e.cursor[:len(e.cursor)-1]); err == nil {
			current := e.cursor[len(e.cursor)-1]
			for i := range parent.Slots {
				if parent.Slots[i].Action == wheel.ActionFolder && parent.Slots[i].Value == current {
					meta := parent.Slots[i]
					snap.Parent = &meta
					break
				}
			}
		}
	}
	return snap
}

// currentFolder resolves the navigation cursor, falling back to root with an
// empty cursor when the id dangles. The tick loop never aborts on this.
func (e *Engine) currentFolder() *wheel.Folder {
	folder, err := e.store.Resolve(e.cursor)
	if err != nil {
		logging.Error(err)
		events.Nav.Reset("resolve-failed")
		e.cursor = e.cursor[:0]
		return e.store.Root()
	}
	return folder
}

func (e *Engine) dispatch(slot wheel.Slot) {
	events.Action.Dispatch(string(slot.Action), slot.Value)
	if e.exec == nil {
		return
	}
	e.exec.Execute(slot.Action, slot.Value)
}

func (e *Engine) cancelDwell() {
	e.dwellDeadline = time.Time{}
	e.dwellIndex = -1
}
