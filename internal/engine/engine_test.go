package engine

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/quickwheel/quickwheel/internal/geometry"
	"github.com/quickwheel/quickwheel/internal/wheel"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingExecutor struct {
	actions []wheel.ActionType
	values  []string
}

func (r *recordingExecutor) Execute(action wheel.ActionType, value string) {
	r.actions = append(r.actions, action)
	r.values = append(r.values, value)
}

// testGraph builds root -> "sub" -> "deep" with a command on root slot 1 and
// an empty slot at root index 2.
func testGraph() *wheel.Store {
	doc := wheel.DefaultDocument()
	doc.Root.Slots[0] = wheel.Slot{Label: "apps", Action: wheel.ActionFolder, Value: "sub", ShowLabel: true}
	doc.Root.Slots[1] = wheel.Slot{Label: "run", Action: wheel.ActionCommand, Value: "true", ShowLabel: true}
	sub := wheel.NewSubfolder()
	sub.Slots[0] = wheel.Slot{Label: "more", Action: wheel.ActionFolder, Value: "deep", ShowLabel: true}
	doc.Folders["sub"] = sub
	doc.Folders["deep"] = wheel.NewSubfolder()
	return wheel.NewStore(doc, nil)
}

func newTestEngine() (*Engine, *fakeClock, *recordingExecutor) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	exec := &recordingExecutor{}
	eng := New(testGraph(), exec, clock)
	eng.ActivateAtRoot()
	return eng, clock, exec
}

// slotPoint is a cursor offset in the middle of the given segment.
func slotPoint(index int) (float64, float64) {
	angle := geometry.SlotCenterAngle(index)
	return math.Cos(angle) * 115, math.Sin(angle) * 115
}

func tickAt(e *Engine, index int) bool {
	dx, dy := slotPoint(index)
	return e.OnTick(dx, dy)
}

func dwell() time.Duration { return 400 * time.Millisecond }

func TestDwellNavigatesIntoFolder(t *testing.T) {
	eng, clock, _ := newTestEngine()
	if tickAt(eng, 0) {
		t.Fatalf("arming tick must not navigate")
	}
	clock.advance(dwell() - time.Millisecond)
	if tickAt(eng, 0) {
		t.Fatalf("navigated before the dwell elapsed")
	}
	clock.advance(2 * time.Millisecond)
	if !tickAt(eng, 0) {
		t.Fatalf("expected navigation after the dwell elapsed")
	}
	if cursor := eng.Cursor(); len(cursor) != 1 || cursor[0] != "sub" {
		t.Fatalf("expected cursor [sub], got %v", cursor)
	}
}

func TestActionSlotNeverNavigates(t *testing.T) {
	eng, clock, exec := newTestEngine()
	for i := 0; i < 10; i++ {
		if tickAt(eng, 1) {
			t.Fatalf("command slot navigated")
		}
		clock.advance(time.Second)
	}
	if len(exec.actions) != 0 {
		t.Fatalf("hovering dispatched an action")
	}
	if !eng.Active() {
		t.Fatalf("engine deactivated without a release")
	}
}

func TestDwellCancelledBySlotChange(t *testing.T) {
	eng, clock, _ := newTestEngine()
	tickAt(eng, 0)
	clock.advance(dwell() / 2)
	tickAt(eng, 1)
	clock.advance(dwell())
	if tickAt(eng, 1) {
		t.Fatalf("stale dwell fired on a different slot")
	}
	if len(eng.Cursor()) != 0 {
		t.Fatalf("expected cursor still at root")
	}
}

func navigateInto(t *testing.T, eng *Engine, clock *fakeClock, index int) {
	t.Helper()
	tickAt(eng, index)
	clock.advance(dwell() + time.Millisecond)
	if !tickAt(eng, index) {
		t.Fatalf("expected navigation from slot %d", index)
	}
}

func TestBackSuppressedAfterFolderEntry(t *testing.T) {
	eng, clock, _ := newTestEngine()
	navigateInto(t, eng, clock, 0)

	// The cursor lands on the back slot of the new folder without moving far.
	tickAt(eng, wheel.BackIndex)
	clock.advance(10 * time.Second)
	if tickAt(eng, wheel.BackIndex) {
		t.Fatalf("suppressed back slot navigated")
	}
	if len(eng.Cursor()) != 1 {
		t.Fatalf("expected to stay inside the folder")
	}

	// Moving to a different slot clears the suppression; back then works.
	tickAt(eng, 2)
	tickAt(eng, wheel.BackIndex)
	clock.advance(dwell() + time.Millisecond)
	if !tickAt(eng, wheel.BackIndex) {
		t.Fatalf("expected back navigation after suppression cleared")
	}
	if len(eng.Cursor()) != 0 {
		t.Fatalf("expected cursor back at root, got %v", eng.Cursor())
	}
}

func TestFolderSuppressedAfterBack(t *testing.T) {
	eng, clock, _ := newTestEngine()
	navigateInto(t, eng, clock, 0)
	tickAt(eng, 2) // clear back suppression
	tickAt(eng, wheel.BackIndex)
	clock.advance(dwell() + time.Millisecond)
	if !tickAt(eng, wheel.BackIndex) {
		t.Fatalf("expected pop to root")
	}

	// Root slot 0 is a folder slot at the same heading the cursor still has.
	tickAt(eng, 0)
	clock.advance(10 * time.Second)
	if tickAt(eng, 0) {
		t.Fatalf("suppressed folder slot re-entered immediately after back")
	}
}

func TestExtendedDwellAfterNavigation(t *testing.T) {
	eng, clock, _ := newTestEngine()
	navigateInto(t, eng, clock, 0)

	// First evaluation after entering "sub" hovers its folder slot 0: the
	// deadline is dwell + the auto-continue extra.
	tickAt(eng, 0)
	clock.advance(dwell() + 100*time.Millisecond)
	if tickAt(eng, 0) {
		t.Fatalf("navigated before the extended dwell elapsed")
	}
	clock.advance(101 * time.Millisecond)
	if !tickAt(eng, 0) {
		t.Fatalf("expected navigation after the extended dwell")
	}
	if cursor := eng.Cursor(); len(cursor) != 2 || cursor[1] != "deep" {
		t.Fatalf("expected cursor [sub deep], got %v", cursor)
	}
}

func TestLeavingWheelClearsSuppression(t *testing.T) {
	eng, clock, _ := newTestEngine()
	navigateInto(t, eng, clock, 0)
	tickAt(eng, wheel.BackIndex) // suppressed
	eng.OnTick(0, 0)             // dead zone resets hover and suppression
	tickAt(eng, wheel.BackIndex)
	clock.advance(dwell() + time.Millisecond)
	if !tickAt(eng, wheel.BackIndex) {
		t.Fatalf("expected back to arm after an idle reset")
	}
}

func TestSuppressionClearOnObservation(t *testing.T) {
	eng, clock, _ := newTestEngine()
	eng.SetSuppressionClear(ClearOnObservation)
	navigateInto(t, eng, clock, 0)

	// First evaluation is blocked but consumes the flag; the next tick re-arms
	// without the cursor ever moving.
	tickAt(eng, wheel.BackIndex)
	tickAt(eng, wheel.BackIndex)
	clock.advance(dwell() + time.Millisecond)
	if !tickAt(eng, wheel.BackIndex) {
		t.Fatalf("expected back navigation under observation clearing")
	}
	if len(eng.Cursor()) != 0 {
		t.Fatalf("expected cursor at root, got %v", eng.Cursor())
	}
}

func TestDeactivateCommitsHoveredAction(t *testing.T) {
	eng, _, exec := newTestEngine()
	tickAt(eng, 1)
	commit := eng.DeactivateAndCommit()
	if commit.Kind != CommitAction || commit.Action != wheel.ActionCommand || commit.Value != "true" {
		t.Fatalf("unexpected commit %+v", commit)
	}
	if len(exec.actions) != 1 || exec.actions[0] != wheel.ActionCommand || exec.values[0] != "true" {
		t.Fatalf("executor not invoked: %+v %+v", exec.actions, exec.values)
	}
	if eng.Active() {
		t.Fatalf("engine still active after commit")
	}
}

func TestDeactivateWithPendingDwellIsInstant(t *testing.T) {
	eng, clock, exec := newTestEngine()
	tickAt(eng, 0)
	clock.advance(dwell() / 2)
	commit := eng.DeactivateAndCommit()
	if commit.Kind != CommitNone {
		t.Fatalf("folder slot must not commit on release, got %+v", commit)
	}
	if len(exec.actions) != 0 {
		t.Fatalf("pending dwell dispatched an action")
	}
	// Reactivation starts clean at root.
	eng.ActivateAtRoot()
	if len(eng.Cursor()) != 0 || eng.Hover().Index != -1 {
		t.Fatalf("stale state after reactivation")
	}
}

func TestDeactivateOnEmptySlotRequestsEdit(t *testing.T) {
	eng, _, _ := newTestEngine()
	tickAt(eng, 2)
	commit := eng.DeactivateAndCommit()
	if commit.Kind != CommitEdit || commit.Index != 2 || len(commit.Path) != 0 {
		t.Fatalf("expected edit commit for the empty slot, got %+v", commit)
	}
}

func TestDeactivateWithoutHoverIsNone(t *testing.T) {
	eng, _, _ := newTestEngine()
	eng.OnTick(0, 0)
	if commit := eng.DeactivateAndCommit(); commit.Kind != CommitNone {
		t.Fatalf("expected none, got %+v", commit)
	}
}

func TestSettingsHoverCommits(t *testing.T) {
	eng, _, _ := newTestEngine()
	s := eng.Settings()
	geo := geometry.ForWheel(float64(s.InnerRadius), float64(s.WheelRadius))
	eng.OnTick(geo.SettingsCenter.X, geo.SettingsCenter.Y)
	if !eng.Hover().Settings {
		t.Fatalf("settings button not hovered")
	}
	if commit := eng.DeactivateAndCommit(); commit.Kind != CommitSettings {
		t.Fatalf("expected settings commit, got %+v", commit)
	}
}

func TestPrimaryClickCommitsImmediately(t *testing.T) {
	eng, _, exec := newTestEngine()
	tickAt(eng, 1)
	commit := eng.OnPrimaryClick()
	if commit.Kind != CommitAction {
		t.Fatalf("expected action commit, got %+v", commit)
	}
	if eng.Active() {
		t.Fatalf("engine still active after a primary click")
	}
	if len(exec.actions) != 1 {
		t.Fatalf("executor not invoked")
	}
}

func TestPrimaryClickOnDeadZoneIsNoop(t *testing.T) {
	eng, _, _ := newTestEngine()
	eng.OnTick(0, 0)
	if commit := eng.OnPrimaryClick(); commit.Kind != CommitNone {
		t.Fatalf("expected none, got %+v", commit)
	}
	if !eng.Active() {
		t.Fatalf("dead-zone click deactivated the overlay")
	}
}

func TestSecondaryClickSuppressesReleaseCommit(t *testing.T) {
	eng, _, exec := newTestEngine()
	tickAt(eng, 1)
	commit := eng.OnSecondaryClick()
	if commit.Kind != CommitEdit || commit.Index != 1 {
		t.Fatalf("expected edit commit, got %+v", commit)
	}
	if !eng.Active() {
		t.Fatalf("secondary click must leave the session to the release")
	}
	release := eng.DeactivateAndCommit()
	if release.Kind != CommitNone {
		t.Fatalf("release after edit click should be suppressed, got %+v", release)
	}
	if len(exec.actions) != 0 {
		t.Fatalf("suppressed release dispatched an action")
	}
}

func TestSecondaryClickOnBackSlotRejected(t *testing.T) {
	eng, clock, _ := newTestEngine()
	navigateInto(t, eng, clock, 0)
	tickAt(eng, wheel.BackIndex)
	if commit := eng.OnSecondaryClick(); commit.Kind != CommitNone {
		t.Fatalf("back slot must not be editable, got %+v", commit)
	}
}

func TestEditSlotRejectsBackAndRange(t *testing.T) {
	eng, _, _ := newTestEngine()
	if _, err := eng.EditSlot([]string{"sub"}, wheel.BackIndex); err == nil {
		t.Fatalf("expected error editing the back slot")
	}
	if _, err := eng.EditSlot(nil, wheel.NumSlots); err == nil {
		t.Fatalf("expected error for an out-of-range index")
	}
	if _, err := eng.EditSlot(nil, wheel.BackIndex); err != nil {
		t.Fatalf("root's last slot is editable: %v", err)
	}
}

func TestCommitSlotEditMintsFolderID(t *testing.T) {
	eng, _, _ := newTestEngine()
	if err := eng.CommitSlotEdit(nil, 3, wheel.Slot{Label: "new", Action: wheel.ActionFolder, ShowLabel: true}); err != nil {
		t.Fatalf("commit edit: %v", err)
	}
	snap := eng.Snapshot()
	id := snap.Slots[3].Value
	if !strings.HasPrefix(id, "folder_") {
		t.Fatalf("expected a minted folder id, got %q", id)
	}
	if len(eng.Orphans()) != 0 {
		t.Fatalf("fresh child folder reported as orphan")
	}
}

func TestSnapshotParentLabelInsideFolder(t *testing.T) {
	eng, clock, _ := newTestEngine()
	navigateInto(t, eng, clock, 0)
	snap := eng.Snapshot()
	if snap.Depth != 1 {
		t.Fatalf("expected depth 1, got %d", snap.Depth)
	}
	if snap.Parent == nil || snap.Parent.Label != "apps" {
		t.Fatalf("expected parent slot label apps, got %+v", snap.Parent)
	}
}

func TestDanglingCursorFallsBackToRoot(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	store := testGraph()
	eng := New(store, nil, clock)
	eng.ActivateAtRoot()
	navigateInto(t, eng, clock, 0)
	store.DeleteRecursive("sub")
	tickAt(eng, 1)
	if snap := eng.Snapshot(); snap.Depth != 0 {
		t.Fatalf("expected fallback to root, got depth %d", snap.Depth)
	}
}

func TestInactiveEngineIgnoresTicks(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	eng := New(testGraph(), nil, clock)
	if tickAt(eng, 0) {
		t.Fatalf("inactive engine navigated")
	}
	if commit := eng.DeactivateAndCommit(); commit.Kind != CommitNone {
		t.Fatalf("expected none from an inactive engine, got %+v", commit)
	}
}
