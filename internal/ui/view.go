package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/quickwheel/quickwheel/internal/engine"
	"github.com/quickwheel/quickwheel/internal/geometry"
	"github.com/quickwheel/quickwheel/internal/wheel"
)

// Terminal cells are roughly twice as tall as wide. The renderer and the
// pointer mapping share these scales so a hit-tested cell lights up exactly
// where the engine thinks the cursor is.
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

const maxLabelWidth = 14

// View renders the active surface.
func (m *Model) View() string {
	switch m.mode {
	case ModeSlotForm:
		if m.slotForm != nil {
			return m.viewSlotForm()
		}
	case ModeSettingsForm:
		if m.settingsForm != nil {
			return m.viewSettingsForm()
		}
	}
	if !m.engine.Active() {
		return m.viewIdle()
	}
	return m.viewWheel()
}

func (m *Model) viewIdle() string {
	lines := []string{
		m.styles.Header.Render("quickwheel"),
		"",
	}
	if m.fallbackNotice {
		lines = append(lines, m.styles.Error.Render("stored config was unreadable; running on defaults"), "")
	}
	if m.errMsg != "" {
		lines = append(lines, m.styles.Error.Render(m.errMsg), "")
	}
	if m.infoMsg != "" {
		lines = append(lines, m.styles.Info.Render(m.infoMsg), "")
	}
	if orphans := m.engine.Orphans(); len(orphans) > 0 {
		lines = append(lines, m.styles.Info.Render(fmt.Sprintf("%d orphaned folder(s), reattach via the slot editor", len(orphans))), "")
	}
	lines = append(lines, m.styles.Footer.Render("a: open wheel   s: settings   q: quit"))
	return strings.Join(lines, "\n")
}

type cell struct {
	ch    rune
	style *lipgloss.Style
}

func (m *Model) viewWheel() string {
	snap := m.engine.Snapshot()
	s := m.engine.Settings()
	geo := geometry.ForWheel(float64(s.InnerRadius), float64(s.WheelRadius))
	w, gridH, cx, cy := m.wheelGrid()

	segment := m.styles.Segment
	hovered := m.styles.HoveredSegment
	back := m.styles.BackSegment
	dead := m.styles.DeadZone
	settingsStyle := m.styles.SettingsButton
	if snap.HoverSettings {
		settingsStyle = m.styles.HoveredSegment
	}

	grid := make([][]cell, gridH)
	for y := 0; y < gridH; y++ {
		grid[y] = make([]cell, w)
		for x := 0; x < w; x++ {
			dx := float64(x-cx) * cellWidthPx
			dy := float64(y-cy) * cellHeightPx
			target := geometry.HitTest(dx, dy, geo)
			switch target.Kind {
			case geometry.TargetSettings:
				grid[y][x] = cell{ch: '*', style: settingsStyle}
			case geometry.TargetSlot:
				style := segment
				if snap.Slots[target.Slot].Action == wheel.ActionBack {
					style = back
				}
				if target.Slot == snap.HoverIndex {
					style = hovered
				}
				grid[y][x] = cell{ch: ' ', style: style}
			default:
				if math.Hypot(dx, dy) < geo.InnerRadius {
					grid[y][x] = cell{ch: ' ', style: dead}
				} else {
					grid[y][x] = cell{ch: ' ', style: nil}
				}
			}
		}
	}

	m.paintLabels(grid, snap, geo, cx, cy)
	m.paintCenter(grid, snap, cx, cy)

	rows := make([]string, 0, gridH+2)
	rows = append(rows, m.headerLine(snap))
	for _, line := range grid {
		rows = append(rows, renderRow(line))
	}
	rows = append(rows, m.footerLine())
	return strings.Join(rows, "\n")
}

// paintLabels writes each slot's label along the ring midline. Label cells
// inherit the segment background so the ring stays solid behind the text.
func (m *Model) paintLabels(grid [][]cell, snap engine.Snapshot, geo geometry.Geometry, cx, cy int) {
	labelRadius := (geo.InnerRadius + geo.OuterRadius) / 2
	for i := 0; i < wheel.NumSlots; i++ {
		slot := snap.Slots[i]
		if !slot.ShowLabel {
			continue
		}
		text := truncate.StringWithTail(labelText(slot), maxLabelWidth, "…")
		style := m.labelStyle(slot, i == snap.HoverIndex)
		angle := geometry.SlotCenterAngle(i)
		lx := cx + int(math.Round(math.Cos(angle)*labelRadius/cellWidthPx))
		ly := cy + int(math.Round(math.Sin(angle)*labelRadius/cellHeightPx))
		writeText(grid, text, lx, ly, style)
	}
}

// paintCenter shows where the cursor came from: the parent folder's label at
// depth, a plain dot at root.
func (m *Model) paintCenter(grid [][]cell, snap engine.Snapshot, cx, cy int) {
	text := "·"
	if snap.Depth > 0 {
		text = fmt.Sprintf("%d↑", snap.Depth)
		if snap.Parent != nil && snap.Parent.Label != "" {
			text = truncate.StringWithTail(snap.Parent.Label, maxLabelWidth, "…")
		}
	}
	style := ptrStyle(m.styles.Center.Inherit(*m.styles.DeadZone))
	writeText(grid, text, cx, cy, style)
}

func (m *Model) labelStyle(slot wheel.Slot, hovered bool) *lipgloss.Style {
	base := m.styles.Label
	bg := m.styles.Segment
	switch {
	case hovered:
		base = m.styles.HoveredLabel
		bg = m.styles.HoveredSegment
	case !slot.IsSet():
		base = m.styles.UnsetLabel
	case slot.Action == wheel.ActionBack:
		bg = m.styles.BackSegment
	}
	return ptrStyle(base.Inherit(*bg))
}

func labelText(slot wheel.Slot) string {
	text := slot.Label
	if slot.Icon != nil && slot.Icon.Kind == wheel.IconEmoji && slot.Icon.Data != "" {
		text = slot.Icon.Data + " " + text
	}
	return text
}

// writeText centers the string horizontally on (x, y), clipping at the grid
// edges.
func writeText(grid [][]cell, text string, x, y int, style *lipgloss.Style) {
	if y < 0 || y >= len(grid) {
		return
	}
	runes := []rune(text)
	start := x - len(runes)/2
	for i, r := range runes {
		col := start + i
		if col < 0 || col >= len(grid[y]) {
			continue
		}
		grid[y][col] = cell{ch: r, style: style}
	}
}

// renderRow groups runs of identically styled cells to keep the escape
// sequence count down.
func renderRow(row []cell) string {
	var b strings.Builder
	var run []rune
	var runStyle *lipgloss.Style
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle == nil {
			b.WriteString(string(run))
		} else {
			b.WriteString(runStyle.Render(string(run)))
		}
		run = run[:0]
	}
	for _, c := range row {
		if c.style != runStyle {
			flush()
			runStyle = c.style
		}
		run = append(run, c.ch)
	}
	flush()
	return b.String()
}

func (m *Model) headerLine(snap engine.Snapshot) string {
	title := fmt.Sprintf("quickwheel  depth %d", snap.Depth)
	if m.errMsg != "" {
		return m.styles.Header.Render(title) + "  " + m.styles.Error.Render(m.errMsg)
	}
	return m.styles.Header.Render(title)
}

func (m *Model) footerLine() string {
	return m.styles.Footer.Render("hover to dwell   enter/space: release   click: commit   right-click: edit   q: quit")
}

func (m *Model) viewSlotForm() string {
	f := m.slotForm
	_, index := f.Target()
	lines := []string{
		m.styles.FormTitle.Render(fmt.Sprintf("Edit slot %d", index)),
		"",
		"Label: " + f.label.View(),
		"",
		"Action:",
	}
	for i, item := range f.types.Items {
		lines = append(lines, pickerLine(m, item.Label, i == f.types.Cursor, f.focus == focusType))
	}
	if f.selectedAction() == wheel.ActionFolder {
		lines = append(lines, "", "Folder: "+f.filter.View())
		for i, item := range f.folders.Items {
			lines = append(lines, pickerLine(m, item.Label, i == f.folders.Cursor, f.focus == focusFolder))
		}
	} else {
		lines = append(lines, "", "Value: "+f.value.View())
	}
	if f.err != "" {
		lines = append(lines, "", m.styles.Error.Render(f.err))
	}
	lines = append(lines, "", m.styles.Footer.Render("tab: next field   up/down: select   enter: save   esc: cancel"))
	return strings.Join(lines, "\n")
}

func (m *Model) viewSettingsForm() string {
	f := m.settingsForm
	lines := []string{
		m.styles.FormTitle.Render("Wheel settings"),
		"",
	}
	for i := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-26s %s", marker, f.fields[i].name, f.fields[i].input.View()))
	}
	if f.err != "" {
		lines = append(lines, "", m.styles.Error.Render(f.err))
	}
	lines = append(lines, "", m.styles.Footer.Render("tab/up/down: move   enter: save   esc: cancel"))
	return strings.Join(lines, "\n")
}

func pickerLine(m *Model, label string, selected, focused bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	if selected && focused {
		return marker + m.styles.HoveredLabel.Render(label)
	}
	return marker + m.styles.Filter.Render(label)
}

func ptrStyle(style lipgloss.Style) *lipgloss.Style {
	return &style
}
