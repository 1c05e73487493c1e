// Package state holds the list-selection state used by the editor forms.
package state

import "strings"

// Item is a selectable picker entry.
type Item struct {
	ID    string
	Label string
}

// Picker tracks a filterable item list with a wrapping cursor. It backs the
// action-type selector and the orphan-folder restore list in the slot editor.
type Picker struct {
	Full   []Item
	Items  []Item
	Filter string
	Cursor int
}

// NewPicker constructs a picker over the provided items.
func NewPicker(items []Item) *Picker {
	p := &Picker{}
	p.UpdateItems(items)
	return p
}

// UpdateItems refreshes the backing items and re-applies the filter.
func (p *Picker) UpdateItems(items []Item) {
	p.Full = CloneItems(items)
	p.applyFilter()
}

// MoveUp moves the cursor up, wrapping at the top.
func (p *Picker) MoveUp() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	if p.Cursor > 0 {
		p.Cursor--
	} else {
		p.Cursor = n - 1
	}
	return true
}

// MoveDown moves the cursor down, wrapping at the bottom.
func (p *Picker) MoveDown() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	if p.Cursor < n-1 {
		p.Cursor++
	} else {
		p.Cursor = 0
	}
	return true
}

// Selected returns the item under the cursor.
func (p *Picker) Selected() (Item, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Item{}, false
	}
	return p.Items[p.Cursor], true
}

// IndexOf returns the index for a given item identifier.
func (p *Picker) IndexOf(id string) int {
	for i, item := range p.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Select moves the cursor to the item with the given id when present.
func (p *Picker) Select(id string) bool {
	if idx := p.IndexOf(id); idx >= 0 {
		p.Cursor = idx
		return true
	}
	return false
}

// SetFilter updates the filter query and snaps the cursor to the best match.
func (p *Picker) SetFilter(query string) {
	p.Filter = query
	p.applyFilter()
	if trimmed := strings.TrimSpace(query); trimmed != "" && len(p.Items) > 0 {
		if idx := BestMatchIndex(p.Items, trimmed); idx >= 0 {
			p.Cursor = idx
		}
	}
}

func (p *Picker) applyFilter() {
	p.Items = FilterItems(p.Full, p.Filter)
	if len(p.Items) == 0 {
		p.Cursor = 0
		return
	}
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		p.Cursor = 0
	}
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
