package wheel

// Folder holds an ordered sequence of exactly NumSlots slots. The root folder
// has no id and is always present; subfolders live in the Store arena keyed by
// stable string ids so slots can reference them without pointer cycles.
type Folder struct {
	Slots [NumSlots]Slot `json:"slots"`
}

// NewFolder returns a folder with all slots empty.
func NewFolder() *Folder {
	f := &Folder{}
	for i := range f.Slots {
		f.Slots[i] = EmptySlot()
	}
	return f
}

// NewSubfolder returns a folder with the back slot pre-set at BackIndex.
func NewSubfolder() *Folder {
	f := NewFolder()
	f.Slots[BackIndex] = BackSlot()
	return f
}

// HasBackSlot reports whether the folder carries the immutable back slot.
func (f *Folder) HasBackSlot() bool {
	return f.Slots[BackIndex].Action == ActionBack
}

// ChildIDs returns the folder ids referenced by folder-typed slots.
func (f *Folder) ChildIDs() []string {
	ids := make([]string, 0, NumSlots)
	for _, slot := range f.Slots {
		if slot.Action == ActionFolder && slot.Value != "" {
			ids = append(ids, slot.Value)
		}
	}
	return ids
}

// Clone returns a deep copy of the folder, detaching icon pointers.
func (f *Folder) Clone() *Folder {
	dup := *f
	for i, slot := range dup.Slots {
		if slot.Icon != nil {
			icon := *slot.Icon
			dup.Slots[i].Icon = &icon
		}
	}
	return &dup
}
