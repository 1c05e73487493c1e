package wheel

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/quickwheel/quickwheel/internal/logging/events"
)

// ErrNotFound is returned when a path references a folder id absent from the
// store. Callers fall back to root and reset their navigation cursor.
var ErrNotFound = errors.New("folder not found")

// ErrInvalidIndex rejects writes to the immutable back slot or to an index
// outside the wheel.
var ErrInvalidIndex = errors.New("invalid slot index")

// ErrMissingFolderID rejects folder-typed slots without a child folder id.
var ErrMissingFolderID = errors.New("folder slot requires a folder id")

// Document is the persisted shape of the whole graph: settings, the root
// folder, and the subfolder arena keyed by id.
type Document struct {
	Settings Settings           `json:"settings"`
	Root     *Folder            `json:"root"`
	Folders  map[string]*Folder `json:"folders"`
}

// DefaultDocument returns a minimal graph: root with eight empty slots.
func DefaultDocument() *Document {
	return &Document{
		Settings: DefaultSettings(),
		Root:     NewFolder(),
		Folders:  map[string]*Folder{},
	}
}

// Saver receives a persistence request after every mutation. No batching.
type Saver func(*Document)

// Store owns the folder graph. All methods run on the engine goroutine; the
// store carries no locks of its own.
type Store struct {
	root     *Folder
	folders  map[string]*Folder
	settings Settings
	save     Saver
}

// NewStore builds a store from a loaded document.
func NewStore(doc *Document, save Saver) *Store {
	if doc == nil {
		doc = DefaultDocument()
	}
	if doc.Root == nil {
		doc.Root = NewFolder()
	}
	if doc.Folders == nil {
		doc.Folders = map[string]*Folder{}
	}
	return &Store{
		root:     doc.Root,
		folders:  doc.Folders,
		settings: doc.Settings,
		save:     save,
	}
}

// Document snapshots the store into its persisted shape.
func (s *Store) Document() *Document {
	return &Document{Settings: s.settings, Root: s.root, Folders: s.folders}
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	return s.settings
}

// ApplySettings replaces the settings and persists.
func (s *Store) ApplySettings(settings Settings) {
	s.settings = settings
	events.Graph.SettingsApplied(settings.DwellMs, settings.AutoContinueExtraMs)
	s.persist()
}

// Root returns the always-present root folder.
func (s *Store) Root() *Folder {
	return s.root
}

// Has reports whether a folder id exists in the arena.
func (s *Store) Has(id string) bool {
	_, ok := s.folders[id]
	return ok
}

// Resolve maps a navigation path to its folder. The empty path is root; a
// non-empty path is addressed by its last id alone, folders being arena
// entries rather than a walked hierarchy.
func (s *Store) Resolve(path []string) (*Folder, error) {
	if len(path) == 0 {
		return s.root, nil
	}
	id := path[len(path)-1]
	folder, ok := s.folders[id]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", id, ErrNotFound)
	}
	return folder, nil
}

// CreateFolder inserts an empty subfolder under the given id. A no-op when the
// id already exists, which is how a previously orphaned folder is restored.
func (s *Store) CreateFolder(id string) *Folder {
	if folder, ok := s.folders[id]; ok {
		return folder
	}
	folder := NewSubfolder()
	s.folders[id] = folder
	events.Graph.FolderCreated(id)
	s.persist()
	return folder
}

// SetSlot overwrites a slot and persists. The back slot of a subfolder is
// immutable; folder-typed slots must carry a child id, which is created on
// demand so a reused id reattaches its orphaned subtree.
func (s *Store) SetSlot(path []string, index int, slot Slot) error {
	folder, err := s.Resolve(path)
	if err != nil {
		return err
	}
	if index < 0 || index >= NumSlots {
		return fmt.Errorf("slot %d: %w", index, ErrInvalidIndex)
	}
	if index == BackIndex && folder.HasBackSlot() {
		return fmt.Errorf("slot %d holds the back action: %w", index, ErrInvalidIndex)
	}
	if slot.Action == ActionFolder {
		if slot.Value == "" {
			return ErrMissingFolderID
		}
		s.CreateFolder(slot.Value)
	}
	folder.Slots[index] = slot
	events.Graph.SlotSet(path, index, string(slot.Action))
	s.persist()
	return nil
}

// FindOrphans returns the folder ids referenced by no slot anywhere in the
// graph, sorted for stable presentation.
func (s *Store) FindOrphans() []string {
	referenced := make(map[string]struct{})
	for _, id := range s.root.ChildIDs() {
		referenced[id] = struct{}{}
	}
	for _, folder := range s.folders {
		for _, id := range folder.ChildIDs() {
			referenced[id] = struct{}{}
		}
	}
	orphans := make([]string, 0)
	for id := range s.folders {
		if _, ok := referenced[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	return orphans
}

// DeleteRecursive removes the folder and every descendant reachable through
// folder-typed slots. Deletion is never implicit: overwriting a folder slot
// merely orphans its subtree until the caller explicitly purges it here.
func (s *Store) DeleteRecursive(id string) {
	queue := []string{id}
	removed := 0
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		folder, ok := s.folders[next]
		if !ok {
			continue
		}
		queue = append(queue, folder.ChildIDs()...)
		delete(s.folders, next)
		removed++
	}
	if removed == 0 {
		return
	}
	events.Graph.FolderDeleted(id, removed)
	s.persist()
}

// NewFolderID mints a fresh folder id in the same shape the original used.
func NewFolderID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back to a
		// fixed id rather than panic inside an edit flow.
		return "folder_00000000"
	}
	return "folder_" + hex.EncodeToString(buf)
}

func (s *Store) persist() {
	if s.save == nil {
		return
	}
	s.save(s.Document())
}
