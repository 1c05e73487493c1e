// Package persist reads and writes the wheel graph document. The core treats
// it as an opaque, fallible collaborator: every store mutation is followed by
// one Save call, and a failed Load is recovered with the default graph.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quickwheel/quickwheel/internal/logging/events"
	"github.com/quickwheel/quickwheel/internal/wheel"
)

const (
	configDirName  = "quickwheel"
	configFileName = "config.json"
)

// FileStore persists the graph document as JSON on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the given path; empty selects DefaultPath.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// DefaultPath places the config under the user config directory, falling back
// to a dotfile in the home directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, configDirName, configFileName)
}

// Load reads the document. A missing file is not an error: the default graph
// is written out and returned, matching first-run behavior.
func (s *FileStore) Load() (*wheel.Document, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		doc := wheel.DefaultDocument()
		if err := s.Save(doc); err != nil {
			return doc, nil
		}
		return doc, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var doc wheel.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if doc.Root == nil {
		doc.Root = wheel.NewFolder()
	}
	if doc.Folders == nil {
		doc.Folders = map[string]*wheel.Folder{}
	}
	if doc.Settings == (wheel.Settings{}) {
		doc.Settings = wheel.DefaultSettings()
	}
	return &doc, nil
}

// Save writes the document, creating the config directory when missing.
func (s *FileStore) Save(doc *wheel.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	events.Graph.Saved(s.path)
	return nil
}
