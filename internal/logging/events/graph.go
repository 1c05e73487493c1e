package events

import (
	"strings"

	"github.com/quickwheel/quickwheel/internal/logging"
)

type GraphTracer struct{}

var Graph = GraphTracer{}

func (GraphTracer) FolderCreated(id string) {
	logging.Trace("graph.folder-created", map[string]interface{}{"folder": id})
}

func (GraphTracer) FolderDeleted(id string, removed int) {
	logging.Trace("graph.folder-deleted", map[string]interface{}{"folder": id, "removed": removed})
}

func (GraphTracer) SlotSet(path []string, index int, action string) {
	logging.Trace("graph.slot-set", map[string]interface{}{
		"path":   strings.Join(path, "/"),
		"slot":   index,
		"action": action,
	})
}

func (GraphTracer) SettingsApplied(dwellMs, extraMs int) {
	logging.Trace("graph.settings-applied", map[string]interface{}{"dwell": dwellMs, "extra": extraMs})
}

func (GraphTracer) Saved(path string) {
	logging.Trace("graph.saved", map[string]interface{}{"path": path})
}
