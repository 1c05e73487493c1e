// Package action performs committed wheel actions. The engine fires and
// forgets: everything here detaches from the calling goroutine immediately.
package action

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/quickwheel/quickwheel/internal/logging"
	"github.com/quickwheel/quickwheel/internal/wheel"
)

// keystrokeDelay leaves time for the activation chord to be fully released
// before synthetic keys are injected, as the original did.
const keystrokeDelay = 150 * time.Millisecond

// modifierNames maps key-sequence modifiers to the names xdotool understands.
var modifierNames = map[string]string{
	"ctrl":  "ctrl",
	"shift": "shift",
	"alt":   "alt",
	"meta":  "super",
	"super": "super",
}

// Dispatcher executes actions through the shell and the xdotool key injector.
type Dispatcher struct{}

// NewDispatcher returns the OS-backed executor.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Execute performs one committed action without blocking.
func (d *Dispatcher) Execute(action wheel.ActionType, value string) {
	switch action {
	case wheel.ActionKeystroke:
		time.AfterFunc(keystrokeDelay, func() {
			if err := injectKeystroke(value); err != nil {
				logging.Error(err)
			}
		})
	case wheel.ActionCommand:
		if err := startDetached(exec.Command("sh", "-c", value)); err != nil {
			logging.Error(fmt.Errorf("run command %q: %w", value, err))
		}
	case wheel.ActionLaunch:
		if err := startDetached(exec.Command(value)); err != nil {
			logging.Error(fmt.Errorf("launch %q: %w", value, err))
		}
	}
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func injectKeystroke(sequence string) error {
	spec, err := ParseKeySequence(sequence)
	if err != nil {
		return err
	}
	return startDetached(exec.Command("xdotool", "key", spec))
}

// ParseKeySequence converts a "Ctrl+Shift+A" style sequence into an xdotool
// key spec. Modifier names are folded to lower case and Meta becomes super.
func ParseKeySequence(sequence string) (string, error) {
	parts := strings.Split(sequence, "+")
	mods := make([]string, 0, len(parts))
	key := ""
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierNames[strings.ToLower(part)]; ok {
			mods = append(mods, mod)
			continue
		}
		if key != "" {
			return "", fmt.Errorf("key sequence %q has more than one non-modifier key", sequence)
		}
		if len(part) == 1 {
			part = strings.ToLower(part)
		}
		key = part
	}
	if key == "" {
		return "", fmt.Errorf("key sequence %q has no key", sequence)
	}
	return strings.Join(append(mods, key), "+"), nil
}
