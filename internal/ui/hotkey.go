package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickwheel/quickwheel/internal/hotkey"
)

// waitForSignal blocks on the watcher's signal channel and re-enters the
// Bubble Tea loop with the next activation edge.
func waitForSignal(w *hotkey.Watcher) tea.Cmd {
	return func() tea.Msg {
		sig, ok := <-w.Signals()
		if !ok {
			return signalDoneMsg{}
		}
		return signalMsg{signal: sig}
	}
}

type signalMsg struct {
	signal hotkey.Signal
}

type signalDoneMsg struct{}

// keySource feeds synthetic chord events into the hotkey watcher. The real
// overlay gets press/release pairs from an OS capture layer; a terminal only
// sees presses, so the preview drives both edges from explicit shortcuts.
type keySource struct {
	first  hotkey.Key
	second hotkey.Key
	events chan hotkey.KeyEvent
}

func newKeySource(chord *hotkey.Chord) *keySource {
	first, second := chord.Keys()
	return &keySource{
		first:  first,
		second: second,
		events: make(chan hotkey.KeyEvent, 8),
	}
}

// Events is the hotkey.Source implementation.
func (s *keySource) Events() <-chan hotkey.KeyEvent {
	return s.events
}

// Hold presses both chord keys.
func (s *keySource) Hold() {
	s.send(hotkey.KeyEvent{Key: s.first, Pressed: true})
	s.send(hotkey.KeyEvent{Key: s.second, Pressed: true})
}

// Release lifts both chord keys so the next hold re-arms from a clean state.
// The first release alone produces the deactivation edge.
func (s *keySource) Release() {
	s.send(hotkey.KeyEvent{Key: s.first, Pressed: false})
	s.send(hotkey.KeyEvent{Key: s.second, Pressed: false})
}

// Close ends the event stream; the watcher drains and closes its signals.
func (s *keySource) Close() {
	close(s.events)
}

func (s *keySource) send(ev hotkey.KeyEvent) {
	select {
	case s.events <- ev:
	default:
	}
}
