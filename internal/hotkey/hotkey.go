// Package hotkey turns raw modifier press/release events into the two
// edge-triggered activation signals the engine consumes. OS-level key capture
// stays behind the Source interface; only these signals cross into the
// engine's goroutine.
package hotkey

import "strings"

// Key names one of the configurable activation modifiers.
type Key string

const (
	KeySuper Key = "super"
	KeyAlt   Key = "alt"
	KeyCtrl  Key = "ctrl"
	KeyShift Key = "shift"
)

// KeyEvent is a raw press or release observed by the OS capture layer.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Signal is an edge-triggered activation transition.
type Signal int

const (
	// SignalNone means the event changed nothing.
	SignalNone Signal = iota
	// SignalActivated fires when both configured keys become held.
	SignalActivated
	// SignalDeactivated fires when either key releases while active.
	SignalDeactivated
)

// Chord tracks the held state of the two configured activation keys.
type Chord struct {
	first  Key
	second Key
	held   map[Key]bool
	active bool
}

// NewChord builds a tracker for the given key pair. Unknown names fall back
// to the default super+alt pair.
func NewChord(first, second string) *Chord {
	k1 := normalizeKey(first, KeySuper)
	k2 := normalizeKey(second, KeyAlt)
	return &Chord{first: k1, second: k2, held: make(map[Key]bool, 2)}
}

// Active reports whether the chord is currently engaged.
func (c *Chord) Active() bool { return c.active }

// Keys returns the normalized key pair the chord watches.
func (c *Chord) Keys() (Key, Key) { return c.first, c.second }

// Feed consumes one key event and returns the resulting edge, if any.
func (c *Chord) Feed(ev KeyEvent) Signal {
	if ev.Key != c.first && ev.Key != c.second {
		return SignalNone
	}
	c.held[ev.Key] = ev.Pressed
	both := c.held[c.first] && c.held[c.second]
	if both && !c.active {
		c.active = true
		return SignalActivated
	}
	if !both && c.active {
		c.active = false
		return SignalDeactivated
	}
	return SignalNone
}

func normalizeKey(name string, fallback Key) Key {
	switch Key(strings.ToLower(strings.TrimSpace(name))) {
	case KeySuper:
		return KeySuper
	case KeyAlt:
		return KeyAlt
	case KeyCtrl:
		return KeyCtrl
	case KeyShift:
		return KeyShift
	default:
		return fallback
	}
}
