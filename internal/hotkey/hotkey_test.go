package hotkey

import (
	"testing"
	"time"
)

func TestChordEdgeTriggers(t *testing.T) {
	chord := NewChord("super", "alt")
	if sig := chord.Feed(KeyEvent{Key: KeySuper, Pressed: true}); sig != SignalNone {
		t.Fatalf("single key produced %v", sig)
	}
	if sig := chord.Feed(KeyEvent{Key: KeyAlt, Pressed: true}); sig != SignalActivated {
		t.Fatalf("expected activation, got %v", sig)
	}
	if !chord.Active() {
		t.Fatalf("chord not active after both presses")
	}
	// Holding and re-pressing while active produces no duplicate edge.
	if sig := chord.Feed(KeyEvent{Key: KeySuper, Pressed: true}); sig != SignalNone {
		t.Fatalf("repeat press produced %v", sig)
	}
	if sig := chord.Feed(KeyEvent{Key: KeyAlt, Pressed: false}); sig != SignalDeactivated {
		t.Fatalf("expected deactivation, got %v", sig)
	}
	if sig := chord.Feed(KeyEvent{Key: KeySuper, Pressed: false}); sig != SignalNone {
		t.Fatalf("second release produced %v", sig)
	}
	// A fresh hold re-activates.
	chord.Feed(KeyEvent{Key: KeySuper, Pressed: true})
	if sig := chord.Feed(KeyEvent{Key: KeyAlt, Pressed: true}); sig != SignalActivated {
		t.Fatalf("expected re-activation, got %v", sig)
	}
}

func TestChordIgnoresOtherKeys(t *testing.T) {
	chord := NewChord("super", "alt")
	chord.Feed(KeyEvent{Key: KeySuper, Pressed: true})
	if sig := chord.Feed(KeyEvent{Key: KeyShift, Pressed: true}); sig != SignalNone {
		t.Fatalf("unrelated key produced %v", sig)
	}
	if chord.Active() {
		t.Fatalf("chord active without its second key")
	}
}

func TestNewChordNormalizesAndFallsBack(t *testing.T) {
	chord := NewChord(" Ctrl ", "SHIFT")
	first, second := chord.Keys()
	if first != KeyCtrl || second != KeyShift {
		t.Fatalf("expected ctrl+shift, got %v+%v", first, second)
	}
	chord = NewChord("bogus", "")
	first, second = chord.Keys()
	if first != KeySuper || second != KeyAlt {
		t.Fatalf("expected super+alt fallback, got %v+%v", first, second)
	}
}

type channelSource struct {
	ch chan KeyEvent
}

func (s *channelSource) Events() <-chan KeyEvent { return s.ch }

func TestWatcherPublishesSignals(t *testing.T) {
	source := &channelSource{ch: make(chan KeyEvent, 8)}
	watcher := NewWatcher(NewChord("super", "alt"), source)

	source.ch <- KeyEvent{Key: KeySuper, Pressed: true}
	source.ch <- KeyEvent{Key: KeyAlt, Pressed: true}
	source.ch <- KeyEvent{Key: KeyAlt, Pressed: false}

	expect := []Signal{SignalActivated, SignalDeactivated}
	for _, want := range expect {
		select {
		case got := <-watcher.Signals():
			if got != want {
				t.Fatalf("expected %v, got %v", want, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %v", want)
		}
	}

	close(source.ch)
	watcher.Wait()
	if _, ok := <-watcher.Signals(); ok {
		t.Fatalf("expected signal channel closed after the source ended")
	}
}

func TestWatcherStopEndsStream(t *testing.T) {
	source := &channelSource{ch: make(chan KeyEvent)}
	watcher := NewWatcher(NewChord("super", "alt"), source)
	watcher.Stop()
	watcher.Wait()
	if _, ok := <-watcher.Signals(); ok {
		t.Fatalf("expected signal channel closed after Stop")
	}
}
