package hotkey

import (
	"context"
	"sync"
)

// Source delivers raw key events from the platform capture layer. Closing the
// returned channel ends the watcher.
type Source interface {
	Events() <-chan KeyEvent
}

// Watcher folds a raw event source through a Chord and publishes activation
// signals on a single channel, keeping the process boundary one-way.
type Watcher struct {
	chord  *Chord
	source Source

	ctx    context.Context
	cancel context.CancelFunc

	signals chan Signal
	wg      sync.WaitGroup
}

// NewWatcher starts watching the source with the given chord.
func NewWatcher(chord *Chord, source Source) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		chord:   chord,
		source:  source,
		ctx:     ctx,
		cancel:  cancel,
		signals: make(chan Signal, 4),
	}
	w.wg.Add(1)
	go w.run()
	go func() {
		w.wg.Wait()
		close(w.signals)
	}()
	return w
}

// Signals returns the activation signal channel.
func (w *Watcher) Signals() <-chan Signal {
	return w.signals
}

// Stop cancels the watcher. Use Wait for a clean drain in tests.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the signal channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.source.Events():
			if !ok {
				return
			}
			sig := w.chord.Feed(ev)
			if sig == SignalNone {
				continue
			}
			select {
			case <-w.ctx.Done():
				return
			case w.signals <- sig:
			}
		}
	}
}
