// Package ui contains the Bubble Tea program that previews and edits the
// wheel in a terminal.
//
// Message flow:
//   - A 16ms tick feeds the last known mouse cell through Engine.OnTick, which
//     owns hover, dwell, and navigation. The view only reads Engine.Snapshot.
//   - Activation mirrors the overlay's chord semantics: a keySource feeds
//     synthetic press/release events through hotkey.Watcher, and the resulting
//     signals arrive as Bubble Tea messages via waitForSignal. Terminals never
//     report key releases, so "a" holds the chord and enter/space drops it.
//   - Mouse clicks map to the engine's primary/secondary commit paths.
//   - Messages route through a typed handler registry; the slot editor and the
//     settings form intercept key and mouse input while open.
//
// Rendering maps every terminal cell to a pixel offset and runs it through the
// same hit-test the engine uses, so segment boundaries on screen are exactly
// the boundaries the engine resolves against.
package ui
