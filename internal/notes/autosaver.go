// Package notes implements the debounced autosave of rich-text event notes:
// every edit schedules a save shortly after the last keystroke, replacing any
// previously scheduled save.
package notes

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultDelay is the trailing-debounce interval after the last edit.
const DefaultDelay = 1000 * time.Millisecond

// Saver persists a notes document for one event.
type Saver interface {
	UpdateNotes(ctx context.Context, id string, notes string) error
}

// Autosaver debounces notes saves. A newer scheduled save replaces an older
// one; there is no other cancellation semantics. Only one pending document is
// held at a time, and the last writer wins.
type Autosaver struct {
	saver Saver
	delay time.Duration
	log   zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	id      string
	doc     string
}

// New creates an autosaver over the given saver. A zero delay uses
// DefaultDelay.
func New(saver Saver, delay time.Duration, log zerolog.Logger) *Autosaver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Autosaver{
		saver: saver,
		delay: delay,
		log:   log,
	}
}

// Schedule records the document and arms the debounce timer, cancelling any
// previously scheduled save.
func (a *Autosaver) Schedule(id string, doc string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
	}
	a.pending = true
	a.id = id
	a.doc = doc
	a.timer = time.AfterFunc(a.delay, a.fire)
}

// Flush saves any pending document immediately. It is the unload-time path,
// used to minimize lost edits.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	a.fire()
}

// Close flushes and stops the autosaver.
func (a *Autosaver) Close() {
	a.Flush()
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if !a.pending {
		a.mu.Unlock()
		return
	}
	id, doc := a.id, a.doc
	a.pending = false
	a.mu.Unlock()

	if err := a.saver.UpdateNotes(context.Background(), id, doc); err != nil {
		a.log.Error().Err(err).Str("event_id", id).Msg("Failed to autosave notes")
	}
}
