package editor

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/lucasvieira/iepdesk/internal/schema"
)

// SaveStatus is the autosave indicator state exposed to the shell.
type SaveStatus string

const (
	StatusIdle   SaveStatus = "idle"
	StatusSaving SaveStatus = "saving"
	StatusSaved  SaveStatus = "saved"
)

const (
	defaultAutosaveInterval = 5 * time.Second
	defaultRevertAfter      = 2 * time.Second
)

// Autosaver periodically persists the session's latest snapshot. Each
// tick reads the state as it is at save time, not as it was when the
// tick was scheduled.
type Autosaver struct {
	session  *Session
	interval time.Duration
	revert   time.Duration
	onStatus func(SaveStatus)
	onError  func(error)

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// AutosaveOption configures an Autosaver.
type AutosaveOption func(*Autosaver)

// WithInterval overrides the tick interval.
func WithInterval(d time.Duration) AutosaveOption {
	return func(a *Autosaver) { a.interval = d }
}

// WithRevertAfter overrides how long the saved indicator lingers before
// reverting to idle.
func WithRevertAfter(d time.Duration) AutosaveOption {
	return func(a *Autosaver) { a.revert = d }
}

// WithStatusFunc registers the status callback.
func WithStatusFunc(f func(SaveStatus)) AutosaveOption {
	return func(a *Autosaver) { a.onStatus = f }
}

// WithErrorFunc registers the storage-error callback.
func WithErrorFunc(f func(error)) AutosaveOption {
	return func(a *Autosaver) { a.onError = f }
}

// NewAutosaver creates an autosaver over the session. Start must be
// called to begin ticking.
func NewAutosaver(session *Session, opts ...AutosaveOption) *Autosaver {
	a := &Autosaver{
		session:  session,
		interval: defaultAutosaveInterval,
		revert:   defaultRevertAfter,
		onStatus: func(SaveStatus) {},
		onError:  func(error) {},
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start launches the tick loop. It returns immediately.
func (a *Autosaver) Start(ctx context.Context) {
	go a.run(ctx)
}

// Stop halts the tick loop and waits for it to finish.
func (a *Autosaver) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
	<-a.done
}

func (a *Autosaver) run(ctx context.Context) {
	defer close(a.done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.stop:
			return
		case <-ticker.C:
			a.saveOnce(ctx)
		}
	}
}

// saveOnce performs one autosave round: skip when the identifying field
// is blank, otherwise persist the latest snapshot. Storage errors go to
// the error callback and leave in-memory state intact.
func (a *Autosaver) saveOnce(ctx context.Context) {
	if strings.TrimSpace(a.session.FieldValue(schema.FieldStudentName)) == "" {
		return
	}

	a.onStatus(StatusSaving)
	if err := a.session.persist(ctx); err != nil {
		a.onError(err)
		a.onStatus(StatusIdle)
		return
	}
	a.onStatus(StatusSaved)
	time.AfterFunc(a.revert, func() { a.onStatus(StatusIdle) })
}
