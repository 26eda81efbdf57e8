package tracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nao1215/internhunt/internal/api"
)

// RevertAfter is how long a save outcome is displayed before the indicator
// returns to idle.
const RevertAfter = 1200 * time.Millisecond

// ErrSaveInProgress is returned when a save is started while another save
// on the same entry has not finished.
var ErrSaveInProgress = errors.New("a save is already in progress")

// SaveState is the lifecycle phase of a tracker entry save.
type SaveState int

const (
	// SaveIdle means no save is running and no outcome is displayed.
	SaveIdle SaveState = iota
	// SaveSaving means a save request is in flight.
	SaveSaving
	// SaveSaved means the last save succeeded. Reverts to idle.
	SaveSaved
	// SaveError means the last save failed. Reverts to idle so the user
	// can retry.
	SaveError
	// SaveUnauthorized means the session expired during the save. This
	// state is terminal; the user must log in again.
	SaveUnauthorized
)

// String returns the display label for the state.
func (s SaveState) String() string {
	switch s {
	case SaveIdle:
		return "Save"
	case SaveSaving:
		return "Saving..."
	case SaveSaved:
		return "Saved ✓"
	case SaveError:
		return "Error - Retry"
	case SaveUnauthorized:
		return "Session expired"
	default:
		return fmt.Sprintf("SaveState(%d)", int(s))
	}
}

// SaveIndicator tracks the save lifecycle for a single tracker entry.
// Successful and failed outcomes revert to idle after RevertAfter; an
// unauthorized outcome is terminal.
//
// Concurrent edits to the same entry are last-write-wins on the server; the
// indicator only prevents overlapping requests from this client.
type SaveIndicator struct {
	mu    sync.Mutex
	state SaveState

	// now and after are swappable for tests.
	after func(d time.Duration, f func()) *time.Timer
}

// NewSaveIndicator creates an indicator in the idle state.
func NewSaveIndicator() *SaveIndicator {
	return &SaveIndicator{
		state: SaveIdle,
		after: time.AfterFunc,
	}
}

// State returns the current state.
func (si *SaveIndicator) State() SaveState {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.state
}

// Begin moves the indicator from idle to saving. It returns
// ErrSaveInProgress if a save is already running, and api.ErrUnauthorized if
// a previous save ended with an expired session.
func (si *SaveIndicator) Begin() error {
	si.mu.Lock()
	defer si.mu.Unlock()

	switch si.state {
	case SaveSaving:
		return ErrSaveInProgress
	case SaveUnauthorized:
		return api.ErrUnauthorized
	default:
		si.state = SaveSaving
		return nil
	}
}

// Finish records the outcome of the in-flight save and returns the resulting
// state. Saved and error outcomes schedule an automatic revert to idle after
// RevertAfter; unauthorized does not.
func (si *SaveIndicator) Finish(err error) SaveState {
	si.mu.Lock()
	defer si.mu.Unlock()

	switch {
	case err == nil:
		si.state = SaveSaved
	case errors.Is(err, api.ErrUnauthorized):
		si.state = SaveUnauthorized
		return si.state
	default:
		si.state = SaveError
	}

	si.after(RevertAfter, si.revert)
	return si.state
}

// revert returns a displayed outcome to idle. Saving and unauthorized states
// are left untouched: a new save may already be running, and an expired
// session never recovers on its own.
func (si *SaveIndicator) revert() {
	si.mu.Lock()
	defer si.mu.Unlock()

	if si.state == SaveSaved || si.state == SaveError {
		si.state = SaveIdle
	}
}
