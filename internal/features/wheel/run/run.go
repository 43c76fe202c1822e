// Package run holds the spin state machine of one wheel run.
package run

import "wheelspin-backend/internal/features/wheel/models"

// State of a run.
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Run is the winners and exclusions of a bounded sequence of draws over a
// snapshot of a wheel. Transitions are plain methods with no I/O.
type Run struct {
	wheel      models.Wheel
	winners    []models.Entry
	excludeIDs []string
	spinning   bool
}

// NewRun snapshots w; later edits to w do not affect the run.
func NewRun(w models.Wheel) *Run {
	return &Run{wheel: w.Clone()}
}

func (r *Run) State() State {
	switch {
	case r.spinning:
		return StateSpinning
	case len(r.winners) >= r.wheel.WinnersCount:
		return StateExhausted
	default:
		return StateIdle
	}
}

// RequestSpin moves Idle to Spinning. It reports false and changes nothing
// when the run is already spinning or exhausted.
func (r *Run) RequestSpin() bool {
	if r.State() != StateIdle {
		return false
	}
	r.spinning = true
	return true
}

// RecordWinner appends the winner and returns the run to Idle or Exhausted.
// A winner outside the eligible set is not recorded: the spin counts as
// failed and RecordWinner reports false.
func (r *Run) RecordWinner(e models.Entry) bool {
	r.spinning = false
	if !r.IsEligible(e.ID) {
		return false
	}
	r.winners = append(r.winners, e)
	if r.wheel.RemoveWinnerOnSpin {
		r.excludeIDs = append(r.excludeIDs, e.ID)
	}
	return true
}

// DrawFailed returns a spinning run to Idle without a winner.
func (r *Run) DrawFailed() {
	r.spinning = false
}

// Reset clears winners and exclusions from any state.
func (r *Run) Reset() {
	r.spinning = false
	r.winners = nil
	r.excludeIDs = nil
}

func (r *Run) Winners() []models.Entry {
	return append([]models.Entry(nil), r.winners...)
}

func (r *Run) ExcludeIDs() []string {
	return append([]string(nil), r.excludeIDs...)
}

// Eligible is the candidate set of the next draw.
func (r *Run) Eligible() []models.Entry {
	return r.wheel.Eligible(r.excludeIDs)
}

// IsEligible reports whether id can win the next draw.
func (r *Run) IsEligible(id string) bool {
	for _, e := range r.Eligible() {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (r *Run) Wheel() models.Wheel {
	return r.wheel.Clone()
}
