package run

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"wheelspin-backend/internal/features/wheel/models"
	"wheelspin-backend/internal/features/wheel/presentation"
	"wheelspin-backend/internal/features/wheel/selector"
)

var (
	ErrNoWheelSelected  = errors.New("no wheel selected")
	ErrDrawFailed       = errors.New("draw failed")
	// ErrIneligibleWinner: the drawer returned an entry that is excluded or
	// not part of the selected wheel.
	ErrIneligibleWinner = errors.New("winner is not eligible")
)

// Drawer performs one weighted draw for a wheel, skipping excludeIDs.
// It returns selector.ErrNoEligibleCandidates when nothing is left to draw.
type Drawer interface {
	Spin(ctx context.Context, wheelID string, excludeIDs []string) (models.Entry, error)
}

// Outcome of a Spin call.
type Outcome int

const (
	// OutcomeWinner: a winner was revealed and recorded.
	OutcomeWinner Outcome = iota
	// OutcomeBusy: another spin is in flight, nothing happened.
	OutcomeBusy
	// OutcomeExhausted: winners_count already reached, nothing happened.
	OutcomeExhausted
	// OutcomeNoEligible: the draw found no eligible entries.
	OutcomeNoEligible
	// OutcomeDiscarded: the run was reset or replaced while the spin was pending.
	OutcomeDiscarded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWinner:
		return "winner"
	case OutcomeBusy:
		return "busy"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeNoEligible:
		return "no_eligible"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

type SpinResult struct {
	Outcome  Outcome
	Winner   models.Entry
	Rotation float64
}

// Snapshot is a read-only view of the controller state.
type Snapshot struct {
	WheelID    string
	State      State
	Winners    []models.Entry
	ExcludeIDs []string
	Rotation   float64
}

type Option func(*Controller)

// WithRevealDelay sets how long a drawn winner stays pending before it is
// recorded. Zero reveals immediately.
func WithRevealDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.revealDelay = d
		}
	}
}

// WithClock replaces time.After, mainly for tests.
func WithClock(after func(time.Duration) <-chan time.Time) Option {
	return func(c *Controller) {
		c.after = after
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithRotator(r *presentation.Rotator) Option {
	return func(c *Controller) {
		c.rotator = r
	}
}

// WithDrawnHook registers fn to be called once the draw result is known,
// before the reveal delay starts. Rotation is already set at that point.
func WithDrawnHook(fn func(SpinResult)) Option {
	return func(c *Controller) {
		c.onDrawn = fn
	}
}

// Controller drives the run of the selected wheel. At most one draw is in
// flight; responses that arrive after Reset or Select are dropped.
type Controller struct {
	mu sync.Mutex

	drawer      Drawer
	rotator     *presentation.Rotator
	revealDelay time.Duration
	after       func(time.Duration) <-chan time.Time
	onDrawn     func(SpinResult)
	logger      zerolog.Logger

	run *Run
	// увеличивается при каждом Reset/Select, старые ответы игнорируются
	gen          uint64
	cancelReveal chan struct{}
}

func NewController(drawer Drawer, opts ...Option) *Controller {
	c := &Controller{
		drawer:       drawer,
		rotator:      presentation.NewRotator(5),
		after:        time.After,
		logger:       zerolog.Nop(),
		cancelReveal: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Select starts a fresh run over a snapshot of w. Any pending spin is discarded.
func (c *Controller) Select(w models.Wheel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidateLocked()
	c.run = NewRun(w)
	c.logger.Debug().Str("wheel_id", w.ID).Int("winners_count", w.WinnersCount).Msg("Wheel selected")
}

// Reset clears winners and exclusions. A pending winner is dropped at once.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidateLocked()
	if c.run != nil {
		c.run.Reset()
		c.logger.Debug().Str("wheel_id", c.run.wheel.ID).Msg("Run reset")
	}
}

func (c *Controller) invalidateLocked() {
	c.gen++
	close(c.cancelReveal)
	c.cancelReveal = make(chan struct{})
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{Rotation: c.rotator.Rotation()}
	if c.run == nil {
		return s
	}
	s.WheelID = c.run.wheel.ID
	s.State = c.run.State()
	s.Winners = c.run.Winners()
	s.ExcludeIDs = c.run.ExcludeIDs()
	return s
}

// Spin performs one draw, waits for the reveal delay and records the winner.
// Calling it while spinning or exhausted is a no-op reported through Outcome.
func (c *Controller) Spin(ctx context.Context) (SpinResult, error) {
	c.mu.Lock()
	if c.run == nil {
		c.mu.Unlock()
		return SpinResult{}, ErrNoWheelSelected
	}
	switch c.run.State() {
	case StateSpinning:
		c.mu.Unlock()
		return SpinResult{Outcome: OutcomeBusy}, nil
	case StateExhausted:
		c.mu.Unlock()
		return SpinResult{Outcome: OutcomeExhausted}, nil
	}
	c.run.RequestSpin()

	gen := c.gen
	wheelID := c.run.wheel.ID
	exclude := c.run.ExcludeIDs()
	visible := c.run.Eligible()
	cancel := c.cancelReveal
	c.mu.Unlock()

	winner, err := c.drawer.Spin(ctx, wheelID, exclude)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug().Str("wheel_id", wheelID).Msg("Stale draw response dropped")
		return SpinResult{Outcome: OutcomeDiscarded}, nil
	}
	if err != nil {
		c.run.DrawFailed()
		c.mu.Unlock()

		if errors.Is(err, selector.ErrNoEligibleCandidates) {
			c.logger.Info().Str("wheel_id", wheelID).Int("excluded", len(exclude)).Msg("No eligible entries left")
			return SpinResult{Outcome: OutcomeNoEligible}, fmt.Errorf("wheel %s: %w", wheelID, selector.ErrNoEligibleCandidates)
		}
		c.logger.Warn().Err(err).Str("wheel_id", wheelID).Msg("Draw request failed")
		return SpinResult{}, fmt.Errorf("%w: %w", ErrDrawFailed, err)
	}
	if !c.run.IsEligible(winner.ID) {
		c.run.DrawFailed()
		c.mu.Unlock()

		c.logger.Warn().Str("wheel_id", wheelID).Str("entry_id", winner.ID).Msg("Drawer returned ineligible entry")
		return SpinResult{}, fmt.Errorf("%w: entry %s: %w", ErrDrawFailed, winner.ID, ErrIneligibleWinner)
	}

	result := SpinResult{
		Outcome:  OutcomeWinner,
		Winner:   winner,
		Rotation: c.rotator.Next(visible, winner.ID),
	}
	c.mu.Unlock()

	if c.onDrawn != nil {
		c.onDrawn(result)
	}

	if c.revealDelay > 0 {
		select {
		case <-c.after(c.revealDelay):
		case <-cancel:
			return SpinResult{Outcome: OutcomeDiscarded}, nil
		case <-ctx.Done():
			c.mu.Lock()
			if gen == c.gen {
				c.run.DrawFailed()
			}
			c.mu.Unlock()
			return SpinResult{}, ctx.Err()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return SpinResult{Outcome: OutcomeDiscarded}, nil
	}
	if !c.run.RecordWinner(winner) {
		return SpinResult{}, fmt.Errorf("%w: entry %s: %w", ErrDrawFailed, winner.ID, ErrIneligibleWinner)
	}

	c.logger.Info().
		Str("wheel_id", wheelID).
		Str("entry_id", winner.ID).
		Int("winners", len(c.run.winners)).
		Msg("Winner revealed")

	return result, nil
}
