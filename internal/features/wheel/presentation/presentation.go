// Package presentation maps drawn winners to wheel rotation angles.
package presentation

import (
	"math"

	"wheelspin-backend/internal/features/wheel/models"
)

const fullTurn = 360.0

// Slice is the angular wedge of one entry, in degrees clockwise from the pointer.
type Slice struct {
	EntryID string
	Label   string
	Start   float64
	End     float64
}

// Mid returns the center angle of the wedge.
func (s Slice) Mid() float64 {
	return (s.Start + s.End) / 2
}

// Slices lays the visible entries out around the wheel, proportionally to
// weight. Entries with a non-positive weight get no wedge.
func Slices(entries []models.Entry) []Slice {
	total := 0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total == 0 {
		return nil
	}

	slices := make([]Slice, 0, len(entries))
	start := 0.0
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		size := fullTurn * float64(e.Weight) / float64(total)
		slices = append(slices, Slice{
			EntryID: e.ID,
			Label:   e.Label,
			Start:   start,
			End:     start + size,
		})
		start += size
	}
	// last wedge closes the circle exactly
	slices[len(slices)-1].End = fullTurn
	return slices
}

// Rotator keeps the accumulated wheel rotation of one run.
// The value only ever grows.
type Rotator struct {
	extraTurns int
	rotation   float64
}

// NewRotator creates a rotator that adds at least extraTurns full turns per spin.
func NewRotator(extraTurns int) *Rotator {
	if extraTurns < 1 {
		extraTurns = 1
	}
	return &Rotator{extraTurns: extraTurns}
}

// Rotation is the current absolute angle.
func (r *Rotator) Rotation() float64 {
	return r.rotation
}

// Next computes the target angle that lands winnerID under the pointer and
// stores it as the current rotation. If winnerID has no wedge the wheel keeps
// its current orientation and just spins the extra turns.
func (r *Rotator) Next(visible []models.Entry, winnerID string) float64 {
	align := mod(r.rotation, fullTurn)
	for _, s := range Slices(visible) {
		if s.EntryID == winnerID {
			align = mod(fullTurn-s.Mid(), fullTurn)
			break
		}
	}

	base := r.rotation - mod(r.rotation, fullTurn)
	target := base + float64(r.extraTurns)*fullTurn + align
	for target <= r.rotation {
		target += fullTurn
	}

	r.rotation = target
	return target
}

func mod(v, m float64) float64 {
	res := math.Mod(v, m)
	if res < 0 {
		res += m
	}
	return res
}
