// Package selector draws one entry from a weighted set.
package selector

import (
	"errors"
	"math"

	"wheelspin-backend/internal/features/wheel/models"
)

var (
	// ErrNoEligibleCandidates is returned when no candidate has a positive weight.
	ErrNoEligibleCandidates = errors.New("no eligible candidates")
	// ErrDrawOutOfRange is returned by Pick when r is outside [0, total weight).
	ErrDrawOutOfRange = errors.New("draw value out of range")
)

// RNG yields uniform values in [0, 1).
type RNG interface {
	Float64() float64
}

// TotalWeight sums positive weights only.
func TotalWeight(candidates []models.Entry) float64 {
	total := 0.0
	for _, c := range candidates {
		if c.Weight > 0 {
			total += float64(c.Weight)
		}
	}
	return total
}

// Pick walks the cumulative weights in candidate order and returns the first
// entry whose running total exceeds r. Zero-weight entries occupy no interval.
func Pick(candidates []models.Entry, r float64) (models.Entry, error) {
	total := TotalWeight(candidates)
	if total <= 0 {
		return models.Entry{}, ErrNoEligibleCandidates
	}
	if r < 0 || r >= total || math.IsNaN(r) {
		return models.Entry{}, ErrDrawOutOfRange
	}

	cumulative := 0.0
	for _, c := range candidates {
		if c.Weight <= 0 {
			continue
		}
		cumulative += float64(c.Weight)
		if r < cumulative {
			return c, nil
		}
	}

	// unreachable while r < total
	return models.Entry{}, ErrDrawOutOfRange
}

// Select draws one entry with probability weight / total weight.
func Select(candidates []models.Entry, rng RNG) (models.Entry, error) {
	total := TotalWeight(candidates)
	if total <= 0 {
		return models.Entry{}, ErrNoEligibleCandidates
	}

	r := rng.Float64() * total
	if r >= total {
		r = math.Nextafter(total, 0)
	}
	if r < 0 {
		r = 0
	}
	return Pick(candidates, r)
}
