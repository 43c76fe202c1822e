package models

import "time"

// Entry is one labeled, weighted candidate of a wheel.
// ID is empty until the entry has been persisted.
type Entry struct {
	ID     string `json:"id,omitempty"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// Wheel is a saved configuration of weighted entries plus its run policy.
type Wheel struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	WinnersCount       int       `json:"winners_count"`
	RemoveWinnerOnSpin bool      `json:"remove_winner_on_spin"`
	Entries            []Entry   `json:"entries"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TotalWeight sums the weights of all entries.
func (w *Wheel) TotalWeight() int {
	total := 0
	for _, e := range w.Entries {
		total += e.Weight
	}
	return total
}

// Eligible returns the entries that can still be drawn: positive weight and
// not listed in excludeIDs. The result never aliases w.Entries.
func (w *Wheel) Eligible(excludeIDs []string) []Entry {
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	eligible := make([]Entry, 0, len(w.Entries))
	for _, e := range w.Entries {
		if e.Weight <= 0 {
			continue
		}
		if _, ok := excluded[e.ID]; ok && e.ID != "" {
			continue
		}
		eligible = append(eligible, e)
	}
	return eligible
}

// FindEntry looks an entry up by id.
func (w *Wheel) FindEntry(id string) (Entry, bool) {
	for _, e := range w.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Clone returns a deep copy of the wheel.
func (w Wheel) Clone() Wheel {
	w.Entries = append([]Entry(nil), w.Entries...)
	return w
}

// SpinRecord is one server-side draw kept in the wheel's spin log.
type SpinRecord struct {
	WheelID       string    `json:"wheel_id"`
	EntryID       string    `json:"entry_id"`
	Label         string    `json:"label"`
	ExcludedCount int       `json:"excluded_count"`
	SpunAt        time.Time `json:"spun_at"`
}
