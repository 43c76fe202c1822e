package dto

import "time"

// EntryRequest is one entry inside a create/update body
type EntryRequest struct {
	ID     string `json:"id,omitempty"`
	Label  string `json:"label" binding:"required,max=100"`
	Weight int    `json:"weight" binding:"required,min=1"`
}

// WheelCreateRequest represents the request body for creating a wheel
type WheelCreateRequest struct {
	Name               string         `json:"name" binding:"required,max=200"`
	WinnersCount       int            `json:"winners_count" binding:"required,min=1"`
	RemoveWinnerOnSpin bool           `json:"remove_winner_on_spin"`
	Entries            []EntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// WheelUpdateRequest represents a partial update; nil fields are left as is
type WheelUpdateRequest struct {
	Name               *string         `json:"name,omitempty" binding:"omitempty,max=200"`
	WinnersCount       *int            `json:"winners_count,omitempty" binding:"omitempty,min=1"`
	RemoveWinnerOnSpin *bool           `json:"remove_winner_on_spin,omitempty"`
	Entries            *[]EntryRequest `json:"entries,omitempty" binding:"omitempty,min=1,dive"`
}

// WheelInfo is the wheel header of a WheelResponse
type WheelInfo struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	WinnersCount       int    `json:"winners_count"`
	RemoveWinnerOnSpin bool   `json:"remove_winner_on_spin"`
}

// EntryResponse is a persisted entry
type EntryResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// WheelResponse is returned by GET/POST/PATCH /wheelspin
type WheelResponse struct {
	Wheel   WheelInfo       `json:"wheel"`
	Entries []EntryResponse `json:"entries"`
}

// WheelSummary is one row of the wheel list
type WheelSummary struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	WinnersCount       int       `json:"winners_count"`
	RemoveWinnerOnSpin bool      `json:"remove_winner_on_spin"`
	EntriesCount       int       `json:"entries_count"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// WheelListResponse is returned by GET /wheelspin
type WheelListResponse struct {
	Wheels []WheelSummary `json:"wheels"`
}

// SpinRequest represents the request body for a single draw
type SpinRequest struct {
	ExcludeEntryIDs []string `json:"exclude_entry_ids"`
}

// WinnerResponse is the drawn entry
type WinnerResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SpinResponse carries a null winner when no entry is eligible
type SpinResponse struct {
	Winner *WinnerResponse `json:"winner"`
}

// SpinRecordResponse is one row of the spin log
type SpinRecordResponse struct {
	EntryID       string    `json:"entry_id"`
	Label         string    `json:"label"`
	ExcludedCount int       `json:"excluded_count"`
	SpunAt        time.Time `json:"spun_at"`
}

// SpinLogResponse is returned by GET /wheelspin/:id/spins
type SpinLogResponse struct {
	Spins []SpinRecordResponse `json:"spins"`
}
