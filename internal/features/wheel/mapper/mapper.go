package mapper

import (
	"wheelspin-backend/internal/features/wheel/models"
	"wheelspin-backend/internal/features/wheel/models/dto"
)

// ToWheelResponse maps Wheel model to the GET /wheelspin/:id shape
func ToWheelResponse(w *models.Wheel) *dto.WheelResponse {
	entries := make([]dto.EntryResponse, 0, len(w.Entries))
	for _, e := range w.Entries {
		entries = append(entries, dto.EntryResponse{ID: e.ID, Label: e.Label, Weight: e.Weight})
	}
	return &dto.WheelResponse{
		Wheel: dto.WheelInfo{
			ID:                 w.ID,
			Name:               w.Name,
			WinnersCount:       w.WinnersCount,
			RemoveWinnerOnSpin: w.RemoveWinnerOnSpin,
		},
		Entries: entries,
	}
}

// FromWheelResponse is the inverse of ToWheelResponse, used by API clients
func FromWheelResponse(resp *dto.WheelResponse) models.Wheel {
	entries := make([]models.Entry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, models.Entry{ID: e.ID, Label: e.Label, Weight: e.Weight})
	}
	return models.Wheel{
		ID:                 resp.Wheel.ID,
		Name:               resp.Wheel.Name,
		WinnersCount:       resp.Wheel.WinnersCount,
		RemoveWinnerOnSpin: resp.Wheel.RemoveWinnerOnSpin,
		Entries:            entries,
	}
}

// ToWheelSummary maps Wheel model to a list row
func ToWheelSummary(w *models.Wheel) dto.WheelSummary {
	return dto.WheelSummary{
		ID:                 w.ID,
		Name:               w.Name,
		WinnersCount:       w.WinnersCount,
		RemoveWinnerOnSpin: w.RemoveWinnerOnSpin,
		EntriesCount:       len(w.Entries),
		UpdatedAt:          w.UpdatedAt,
	}
}

// ToEntryRequests converts editor entries into a save body
func ToEntryRequests(entries []models.Entry) []dto.EntryRequest {
	out := make([]dto.EntryRequest, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.EntryRequest{ID: e.ID, Label: e.Label, Weight: e.Weight})
	}
	return out
}

// ToSpinResponse maps a drawn entry; nil means nothing was eligible
func ToSpinResponse(winner *models.Entry) *dto.SpinResponse {
	if winner == nil {
		return &dto.SpinResponse{}
	}
	return &dto.SpinResponse{Winner: &dto.WinnerResponse{ID: winner.ID, Label: winner.Label}}
}

// ToSpinLogResponse maps the spin log, newest first
func ToSpinLogResponse(records []models.SpinRecord) *dto.SpinLogResponse {
	spins := make([]dto.SpinRecordResponse, 0, len(records))
	for _, r := range records {
		spins = append(spins, dto.SpinRecordResponse{
			EntryID:       r.EntryID,
			Label:         r.Label,
			ExcludedCount: r.ExcludedCount,
			SpunAt:        r.SpunAt,
		})
	}
	return &dto.SpinLogResponse{Spins: spins}
}
