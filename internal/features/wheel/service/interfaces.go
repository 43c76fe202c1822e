package service

import (
	"context"

	"wheelspin-backend/internal/features/wheel/models"
	"wheelspin-backend/internal/features/wheel/models/dto"
)

// WheelService defines the interface for wheel operations
type WheelService interface {
	Create(ctx context.Context, input *dto.WheelCreateRequest) (*dto.WheelResponse, error)
	Update(ctx context.Context, wheelID string, input *dto.WheelUpdateRequest) (*dto.WheelResponse, error)
	Delete(ctx context.Context, wheelID string) error
	GetByID(ctx context.Context, wheelID string) (*dto.WheelResponse, error)
	List(ctx context.Context) (*dto.WheelListResponse, error)

	// Spin draws one eligible entry. When every entry is excluded it returns an
	// AppError with ErrCodeNoEligibleCandidate wrapping selector.ErrNoEligibleCandidates.
	Spin(ctx context.Context, wheelID string, excludeIDs []string) (models.Entry, error)
	GetSpins(ctx context.Context, wheelID string, limit int) (*dto.SpinLogResponse, error)
}
