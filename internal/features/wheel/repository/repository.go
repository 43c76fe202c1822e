package repository

import (
	"context"
	"errors"

	"wheelspin-backend/internal/features/wheel/models"
)

var (
	ErrWheelNotFound = errors.New("wheel not found")
)

type WheelRepository interface {
	Create(ctx context.Context, wheel *models.Wheel) error
	GetByID(ctx context.Context, id string) (*models.Wheel, error)
	Update(ctx context.Context, wheel *models.Wheel) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Wheel, error)

	AppendSpin(ctx context.Context, record *models.SpinRecord, limit int) error
	GetSpins(ctx context.Context, wheelID string, limit int) ([]models.SpinRecord, error)
}
