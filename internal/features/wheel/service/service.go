package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wheelspin-backend/internal/common/cache"
	apperrors "wheelspin-backend/internal/common/errors"
	"wheelspin-backend/internal/common/validation"
	"wheelspin-backend/internal/features/wheel/mapper"
	"wheelspin-backend/internal/features/wheel/models"
	"wheelspin-backend/internal/features/wheel/models/dto"
	"wheelspin-backend/internal/features/wheel/repository"
	"wheelspin-backend/internal/features/wheel/selector"
)

const (
	keyWheelList = "cache:wheels"

	defaultSpinLogSize = 100
	defaultCacheTTL    = 30 * time.Second
)

type Options struct {
	SpinLogSize int
	CacheTTL    time.Duration
}

type wheelService struct {
	repo   repository.WheelRepository
	cache  *cache.CacheService
	rng    selector.RNG
	opts   Options
	logger zerolog.Logger
	now    func() time.Time
}

// NewWheelService creates the wheel service. cacheService may be nil.
func NewWheelService(
	repo repository.WheelRepository,
	cacheService *cache.CacheService,
	rng selector.RNG,
	opts Options,
	logger zerolog.Logger,
) WheelService {
	if opts.SpinLogSize < 1 {
		opts.SpinLogSize = defaultSpinLogSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &wheelService{
		repo:   repo,
		cache:  cacheService,
		rng:    rng,
		opts:   opts,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *wheelService) Create(ctx context.Context, input *dto.WheelCreateRequest) (*dto.WheelResponse, error) {
	now := s.now()
	wheel := &models.Wheel{
		ID:                 uuid.New().String(),
		Name:               validation.SanitizeString(input.Name),
		WinnersCount:       input.WinnersCount,
		RemoveWinnerOnSpin: input.RemoveWinnerOnSpin,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	entries, err := buildEntries(nil, input.Entries)
	if err != nil {
		return nil, err
	}
	wheel.Entries = entries

	if err := validateWheel(wheel); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, wheel); err != nil {
		return nil, apperrors.NewStorageError("create wheel", err)
	}
	s.invalidate(ctx, wheel.ID)

	s.logger.Info().
		Str("wheel_id", wheel.ID).
		Int("entries", len(wheel.Entries)).
		Int("winners_count", wheel.WinnersCount).
		Msg("Wheel created")

	return mapper.ToWheelResponse(wheel), nil
}

func (s *wheelService) Update(ctx context.Context, wheelID string, input *dto.WheelUpdateRequest) (*dto.WheelResponse, error) {
	wheel, err := s.repo.GetByID(ctx, wheelID)
	if err != nil {
		return nil, s.mapRepoError(err, wheelID, "get wheel")
	}

	if input.Name != nil {
		wheel.Name = validation.SanitizeString(*input.Name)
	}
	if input.WinnersCount != nil {
		wheel.WinnersCount = *input.WinnersCount
	}
	if input.RemoveWinnerOnSpin != nil {
		wheel.RemoveWinnerOnSpin = *input.RemoveWinnerOnSpin
	}
	if input.Entries != nil {
		entries, err := buildEntries(wheel.Entries, *input.Entries)
		if err != nil {
			return nil, err
		}
		wheel.Entries = entries
	}

	if err := validateWheel(wheel); err != nil {
		return nil, err
	}

	wheel.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, wheel); err != nil {
		return nil, s.mapRepoError(err, wheelID, "update wheel")
	}
	s.invalidate(ctx, wheelID)

	s.logger.Info().Str("wheel_id", wheelID).Msg("Wheel updated")
	return mapper.ToWheelResponse(wheel), nil
}

func (s *wheelService) Delete(ctx context.Context, wheelID string) error {
	if err := s.repo.Delete(ctx, wheelID); err != nil {
		return s.mapRepoError(err, wheelID, "delete wheel")
	}
	s.invalidate(ctx, wheelID)

	s.logger.Info().Str("wheel_id", wheelID).Msg("Wheel deleted")
	return nil
}

func (s *wheelService) GetByID(ctx context.Context, wheelID string) (*dto.WheelResponse, error) {
	wheel, err := s.getWheel(ctx, wheelID)
	if err != nil {
		return nil, err
	}
	return mapper.ToWheelResponse(wheel), nil
}

func (s *wheelService) List(ctx context.Context) (*dto.WheelListResponse, error) {
	load := func() (interface{}, error) {
		wheels, err := s.repo.List(ctx)
		if err != nil {
			return nil, apperrors.NewStorageError("list wheels", err)
		}
		resp := &dto.WheelListResponse{Wheels: make([]dto.WheelSummary, 0, len(wheels))}
		for _, w := range wheels {
			resp.Wheels = append(resp.Wheels, mapper.ToWheelSummary(w))
		}
		return resp, nil
	}

	if s.cache == nil {
		v, err := load()
		if err != nil {
			return nil, err
		}
		return v.(*dto.WheelListResponse), nil
	}

	var resp dto.WheelListResponse
	if err := s.cache.GetOrSet(ctx, keyWheelList, &resp, s.opts.CacheTTL, load); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *wheelService) Spin(ctx context.Context, wheelID string, excludeIDs []string) (models.Entry, error) {
	wheel, err := s.getWheel(ctx, wheelID)
	if err != nil {
		return models.Entry{}, err
	}

	eligible := wheel.Eligible(excludeIDs)
	winner, err := selector.Select(eligible, s.rng)
	if errors.Is(err, selector.ErrNoEligibleCandidates) {
		s.logger.Info().
			Str("wheel_id", wheelID).
			Int("excluded", len(excludeIDs)).
			Msg("Spin requested with no eligible entries")
		return models.Entry{}, apperrors.Wrap(err, apperrors.ErrCodeNoEligibleCandidate, "No eligible entries left").
			WithDetail("wheel_id", wheelID).
			WithDetail("excluded", len(excludeIDs))
	}
	if err != nil {
		return models.Entry{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to draw winner")
	}

	record := &models.SpinRecord{
		WheelID:       wheelID,
		EntryID:       winner.ID,
		Label:         winner.Label,
		ExcludedCount: len(wheel.Entries) - len(eligible),
		SpunAt:        s.now(),
	}
	// журнал вспомогательный, ошибка записи не отменяет розыгрыш
	if err := s.repo.AppendSpin(ctx, record, s.opts.SpinLogSize); err != nil {
		s.logger.Warn().Err(err).Str("wheel_id", wheelID).Msg("Failed to append spin record")
	}

	s.logger.Info().
		Str("wheel_id", wheelID).
		Str("entry_id", winner.ID).
		Int("eligible", len(eligible)).
		Msg("Winner drawn")

	return winner, nil
}

func (s *wheelService) GetSpins(ctx context.Context, wheelID string, limit int) (*dto.SpinLogResponse, error) {
	if _, err := s.getWheel(ctx, wheelID); err != nil {
		return nil, err
	}

	records, err := s.repo.GetSpins(ctx, wheelID, limit)
	if err != nil {
		return nil, apperrors.NewStorageError("get spins", err)
	}
	return mapper.ToSpinLogResponse(records), nil
}

func (s *wheelService) getWheel(ctx context.Context, wheelID string) (*models.Wheel, error) {
	load := func() (interface{}, error) {
		wheel, err := s.repo.GetByID(ctx, wheelID)
		if err != nil {
			return nil, s.mapRepoError(err, wheelID, "get wheel")
		}
		return wheel, nil
	}

	if s.cache == nil {
		v, err := load()
		if err != nil {
			return nil, err
		}
		return v.(*models.Wheel), nil
	}

	var wheel models.Wheel
	if err := s.cache.GetOrSet(ctx, cache.WheelKey(wheelID), &wheel, s.opts.CacheTTL, load); err != nil {
		return nil, err
	}
	return &wheel, nil
}

func (s *wheelService) invalidate(ctx context.Context, wheelID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWheelCache(ctx, wheelID); err != nil {
		s.logger.Warn().Err(err).Str("wheel_id", wheelID).Msg("Failed to invalidate wheel cache")
	}
}

func (s *wheelService) mapRepoError(err error, wheelID, operation string) error {
	if errors.Is(err, repository.ErrWheelNotFound) {
		return apperrors.NewWheelNotFoundError(wheelID)
	}
	return apperrors.NewStorageError(operation, err).WithContext("wheel_id", wheelID)
}

// buildEntries converts request entries into models. Known ids are kept,
// entries without id get a new one, ids not present in existing are rejected.
func buildEntries(existing []models.Entry, input []dto.EntryRequest) ([]models.Entry, error) {
	known := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		known[e.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(input))
	entries := make([]models.Entry, 0, len(input))
	for i, in := range input {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		} else {
			if _, ok := known[id]; !ok {
				return nil, apperrors.New(apperrors.ErrCodeUnknownEntry, "Unknown entry id").
					WithDetail("field", "entries").
					WithDetail("index", i).
					WithDetail("entry_id", id)
			}
			if _, dup := seen[id]; dup {
				return nil, apperrors.NewValidationError("entries", "duplicate entry id "+id)
			}
		}
		seen[id] = struct{}{}

		entries = append(entries, models.Entry{
			ID:     id,
			Label:  validation.SanitizeString(in.Label),
			Weight: in.Weight,
		})
	}
	return entries, nil
}

func validateWheel(w *models.Wheel) error {
	if err := validation.ValidateWheelName(w.Name); err != nil {
		return apperrors.NewValidationError("name", err.Error())
	}
	if err := validation.ValidateWinnersCount(w.WinnersCount); err != nil {
		return apperrors.New(apperrors.ErrCodeInvalidWinners, err.Error()).WithDetail("field", "winners_count")
	}
	if field, err := validation.ValidateEntries(w.Entries); err != nil {
		if strings.HasSuffix(field, ".weight") {
			return apperrors.New(apperrors.ErrCodeInvalidEntryWeight, err.Error()).WithDetail("field", field)
		}
		return apperrors.NewValidationError(field, err.Error())
	}
	return nil
}
