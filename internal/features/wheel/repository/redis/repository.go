package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"wheelspin-backend/internal/features/wheel/models"
	"wheelspin-backend/internal/features/wheel/repository"
	"wheelspin-backend/internal/platform/redis"
)

const (
	keyPrefixWheel = "wheel:"
	keyAllWheels   = "wheels:all"
	keySuffixSpins = ":spins"
)

type redisRepository struct {
	client redis.RedisClient
}

func NewRedisWheelRepository(client redis.RedisClient) repository.WheelRepository {
	return &redisRepository{client: client}
}

func makeWheelKey(id string) string {
	return keyPrefixWheel + id
}

func makeSpinsKey(id string) string {
	return keyPrefixWheel + id + keySuffixSpins
}

func (r *redisRepository) Create(ctx context.Context, wheel *models.Wheel) error {
	data, err := json.Marshal(wheel)
	if err != nil {
		return fmt.Errorf("failed to marshal wheel: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, makeWheelKey(wheel.ID), data, 0)
	pipe.SAdd(ctx, keyAllWheels, wheel.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create wheel: %w", err)
	}
	return nil
}

func (r *redisRepository) GetByID(ctx context.Context, id string) (*models.Wheel, error) {
	data, err := r.client.Get(ctx, makeWheelKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrWheelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wheel: %w", err)
	}

	var wheel models.Wheel
	if err := json.Unmarshal(data, &wheel); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wheel: %w", err)
	}
	return &wheel, nil
}

// Update перезаписывает колесо через SET XX, удаленное колесо не воскрешается
func (r *redisRepository) Update(ctx context.Context, wheel *models.Wheel) error {
	data, err := json.Marshal(wheel)
	if err != nil {
		return fmt.Errorf("failed to marshal wheel: %w", err)
	}

	updated, err := r.client.SetXX(ctx, makeWheelKey(wheel.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to update wheel: %w", err)
	}
	if !updated {
		return repository.ErrWheelNotFound
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, makeWheelKey(id))
	pipe.Del(ctx, makeSpinsKey(id))
	pipe.SRem(ctx, keyAllWheels, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete wheel: %w", err)
	}
	if del.Val() == 0 {
		return repository.ErrWheelNotFound
	}
	return nil
}

// List returns all wheels, most recently updated first.
func (r *redisRepository) List(ctx context.Context) ([]*models.Wheel, error) {
	ids, err := r.client.SMembers(ctx, keyAllWheels).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list wheels: %w", err)
	}

	wheels := make([]*models.Wheel, 0, len(ids))
	for _, id := range ids {
		wheel, err := r.GetByID(ctx, id)
		if errors.Is(err, repository.ErrWheelNotFound) {
			// индекс мог разойтись с данными, пропускаем
			continue
		}
		if err != nil {
			return nil, err
		}
		wheels = append(wheels, wheel)
	}

	sort.Slice(wheels, func(i, j int) bool {
		if wheels[i].UpdatedAt.Equal(wheels[j].UpdatedAt) {
			return wheels[i].ID < wheels[j].ID
		}
		return wheels[i].UpdatedAt.After(wheels[j].UpdatedAt)
	})
	return wheels, nil
}

// AppendSpin pushes record to the head of the wheel's spin log and trims the
// log to limit items.
func (r *redisRepository) AppendSpin(ctx context.Context, record *models.SpinRecord, limit int) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal spin: %w", err)
	}

	key := makeSpinsKey(record.WheelID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	if limit > 0 {
		pipe.LTrim(ctx, key, 0, int64(limit-1))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append spin: %w", err)
	}
	return nil
}

func (r *redisRepository) GetSpins(ctx context.Context, wheelID string, limit int) ([]models.SpinRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	items, err := r.client.LRange(ctx, makeSpinsKey(wheelID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get spins: %w", err)
	}

	records := make([]models.SpinRecord, 0, len(items))
	for _, item := range items {
		var rec models.SpinRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spin: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
