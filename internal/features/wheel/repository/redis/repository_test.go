package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelspin-backend/internal/features/wheel/models"
	"wheelspin-backend/internal/features/wheel/repository"
	"wheelspin-backend/internal/platform/redis/redistest"
)

func newWheel(id string, updated time.Time) *models.Wheel {
	return &models.Wheel{
		ID:           id,
		Name:         "Wheel " + id,
		WinnersCount: 2,
		Entries: []models.Entry{
			{ID: id + "-a", Label: "A", Weight: 1},
			{ID: id + "-b", Label: "B", Weight: 3},
		},
		CreatedAt: updated,
		UpdatedAt: updated,
	}
}

func TestRepository_CreateGet(t *testing.T) {
	client, _ := redistest.New(t)
	repo := NewRedisWheelRepository(client)
	ctx := context.Background()

	w := newWheel("w1", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, w, got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrWheelNotFound)
}

func TestRepository_Update(t *testing.T) {
	client, _ := redistest.New(t)
	repo := NewRedisWheelRepository(client)
	ctx := context.Background()

	w := newWheel("w1", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, w))

	w.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, w))

	got, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	err = repo.Update(ctx, newWheel("missing", time.Now()))
	assert.ErrorIs(t, err, repository.ErrWheelNotFound)
}

func TestRepository_UpdateAfterDeleteDoesNotRecreate(t *testing.T) {
	client, mr := redistest.New(t)
	repo := NewRedisWheelRepository(client)
	ctx := context.Background()

	w := newWheel("w1", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, w))
	require.NoError(t, repo.Delete(ctx, "w1"))

	w.Name = "Late edit"
	err := repo.Update(ctx, w)
	assert.ErrorIs(t, err, repository.ErrWheelNotFound)
	assert.False(t, mr.Exists("wheel:w1"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_DeleteRemovesSpins(t *testing.T) {
	client, mr := redistest.New(t)
	repo := NewRedisWheelRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newWheel("w1", time.Now())))
	require.NoError(t, repo.AppendSpin(ctx, &models.SpinRecord{WheelID: "w1", EntryID: "w1-a"}, 10))

	require.NoError(t, repo.Delete(ctx, "w1"))
	assert.False(t, mr.Exists("wheel:w1"))
	assert.False(t, mr.Exists("wheel:w1:spins"))

	err := repo.Delete(ctx, "w1")
	assert.ErrorIs(t, err, repository.ErrWheelNotFound)
}

func TestRepository_ListNewestFirst(t *testing.T) {
	client, _ := redistest.New(t)
	repo := NewRedisWheelRepository(client)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newWheel(fmt.Sprintf("w%d", i), base.Add(time.Duration(i)*time.Hour))))
	}

	wheels, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, wheels, 3)
	assert.Equal(t, "w2", wheels[0].ID)
	assert.Equal(t, "w0", wheels[2].ID)
}

func TestRepository_SpinLogCapped(t *testing.T) {
	client, _ := redistest.New(t)
	repo := NewRedisWheelRepository(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := &models.SpinRecord{WheelID: "w1", EntryID: fmt.Sprintf("e%d", i), Label: "L"}
		require.NoError(t, repo.AppendSpin(ctx, rec, 3))
	}

	spins, err := repo.GetSpins(ctx, "w1", 0)
	require.NoError(t, err)
	require.Len(t, spins, 3)
	assert.Equal(t, "e4", spins[0].EntryID)
	assert.Equal(t, "e2", spins[2].EntryID)

	spins, err = repo.GetSpins(ctx, "w1", 1)
	require.NoError(t, err)
	require.Len(t, spins, 1)
	assert.Equal(t, "e4", spins[0].EntryID)
}
