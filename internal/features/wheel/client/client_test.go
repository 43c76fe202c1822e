package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelspin-backend/internal/common/cache"
	"wheelspin-backend/internal/common/middleware"
	wheelhttp "wheelspin-backend/internal/features/wheel/delivery/http"
	"wheelspin-backend/internal/features/wheel/models/dto"
	redisrepo "wheelspin-backend/internal/features/wheel/repository/redis"
	"wheelspin-backend/internal/features/wheel/run"
	"wheelspin-backend/internal/features/wheel/selector"
	wheelservice "wheelspin-backend/internal/features/wheel/service"
	"wheelspin-backend/internal/platform/redis/redistest"
	"wheelspin-backend/internal/utils/random"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rc, _ := redistest.New(t)
	svc := wheelservice.NewWheelService(
		redisrepo.NewRedisWheelRepository(rc),
		cache.NewCacheService(rc),
		random.NewSource(),
		wheelservice.Options{SpinLogSize: 10, CacheTTL: time.Minute},
		zerolog.Nop(),
	)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler(zerolog.Nop()), middleware.HandleErrors(zerolog.Nop()))
	wheelhttp.NewWheelHandler(svc).RegisterRoutes(router.Group("/api/v1"))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func createReq() *dto.WheelCreateRequest {
	return &dto.WheelCreateRequest{
		Name:               "Team lunch",
		WinnersCount:       5,
		RemoveWinnerOnSpin: true,
		Entries: []dto.EntryRequest{
			{Label: "Pizza", Weight: 2},
			{Label: "Sushi", Weight: 1},
			{Label: "Tacos", Weight: 1},
		},
	}
}

func TestClient_CreateGetUpdate(t *testing.T) {
	srv := newBackend(t)
	c := NewClient(srv.Client(), srv.URL+"/api/v1/", zerolog.Nop())
	ctx := context.Background()

	created, err := c.CreateWheel(ctx, createReq())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Entries, 3)

	got, err := c.GetWheel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Entries, got.Entries)

	name := "Team dinner"
	updated, err := c.UpdateWheel(ctx, created.ID, &dto.WheelUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Team dinner", updated.Name)

	_, err = c.GetWheel(ctx, "missing")
	assert.ErrorIs(t, err, ErrBackend)
	assert.ErrorIs(t, err, ErrWheelNotFound)
}

func TestClient_SpinNullWinner(t *testing.T) {
	srv := newBackend(t)
	c := NewClient(srv.Client(), srv.URL+"/api/v1", zerolog.Nop())
	ctx := context.Background()

	created, err := c.CreateWheel(ctx, createReq())
	require.NoError(t, err)

	all := []string{created.Entries[0].ID, created.Entries[1].ID, created.Entries[2].ID}
	_, err = c.Spin(ctx, created.ID, all)
	assert.ErrorIs(t, err, selector.ErrNoEligibleCandidates)

	winner, err := c.Spin(ctx, created.ID, all[:2])
	require.NoError(t, err)
	assert.Equal(t, "Tacos", winner.Label)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upstream"})
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, zerolog.Nop())
	_, err := c.Spin(context.Background(), "w1", nil)
	assert.ErrorIs(t, err, ErrBackend)
	assert.False(t, errors.Is(err, selector.ErrNoEligibleCandidates))
}

func TestClient_SendsExcludeIDs(t *testing.T) {
	var got dto.SpinRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wheelspin/w1/spin", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"winner":{"id":"b","label":"Bob"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, zerolog.Nop())
	winner, err := c.Spin(context.Background(), "w1", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "b", winner.ID)
	assert.Equal(t, []string{"a"}, got.ExcludeEntryIDs)
}

// Полный цикл: контроллер поверх HTTP клиента
func TestClient_RunControllerExhaustion(t *testing.T) {
	srv := newBackend(t)
	c := NewClient(srv.Client(), srv.URL+"/api/v1", zerolog.Nop())
	ctx := context.Background()

	created, err := c.CreateWheel(ctx, createReq())
	require.NoError(t, err)

	ctrl := run.NewController(c)
	ctrl.Select(created)

	for i := 0; i < 3; i++ {
		res, err := ctrl.Spin(ctx)
		require.NoError(t, err)
		require.Equal(t, run.OutcomeWinner, res.Outcome)
	}

	res, err := ctrl.Spin(ctx)
	assert.ErrorIs(t, err, selector.ErrNoEligibleCandidates)
	assert.Equal(t, run.OutcomeNoEligible, res.Outcome)

	snap := ctrl.Snapshot()
	assert.Equal(t, run.StateIdle, snap.State)
	assert.Len(t, snap.Winners, 3)
}
