package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelspin-backend/internal/common/cache"
	"wheelspin-backend/internal/common/middleware"
	wheelhttp "wheelspin-backend/internal/features/wheel/delivery/http"
	"wheelspin-backend/internal/features/wheel/client"
	"wheelspin-backend/internal/features/wheel/editor"
	redisrepo "wheelspin-backend/internal/features/wheel/repository/redis"
	wheelservice "wheelspin-backend/internal/features/wheel/service"
	"wheelspin-backend/internal/platform/redis/redistest"
	"wheelspin-backend/internal/utils/random"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
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
	router.Use(middleware.RequestID(), middleware.HandleErrors(zerolog.Nop()))
	wheelhttp.NewWheelHandler(svc).RegisterRoutes(router.Group("/api/v1"))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	return &commandLine{
		api:        client.NewClient(srv.Client(), srv.URL+"/api/v1", zerolog.Nop()),
		out:        &out,
		extraTurns: 3,
		logger:     zerolog.Nop(),
	}, &out
}

func createWheel(t *testing.T, cli *commandLine, out *bytes.Buffer, args ...string) string {
	t.Helper()
	out.Reset()
	require.NoError(t, cli.run(context.Background(), append([]string{"wheelctl", "create"}, args...)))

	var id string
	_, err := fmt.Sscanf(out.String(), "created wheel %s", &id)
	require.NoError(t, err)
	return id
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_usage(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no command", args: nil, wantErr: errHelp},
		{name: "unknown command", args: []string{"dance"}, wantErr: errHelp},
		{name: "create without entries", args: []string{"create", "-name", "x"}, wantErr: errHelp},
		{name: "show without id", args: []string{"show"}, wantErr: errHelp},
		{name: "edit without change", args: []string{"edit", "-id", "w", "-index", "0"}, wantErr: errHelp},
		{name: "run without id", args: []string{"run"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(context.Background(), append([]string{"wheelctl"}, tt.args...))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_commandLine_create(t *testing.T) {
	cli, out := setup(t)

	id := createWheel(t, cli, out, "-name", "Lunch", "-winners", "2", "-entry", "Pizza:3", "-entry", "Sushi")
	assert.NotEmpty(t, id)
	assert.Contains(t, out.String(), "2 entries, total weight 4")

	out.Reset()
	err := cli.run(context.Background(), []string{"wheelctl", "create", "-name", "Bad", "-entry", "Pizza:lots"})
	assert.ErrorIs(t, err, editor.ErrInvalidEntryWeight)
	assert.Empty(t, out.String())
}

func Test_commandLine_showAndEdit(t *testing.T) {
	cli, out := setup(t)
	id := createWheel(t, cli, out, "-name", "Lunch", "-entry", "Pizza:1", "-entry", "Sushi:3")

	out.Reset()
	require.NoError(t, cli.run(context.Background(), []string{"wheelctl", "show", "-id", id}))
	assert.Contains(t, out.String(), "Pizza")
	assert.Contains(t, out.String(), "90.0°")

	out.Reset()
	require.NoError(t, cli.run(context.Background(), []string{"wheelctl", "edit", "-id", id, "-index", "1", "-weight", "1"}))
	assert.Contains(t, out.String(), "total weight 2")

	err := cli.run(context.Background(), []string{"wheelctl", "edit", "-id", id, "-index", "0", "-weight", "-3"})
	assert.ErrorIs(t, err, editor.ErrInvalidEntryWeight)

	err = cli.run(context.Background(), []string{"wheelctl", "edit", "-id", id, "-index", "7", "-delete"})
	assert.ErrorIs(t, err, editor.ErrEntryIndexOutOfRange)

	out.Reset()
	require.NoError(t, cli.run(context.Background(), []string{"wheelctl", "edit", "-id", id, "-index", "0", "-delete"}))
	assert.Contains(t, out.String(), "1 entries")
}

func Test_commandLine_run(t *testing.T) {
	cli, out := setup(t)
	id := createWheel(t, cli, out, "-name", "Raffle", "-winners", "3", "-remove",
		"-entry", "A:1", "-entry", "B:2", "-entry", "C:3")

	out.Reset()
	require.NoError(t, cli.run(context.Background(), []string{"wheelctl", "run", "-id", id, "-rounds", "2", "-delay", "0s"}))

	got := out.String()
	assert.Contains(t, got, "round 2")
	assert.Equal(t, 6, strings.Count(got, "winner: "))
	assert.Equal(t, 2, strings.Count(got, "winners (exhausted)"))
	assert.Contains(t, got, "spinning to")
}

func Test_commandLine_runExhaustsEntries(t *testing.T) {
	cli, out := setup(t)
	id := createWheel(t, cli, out, "-name", "Raffle", "-winners", "5", "-remove", "-entry", "A:1", "-entry", "B:1")

	out.Reset()
	require.NoError(t, cli.run(context.Background(), []string{"wheelctl", "run", "-id", id}))

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "winner: "))
	assert.Contains(t, got, "no more eligible entries")
	assert.Contains(t, got, "winners (idle)")
}
