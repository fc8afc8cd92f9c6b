package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })
}

func TestSetGetDel(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, "k1", "v1", time.Minute))

	val, err := Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, "v1", val)

	require.NoError(t, Del(ctx, "k1"))

	_, err = Get(ctx, "k1")
	require.Equal(t, redisv9.Nil, err)
}

func TestSetNX(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	ok, err := SetNX(ctx, "lock", "processing", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = SetNX(ctx, "lock", "processing", time.Minute)
	require.NoError(t, err)
	require.False(t, ok, "second acquire must fail while key exists")
}

func TestInit_BadURL(t *testing.T) {
	require.Error(t, Init(Config{URL: "not-a-redis-url"}))
}

func TestInit_PasswordOverride(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)
	srv.RequireAuth("hunter2")

	require.Error(t, Init(Config{URL: "redis://" + srv.Addr()}),
		"connecting without the password must fail the ping")

	require.NoError(t, Init(Config{URL: "redis://" + srv.Addr(), Password: "hunter2"}))
	t.Cleanup(func() { _ = GetClient().Close() })
}

func TestGetClient(t *testing.T) {
	setupTestRedis(t)
	require.NotNil(t, GetClient())
}
