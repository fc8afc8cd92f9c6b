package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	redispkg "dashmart.backend/pkg/redis"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })
	return srv
}

func newIdempotentEngine(userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(UserIDKey, userID)
		c.Next()
	})
	r.Use(IdempotencyMiddleware())
	r.POST("/x", handler)
	return r
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	r := newIdempotentEngine(uuid.New(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestIdempotencyMiddleware_RedisErrorPassthrough(t *testing.T) {
	cli := redisv9.NewClient(&redisv9.Options{Addr: "127.0.0.1:0"})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })

	r := newIdempotentEngine(uuid.New(), func(c *gin.Context) { c.Status(http.StatusAccepted) })

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(IdempotencyHeader, "idem-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusAccepted, w.Code, "redis down must not block writes")
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	srv := startMiniRedis(t)
	userID := uuid.New()
	srv.Set("idempotency:"+userID.String()+":key-1", "processing")

	r := newIdempotentEngine(userID, func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "Request already in progress")
}

func TestIdempotencyMiddleware_StoresAndReplaysSuccess(t *testing.T) {
	startMiniRedis(t)
	userID := uuid.New()

	calls := 0
	r := newIdempotentEngine(userID, func(c *gin.Context) {
		calls++
		c.String(http.StatusCreated, `{"id":1}`)
	})

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(IdempotencyHeader, "key-3")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req2 := httptest.NewRequest(http.MethodPost, "/x", nil)
	req2.Header.Set(IdempotencyHeader, "key-3")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	require.Equal(t, http.StatusOK, w2.Code)
	require.Equal(t, "true", w2.Header().Get("X-Idempotency-Replay"))
	require.Equal(t, `{"id":1}`, w2.Body.String())
	require.Equal(t, 1, calls, "the handler must not run twice")
}

func TestIdempotencyMiddleware_CallerScoping(t *testing.T) {
	startMiniRedis(t)

	handler := func(c *gin.Context) { c.String(http.StatusCreated, `{"id":1}`) }
	userA := newIdempotentEngine(uuid.New(), handler)
	userB := newIdempotentEngine(uuid.New(), handler)

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(IdempotencyHeader, "shared-key")
	w := httptest.NewRecorder()
	userA.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same key from a different caller is a fresh request, not a replay
	req2 := httptest.NewRequest(http.MethodPost, "/x", nil)
	req2.Header.Set(IdempotencyHeader, "shared-key")
	w2 := httptest.NewRecorder()
	userB.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusCreated, w2.Code)
	require.Empty(t, w2.Header().Get("X-Idempotency-Replay"))
}

func TestIdempotencyMiddleware_DeletesKeyOnFailure(t *testing.T) {
	startMiniRedis(t)
	userID := uuid.New()

	r := newIdempotentEngine(userID, func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(IdempotencyHeader, "key-4")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	_, err := redispkg.Get(context.Background(), "idempotency:"+userID.String()+":key-4")
	require.Equal(t, redisv9.Nil, err, "failed responses are not retained for replay")
}
