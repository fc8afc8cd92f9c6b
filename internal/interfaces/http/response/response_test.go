package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	domainerrors "dashmart.backend/internal/domain/errors"
)

func renderError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, err)
	return w
}

func TestError_AppErrorPassthrough(t *testing.T) {
	w := renderError(domainerrors.Forbidden("no delete grant"))
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"error":"no delete grant"}`, w.Body.String())
}

func TestError_NotFoundSentinel(t *testing.T) {
	w := renderError(domainerrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"resource not found"}`, w.Body.String())

	// Wrapped sentinels map the same way
	w = renderError(fmt.Errorf("revoke key: %w", domainerrors.ErrNotFound))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"resource not found"}`, w.Body.String())
}

func TestError_StorageFailureIsInternal(t *testing.T) {
	w := renderError(errors.Join(domainerrors.ErrStorage, errors.New("dial tcp: refused")))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestError_OpaqueErrorIsInternal(t *testing.T) {
	w := renderError(errors.New("something unexpected"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
