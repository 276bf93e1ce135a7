package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/middleware"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, AppError) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.TraceIDKey, "trace-1")

	ErrorResponse(c, err)

	var body AppError
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorResponse(t *testing.T) {
	t.Run("code", func(t *testing.T) {
		w, body := respond(t, fmt.Errorf("wrap: %w", code.ErrorRecordNotFound.Clone().WithDetails("id=9")))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, code.ErrorRecordNotFound.Code(), body.Code)
		assert.Equal(t, []string{"id=9"}, body.Details)
		assert.Equal(t, "trace-1", body.TraceID)
	})

	t.Run("app error", func(t *testing.T) {
		w, body := respond(t, NewAppError(code.ErrorConflict, nil))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, code.ErrorConflict.Code(), body.Code)
	})

	t.Run("unknown error hides internals", func(t *testing.T) {
		w, body := respond(t, errors.New("dial tcp 10.0.0.1:3306: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, code.ErrorServerInternal.Code(), body.Code)
		assert.NotContains(t, body.Message, "10.0.0.1")
		assert.Empty(t, body.Details)
	})
}
