package middleware

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelspin-backend/internal/common/errors"
)

func newRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.New(buf)

	r := gin.New()
	r.Use(RequestID(), Logger(logger), ErrorHandler(logger), HandleErrors(logger))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), "Request processed")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandleErrors_AppError(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)
	r.GET("/wheel", func(c *gin.Context) {
		_ = c.Error(errors.NewWheelNotFoundError("w1"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wheel", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "WHEEL_NOT_FOUND", errBody["code"])
	assert.Equal(t, "/wheel", body["path"])
}

func TestLogger_RecordsErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)
	r.GET("/wheel", func(c *gin.Context) {
		_ = c.Error(errors.NewWheelNotFoundError("w1"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wheel", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	line := accessLine(t, &buf, "/wheel")
	assert.EqualValues(t, http.StatusNotFound, line["status"])
	assert.EqualValues(t, w.Body.Len(), line["body_size"])

	buf.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.EqualValues(t, http.StatusInternalServerError, accessLine(t, &buf, "/panic")["status"])
}

// accessLine returns the "Request processed" entry for path.
func accessLine(t *testing.T, buf *bytes.Buffer, path string) map[string]interface{} {
	t.Helper()
	for _, raw := range bytes.Split(buf.Bytes(), []byte("\n")) {
		var entry map[string]interface{}
		if json.Unmarshal(raw, &entry) != nil {
			continue
		}
		if entry["message"] == "Request processed" && entry["path"] == path {
			return entry
		}
	}
	t.Fatalf("no access log line for %s in %s", path, buf.String())
	return nil
}

func TestHandleErrors_PlainError(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(stderrors.New("redis down"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "Internal error occurred")
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)
	r.GET("/panic", func(c *gin.Context) { panic("spin wheel fell off") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "Panic recovered")
	body := decode(t, w)
	assert.Equal(t, "INTERNAL_ERROR", body["error"].(map[string]interface{})["code"])
}

func TestBindingError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		Name   string `json:"name" binding:"required"`
		Weight int    `json:"weight" binding:"required,min=1"`
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"weight":0}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var p payload
	err := c.ShouldBindJSON(&p)
	require.Error(t, err)

	appErr := BindingError(err)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(appErr))

	appErr = BindingError(stderrors.New("unexpected EOF"))
	assert.Equal(t, errors.ErrCodeBadRequest, appErr.Code)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(errors.New(errors.ErrCodeInvalidEntryWeight, "w")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(errors.New(errors.ErrCodeUnknownEntry, "u")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(errors.New(errors.ErrCodeNotFound, "n")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New(errors.ErrCodeStorageError, "s")))
}
