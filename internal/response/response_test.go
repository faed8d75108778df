package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, withRequestID bool, h gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if withRequestID {
		r.Use(RequestIDMiddleware())
	}
	r.GET("/", h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFailUsesStatusOfCode(t *testing.T) {
	cases := map[ErrCode]int{
		ErrCourseNotFound:     http.StatusNotFound,
		ErrSessionInvalidated: http.StatusUnauthorized,
		ErrValidation:         http.StatusBadRequest,
		ErrRateLimitExceeded:  http.StatusTooManyRequests,
		ErrUnavailable:        http.StatusServiceUnavailable,
		ErrCode("NO_SUCH"):    http.StatusInternalServerError,
	}
	for code, status := range cases {
		w, body := serve(t, true, func(c *gin.Context) { Fail(c, code) })
		assert.Equal(t, status, w.Code, code)
		require.NotNil(t, body.Error)
		assert.Equal(t, code, body.Error.Code)
		assert.Nil(t, body.Data)
	}
}

func TestFailWithFieldsCarriesFields(t *testing.T) {
	_, body := serve(t, true, func(c *gin.Context) {
		FailWithFields(c, ErrValidation, map[string]string{"marks[0].lab": "lab is a required field"})
	})
	require.NotNil(t, body.Error)
	assert.Equal(t, "lab is a required field", body.Error.Fields["marks[0].lab"])
	assert.Equal(t, GetMessage(ErrValidation), body.Error.Message)
}

func TestMetadataEchoesRequestID(t *testing.T) {
	w, body := serve(t, true, func(c *gin.Context) { Success(c, http.StatusOK, gin.H{"ok": true}) })
	assert.Equal(t, "req-42", body.Metadata.RequestID)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.Nil(t, body.Error)
}

func TestMetadataStoresFallbackID(t *testing.T) {
	var stored string
	_, body := serve(t, false, func(c *gin.Context) {
		Success(c, http.StatusOK, nil)
		stored = c.GetString(ContextKeyRequestID)
	})
	assert.NotEmpty(t, body.Metadata.RequestID)
	assert.Equal(t, body.Metadata.RequestID, stored)
}
