package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/unigrade-backend/internal/model"
)

func bindBody(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Setup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestBindAcceptsLogin(t *testing.T) {
	var req model.LoginRequest
	assert.Nil(t, bindBody(t, `{"identifier":"alice@uni.edu"}`, &req))
	assert.Equal(t, "alice@uni.edu", req.Identifier)
}

func TestBindRejectsBlankIdentifier(t *testing.T) {
	var req model.LoginRequest
	fields := bindBody(t, `{"identifier":"   "}`, &req)
	require.NotNil(t, fields)
	assert.Equal(t, "identifier must not be blank", fields["identifier"])
}

func TestBindReportsNestedMarkFields(t *testing.T) {
	var req model.SaveMarksRequest
	fields := bindBody(t, `{"submit":true,"marks":[{"student_id":"u4","theory":10}]}`, &req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "marks[0].lab")
}

func TestBindReportsMalformedJSON(t *testing.T) {
	var req model.LoginRequest
	fields := bindBody(t, `{"identifier":`, &req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "detail")
}
