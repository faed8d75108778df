package response

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope of every API reply. Exactly one of Data and Error is set.
type Response struct {
	Data     interface{} `json:"data"`
	Error    *ErrorBody  `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// ErrorBody represents a structured error response.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Metadata ties a reply to the access log line of the same request.
type Metadata struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Success sends data with the given status code.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{Data: data, Metadata: buildMetadata(c)})
}

// Fail sends the code with its own status and message.
func Fail(c *gin.Context, code ErrCode) {
	c.JSON(code.Status(), errorResponse(c, code, nil))
}

// FailWithFields sends the code with per-field validation messages.
func FailWithFields(c *gin.Context, code ErrCode, fields map[string]string) {
	c.JSON(code.Status(), errorResponse(c, code, fields))
}

// AbortFail stops the middleware chain and sends the code.
func AbortFail(c *gin.Context, code ErrCode) {
	c.AbortWithStatusJSON(code.Status(), errorResponse(c, code, nil))
}

func errorResponse(c *gin.Context, code ErrCode, fields map[string]string) Response {
	return Response{
		Error:    &ErrorBody{Code: code, Message: GetMessage(code), Fields: fields},
		Metadata: buildMetadata(c),
	}
}

// buildMetadata reuses the request's id. Without the request ID middleware a
// fresh id is stored on the context so later log lines agree with the body.
func buildMetadata(c *gin.Context) Metadata {
	id := c.GetString(ContextKeyRequestID)
	if id == "" {
		id = uuid.New().String()
		c.Set(ContextKeyRequestID, id)
	}
	return Metadata{
		RequestID: id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
