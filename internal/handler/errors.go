package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/stemsi/unigrade-backend/internal/response"
	"github.com/stemsi/unigrade-backend/internal/service"
)

// failWith maps a service error onto the response envelope.
func failWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.Fail(c, response.ErrCourseNotFound)
	case errors.Is(err, service.ErrStudentNotFound):
		response.Fail(c, response.ErrStudentNotFound)
	case errors.Is(err, service.ErrUserNotFound):
		response.Fail(c, response.ErrNotFound)
	case errors.Is(err, service.ErrSessionInvalid):
		response.Fail(c, response.ErrSessionInvalidated)
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		response.Fail(c, response.ErrInternal)
	}
}
