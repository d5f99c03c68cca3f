// Package respond holds the response helpers shared by every handler.
package respond

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/rs/zerolog/log"
)

// Error writes err as a dto.ErrorResponse with the status of its kind and
// aborts the chain. Server-side failures are logged with their cause and
// answered with a generic message.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := kind.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("kind", kind.String()).
			Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: apperr.PublicMessage(err)})
}

// BadRequest reports a binding or parsing failure.
func BadRequest(c *gin.Context, message string, err error) {
	resp := dto.ErrorResponse{Message: message}
	if err != nil {
		log.Warn().Err(err).Str("path", c.FullPath()).Msg(message)
		resp.Details = []string{err.Error()}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// ParseID reads a positive integer path parameter. On failure it has
// already written a 400.
func ParseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "Invalid "+param, nil)
		return 0, false
	}
	return uint(id), true
}

// OptionalQueryID reads an optional positive integer query parameter.
func OptionalQueryID(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "Invalid "+name, nil)
		return nil, false
	}
	v := uint(id)
	return &v, true
}
