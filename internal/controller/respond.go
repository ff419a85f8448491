package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Admitra/internal/apperr"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError maps a service error to its HTTP status. Unclassified errors
// are logged and surfaced as a generic 500; internal detail never reaches the
// client.
func RespondError(c *gin.Context, err error) {
	if ae, ok := apperr.As(err); ok {
		status := apperr.HTTPStatus(ae.Code)
		msg := ae.Message
		if ae.Code == apperr.CodeInternal {
			msg = "internal server error"
		}
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Unclassified error reached controller")
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
}

// ParseIDParam reads a uint path parameter, responding 400 itself on failure.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
