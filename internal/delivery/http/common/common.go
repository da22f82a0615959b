package http_common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/cineverse/internal/model"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"error" example:"watch party not found"`
}

type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
}

func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message picks the most specific text out of a joined error.
func Message(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return Message(errs[len(errs)-1])
		}
	}
	return err.Error()
}

func WriteError(ctx *gin.Context, err error) {
	ctx.JSON(Status(err), ErrorResponse{Message: Message(err)})
}

func BadRequest(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: msg})
}

// IncludeAdult reads the includeAdult query flag, defaulting to false.
func IncludeAdult(ctx *gin.Context) bool {
	return ctx.Query("includeAdult") == "true"
}
