// Package handler maps domain errors to HTTP responses.
package handler

import (
	"errors"
	"net/http"

	"kwlab-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// HandleError writes the JSON error response that matches the domain
// error type. Unknown errors surface as 500 without leaking internals.
func HandleError(c echo.Context, err error) error {
	var (
		authErr  *model.AuthError
		notFound *model.NotFoundError
		invalid  *model.InvalidParamError
		noCred   *model.NoCredentialAvailableError
	)

	switch {
	case errors.As(err, &authErr):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: authErr.Error()})
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: notFound.Error()})
	case errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: invalid.Error()})
	case errors.As(err, &noCred):
		// Quota exhaustion is an operational state, not a client mistake.
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: noCred.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
