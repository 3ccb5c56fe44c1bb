// Package controllers maps HTTP requests onto the service layer and service
// errors onto the response taxonomy.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/logger"
	"github.com/shashiranjanraj/homegrown/pkg/response"
)

// fail maps service errors to the response envelope. Unclassified errors
// are logged and become a generic 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrInvalid):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		response.Unauthorized(w)
	default:
		logger.WithCtx(r.Context()).Error("request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
