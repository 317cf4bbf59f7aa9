package controllers

import (
	"errors"
	"net/http"

	"github.com/zephyrlabs/zephyr/app/services"
	"github.com/zephyrlabs/zephyr/pkg/logger"
	"github.com/zephyrlabs/zephyr/pkg/response"
)

// fail maps a domain error to the legacy status code and plain-text body.
// Unrecognised errors are logged and become the generic 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		response.Text(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, services.ErrOutOfStock):
		response.Text(w, http.StatusNotFound, "This item is out of stock!")
	case errors.Is(err, services.ErrUserNotFound):
		response.Text(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Text(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrMissingCredentials):
		response.Text(w, http.StatusBadRequest, "Invalid or missing credentials")
	case errors.Is(err, services.ErrUsernameTaken):
		response.Text(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, services.ErrEmailTaken):
		response.Text(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, services.ErrEmptyCart):
		response.Text(w, http.StatusBadRequest, "Must have an item in cart.")
	default:
		logger.WithCtx(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		response.Internal(w)
	}
}
