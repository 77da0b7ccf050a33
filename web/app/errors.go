package app

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/country-app/pkg/routes"
)

var (
	errEmptyLocation = errors.New("location required")
	errRateLimited   = errors.New("navigation rate exceeded")
)

// MapHTTPStatus maps navigation errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, routes.ErrNoMatch) || errors.Is(err, routes.ErrUnknownRoute) {
		return http.StatusNotFound
	}
	if errors.Is(err, routes.ErrMissingParam) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
