package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

// Error envelope codes returned by the service.
const (
	CodeBadRequest         = "bad_request"
	CodeValidationFailed   = "validation_failed"
	CodeProfileNotFound    = "profile_not_found"
	CodeCatalogUnavailable = "catalog_unavailable"
	CodeInternalError      = "internal_error"
)

// APIError is a non-2xx response from the match API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("affinity api: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// IsNotFound reports whether the error is a profile-not-found response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnavailable reports whether the error indicates the service cannot
// currently compute matches (e.g. taxonomy catalog unreachable).
func IsUnavailable(err error) bool {
	return hasStatus(err, http.StatusServiceUnavailable)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
