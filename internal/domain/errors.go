package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrProfileNotFound signals a missing actor or candidate profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrCatalogUnavailable signals that the taxonomy snapshot could not be loaded.
	ErrCatalogUnavailable = errors.New("taxonomy catalog unavailable")
	// ErrInvalidRequest signals a malformed match request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRetrieval signals a candidate pool retrieval failure.
	ErrRetrieval = errors.New("candidate retrieval failed")
)
