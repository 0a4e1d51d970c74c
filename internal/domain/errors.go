package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (or belongs to a different owner).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service and engine functions when input fails
// business rule validation (e.g. empty activity title, duplicate email).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStorageWrite is returned when the durable store cannot persist a
// collection. Unlike corrupt reads (which silently degrade to empty),
// write failures are surfaced so the client can show a transient warning.
// Handlers should map this to HTTP 503.
var ErrStorageWrite = errors.New("storage write failed")
