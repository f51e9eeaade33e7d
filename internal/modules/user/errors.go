package user

import "errors"

var (
	ErrNotFound = errors.New("user not found")

	// ErrForbiddenField means the updates payload touched id, api_id or key.
	ErrForbiddenField = errors.New("forbidden field in updates")

	// ErrInvalidUpdates means the updates payload carried an unknown field
	// or a value that fails validation.
	ErrInvalidUpdates = errors.New("invalid updates payload")
)
