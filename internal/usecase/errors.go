package usecase

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
// Wrap with fmt.Errorf("%w: detail", ...) so errors.Is keeps working.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrDelivery           = errors.New("delivery failed")
)
