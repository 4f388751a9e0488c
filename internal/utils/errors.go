package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the repository and service layers to provide
// fine-grained failure reasons.
var (
	ErrValidation         = errors.New("validation_failed")
	ErrNotFound           = errors.New("not_found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrInvalidStatus      = errors.New("invalid_status")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HandleAppError centralizes responding to AppErrors. Sentinel errors from
// the repository layer are mapped to their canonical status and code;
// anything unrecognized falls back to a 500.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
		return
	}

	switch {
	case errors.Is(err, ErrValidation):
		RespondErrorWithCode(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil, err)
	case errors.Is(err, ErrNotFound):
		RespondErrorWithCode(w, http.StatusNotFound, ErrCodeNotFound, err.Error(), nil, err)
	case errors.Is(err, ErrUnauthorized):
		RespondErrorWithCode(w, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error(), nil, err)
	case errors.Is(err, ErrForbidden):
		RespondErrorWithCode(w, http.StatusForbidden, ErrCodeForbidden, err.Error(), nil, err)
	case errors.Is(err, ErrInvalidCredentials):
		RespondErrorWithCode(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid email or password", nil, err)
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidRole):
		RespondErrorWithCode(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil, err)
	default:
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
