package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	ErrCodeInvalidPayload     = "invalid_payload"
	ErrCodeValidation         = "validation_error"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeForbidden          = "forbidden"
	ErrCodeTokenExpired       = "token_expired"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeInternal           = "internal_server_error"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
)

// ErrorResponse carries a standard code and message, with an optional
// `Details` field for additional info.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// RespondErrorWithCode builds a JSON error response with a standard
// code and message. The optional `details` is included if non-nil.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	details any,
	devErrs ...error,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errBody := ErrorResponse{
		Code:    errorCode,
		Message: publicMessage,
	}
	if details != nil {
		errBody.Details = details
	}
	_ = json.NewEncoder(w).Encode(errBody)

	// devErr is optional; only handle if provided
	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}

// RespondWithJSON for successful cases
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
