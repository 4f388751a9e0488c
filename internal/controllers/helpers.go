package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/havenstay/backend/internal/utils"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into req and runs struct
// validation, responding with 400 on either failure.
func decodeAndValidate[T any](w http.ResponseWriter, r *http.Request, req *T) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(*req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Request failed validation", nil, err,
		)
		return false
	}
	return true
}

// idParam extracts and parses the {id} route variable.
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Malformed id", nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}
