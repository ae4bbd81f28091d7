package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hearth-app/hearth/internal/errors"
	"github.com/hearth-app/hearth/internal/logger"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response", "error", err)
	}
}

// WriteError renders err as the `{"error": "..."}` body every client of this
// API expects. The status comes from ErrorWithStatusCode, defaulting to 500.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		status = e.StatusCode
	}
	WriteJSON(w, status, map[string]string{"error": err.Error()})
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValidate decodes a JSON request body and checks the `validate` struct
// tags of the target type.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("decoding request body", "error", err)
		return errors.BadRequest("Body is invalid json")
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("validating request body", "error", err)
		return errors.BadRequest("Missing required fields.")
	}
	return nil
}
