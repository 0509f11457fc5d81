package apiutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tanmaydb/courtdesk/internal/fault"
)

func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteError maps the error taxonomy onto HTTP statuses. Validation and
// not-found messages are safe to show; anything else becomes a generic 500
// with the cause logged for operators.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case fault.IsValidation(err):
		_ = WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case fault.IsNotFound(err):
		_ = WriteJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
		_ = WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
