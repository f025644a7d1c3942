package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse is the envelope for every failed request: a human-readable
// message plus an explicit success flag.
type ErrorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// MessageResponse is the envelope for successful requests that carry no
// payload beyond a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Message: message, Success: false})
}

// RespondWithDomainError translates a service error into the client
// response. Taxonomy errors (4xx) carry their own message; 500-class
// failures log full detail server-side and return a generic message
// only.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := HTTPStatusFromError(err)
	if code < http.StatusInternalServerError {
		RespondWithError(w, code, err.Error())
		return
	}

	log.Error().Err(err).Msg("Request failed")
	message := "Internal server error"
	if errors.Is(err, ErrConfig) {
		message = "Server configuration error"
	}
	RespondWithError(w, code, message)
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "Failed to marshal JSON response", "success": false}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
