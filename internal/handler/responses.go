package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Review messages
	ErrMsgReviewNotFoundError  = "Review not found"
	ErrMsgTitleRequiredError   = "Title is required"
	ErrMsgGameRequiredError    = "Game name is required"
	ErrMsgTextRequiredError    = "Review text is required"
	ErrMsgRatingRequiredError  = "Rating is required"
	ErrMsgDuplicateGameError   = "A game with that name already exists"

	// Archive messages
	ErrMsgArchiveNotFoundError = "Archived review not found"
	ErrMsgEmptyPatchError      = "Patch must contain at least one field"

	// Taxonomy messages
	ErrMsgGenreRequiredError    = "Genre name or id is required"
	ErrMsgGenreNotFoundError    = "Genre not found"
	ErrMsgCategoryNotFoundError = "Category not found"

	// Game messages
	ErrMsgGameNotFoundError = "Game not found"

	// Scratch-pad messages
	ErrMsgWipNotFoundError = "Wip review not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, ErrMsgReviewNotFoundError
	case errors.Is(err, domain.ErrArchiveNotFound):
		return http.StatusNotFound, ErrMsgArchiveNotFoundError
	case errors.Is(err, domain.ErrGenreNotFound):
		return http.StatusNotFound, ErrMsgGenreNotFoundError
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, ErrMsgCategoryNotFoundError
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFoundError
	case errors.Is(err, domain.ErrWipNotFound):
		return http.StatusNotFound, ErrMsgWipNotFoundError
	case errors.Is(err, domain.ErrTitleRequired):
		return http.StatusBadRequest, ErrMsgTitleRequiredError
	case errors.Is(err, domain.ErrGameNameRequired):
		return http.StatusBadRequest, ErrMsgGameRequiredError
	case errors.Is(err, domain.ErrReviewTextRequired):
		return http.StatusBadRequest, ErrMsgTextRequiredError
	case errors.Is(err, domain.ErrRatingRequired):
		return http.StatusBadRequest, ErrMsgRatingRequiredError
	case errors.Is(err, domain.ErrGenreNameRequired):
		return http.StatusBadRequest, ErrMsgGenreRequiredError
	case errors.Is(err, domain.ErrEmptyPatch):
		return http.StatusBadRequest, ErrMsgEmptyPatchError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrDuplicateGame):
		return http.StatusConflict, ErrMsgDuplicateGameError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (mostly from tests and mocks) pass through
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
