// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = validation.CodeValidationError
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeItemNotFound       = "ITEM_NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeCorpusUnavailable  = "CORPUS_UNAVAILABLE"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Response status values.
const (
	statusSuccess = "success"
	statusError   = "error"
)

// Fixed messages for failures whose cause must not reach the client.
const (
	msgInternal          = "Something went wrong"
	msgCorpusUnavailable = "The movie dataset is currently unavailable"
)

// legacyResponse is the body shape of the v0 routes.
type legacyResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON encodes v with status. Encoding failures are logged; the status
// line has not been sent yet so the client receives a bare 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondJSON writes a successful envelope.
func respondJSON(w http.ResponseWriter, r *http.Request, start time.Time, data interface{}) {
	writeJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: statusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError writes an error envelope. err is logged, never returned.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondErrorDetails(w, r, status, code, message, nil, err)
}

func respondErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Err(err).
			Str("code", code).
			Int("status", status).
			Str("path", logging.SanitizeValue(r.URL.Path)).
			Msg("API error")
	}

	writeJSON(w, r, status, &models.APIResponse{
		Status:   statusError,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondEngineError maps an engine failure onto the envelope.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classifyError(err)
	respondError(w, r, status, code, message, logged(err))
}

// respondValidationError writes a 400 for a failed request validation.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondErrorDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
}

// respondLegacy writes a v0 success body.
func respondLegacy(w http.ResponseWriter, r *http.Request, data interface{}) {
	writeJSON(w, r, http.StatusOK, &legacyResponse{Status: statusSuccess, Data: data})
}

// respondLegacyError writes a v0 error body.
func respondLegacyError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("Legacy API error")
	}
	writeJSON(w, r, status, &legacyResponse{Status: statusError, Message: message})
}

// respondLegacyEngineError maps an engine failure onto the legacy body.
func respondLegacyEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status, _, message := classifyError(err)
	respondLegacyError(w, r, status, message, logged(err))
}

// classifyError returns the HTTP status, error code and client-safe message
// for an engine error.
func classifyError(err error) (status int, code, message string) {
	var rerr *recommend.Error
	hasMessage := errors.As(err, &rerr) && rerr.Message != ""

	switch recommend.KindOf(err) {
	case recommend.KindItemNotFound:
		message = "Movie not found"
		if hasMessage {
			message = rerr.Message
		}
		return http.StatusNotFound, ErrCodeItemNotFound, message
	case recommend.KindInvalidRequest:
		message = "Invalid request"
		if hasMessage {
			message = rerr.Message
		}
		return http.StatusBadRequest, ErrCodeBadRequest, message
	case recommend.KindCorpusUnavailable:
		return http.StatusServiceUnavailable, ErrCodeCorpusUnavailable, msgCorpusUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, msgInternal
	}
}

// logged returns err when the API should log it. The engine already logs
// its own failures, so only user-correctable kinds are passed through for a
// warn-level request log.
func logged(err error) error {
	switch recommend.KindOf(err) {
	case recommend.KindItemNotFound, recommend.KindInvalidRequest:
		return err
	default:
		return nil
	}
}
