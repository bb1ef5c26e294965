package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/logger"
)

// ErrorResponse represents an error response.
// Issues is set for invalid ID formats, Reason for rejected custom ID edits.
type ErrorResponse struct {
	Error     string                `json:"error"`
	Issues    []domain.SegmentIssue `json:"issues,omitempty"`
	Reason    string                `json:"reason,omitempty"`
	Retryable bool                  `json:"retryable,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to its HTTP status and logs it.
// Unknown errors become a generic 500 so storage details never leak.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, resp := mapServiceError(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgClientError, "operation", opName, "status", status, "error", err)
	}

	respondJSON(w, status, resp)
}

func mapServiceError(err error) (int, ErrorResponse) {
	var tmplErr *domain.TemplateError
	if errors.As(err, &tmplErr) {
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgFormatInvalidError, Issues: tmplErr.Issues}
	}
	var editErr *domain.EditRejectedError
	if errors.As(err, &editErr) {
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgEditRejectedError, Reason: editErr.Reason}
	}

	switch {
	case errors.Is(err, domain.ErrMultipleSequenceSegments):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgMultipleSequenceError}
	case errors.Is(err, domain.ErrFormatInvalid):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgFormatInvalidError, Reason: err.Error()}
	case errors.Is(err, domain.ErrEditRejected):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgEditRejectedError}
	case errors.Is(err, domain.ErrSequenceConflict):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgSequenceConflictError, Retryable: true}
	case errors.Is(err, domain.ErrCustomIDConflict):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgCustomIDConflictError}
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgVersionConflictError}
	case errors.Is(err, domain.ErrDuplicateRequest):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgDuplicateRequestError, Retryable: true}
	case errors.Is(err, domain.ErrInventoryTitleTaken):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgTitleTakenError}
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgItemNotFoundError}
	case errors.Is(err, domain.ErrInventoryNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgInventoryNotFoundError}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}
