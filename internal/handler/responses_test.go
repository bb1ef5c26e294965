package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantRetryable bool
	}{
		{"template error", &domain.TemplateError{Issues: []domain.SegmentIssue{{Index: 0}}}, http.StatusUnprocessableEntity, false},
		{"wrapped format invalid", fmt.Errorf("%w: at least one segment is required", domain.ErrFormatInvalid), http.StatusUnprocessableEntity, false},
		{"edit rejected", &domain.EditRejectedError{Reason: "length changed"}, http.StatusUnprocessableEntity, false},
		{"wrapped sequence conflict", fmt.Errorf("%w: inventory x", domain.ErrSequenceConflict), http.StatusConflict, true},
		{"custom id conflict", domain.ErrCustomIDConflict, http.StatusConflict, false},
		{"version conflict", fmt.Errorf("%w: expected version 1, current 2", domain.ErrVersionConflict), http.StatusConflict, false},
		{"duplicate request", domain.ErrDuplicateRequest, http.StatusConflict, true},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, false},
		{"inventory not found", domain.ErrInventoryNotFound, http.StatusNotFound, false},
		{"invalid input", fmt.Errorf("%w: field 3 is not a number", domain.ErrInvalidInput), http.StatusBadRequest, false},
		{"unknown", errors.New("disk full"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantRetryable, resp.Retryable)
			assert.NotEmpty(t, resp.Error)
		})
	}

	t.Run("template issues are exposed", func(t *testing.T) {
		_, resp := mapServiceError(&domain.TemplateError{Issues: []domain.SegmentIssue{{Index: 2, Message: "bad"}}})
		assert.Len(t, resp.Issues, 1)
	})

	t.Run("invalid input keeps its detail", func(t *testing.T) {
		_, resp := mapServiceError(fmt.Errorf("%w: field 3 is not a number", domain.ErrInvalidInput))
		assert.Contains(t, resp.Error, "field 3 is not a number")
	})
}
