package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpeder/gamevault/internal/domain"
)

func TestMapServiceError_StorageErrorIsGeneric(t *testing.T) {
	driverErr := errors.New(`ERROR: duplicate key value violates unique constraint "idx_genres_name_lower" (SQLSTATE 23505)`)
	err := fmt.Errorf("failed to upsert genre: %w: %w", domain.ErrDatabaseError, driverErr)

	status, message := mapServiceErrorToUserMessage(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrMsgGenericServerError, message)
	assert.NotContains(t, message, "SQLSTATE")
}

func TestMapServiceError_WrappedSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found survives wrapping",
			err:        fmt.Errorf("loading review: %w", domain.ErrReviewNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    ErrMsgReviewNotFoundError,
		},
		{
			name:       "validation survives wrapping",
			err:        fmt.Errorf("checking submission: %w", domain.ErrTitleRequired),
			wantStatus: http.StatusBadRequest,
			wantMsg:    ErrMsgTitleRequiredError,
		},
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    ErrMsgUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, message)
		})
	}
}
