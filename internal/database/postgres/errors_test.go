package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "custom id unique violation",
			err:  &pgconn.PgError{Code: PgErrorCodeUniqueViolation, ConstraintName: ConstraintItemsCustomID},
			want: domain.ErrCustomIDTaken,
		},
		{
			name: "inventory title unique violation",
			err:  &pgconn.PgError{Code: PgErrorCodeUniqueViolation, ConstraintName: ConstraintInventoriesTitle},
			want: domain.ErrInventoryTitleTaken,
		},
		{
			name: "field title unique violation",
			err:  &pgconn.PgError{Code: PgErrorCodeUniqueViolation, ConstraintName: ConstraintInventoryFieldTitle},
			want: domain.ErrInvalidInput,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: PgErrorCodeForeignKeyViolation},
			want: domain.ErrInventoryNotFound,
		},
		{
			name: "serialization failure",
			err:  &pgconn.PgError{Code: PgErrorCodeSerializationFailure},
			want: domain.ErrSerializationFailure,
		},
		{
			name: "deadlock",
			err:  &pgconn.PgError{Code: PgErrorCodeDeadlockDetected},
			want: domain.ErrSerializationFailure,
		},
		{
			name: "wrapped serialization failure",
			err:  fmt.Errorf("commit: %w", &pgconn.PgError{Code: PgErrorCodeSerializationFailure}),
			want: domain.ErrSerializationFailure,
		},
		{
			name: "context canceled passes through",
			err:  context.Canceled,
			want: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.err), tt.want)
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	assert.NoError(t, mapError(nil))

	unknown := &pgconn.PgError{Code: "42P01"}
	assert.Same(t, unknown, errors.Unwrap(fmt.Errorf("x: %w", mapError(unknown))))

	other := &pgconn.PgError{Code: PgErrorCodeUniqueViolation, ConstraintName: "something_else"}
	assert.False(t, errors.Is(mapError(other), domain.ErrCustomIDTaken))
}
