package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

// mapError converts PostgreSQL errors the services care about into domain errors.
// Context errors and everything else pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case PgErrorCodeUniqueViolation:
		switch pgErr.ConstraintName {
		case ConstraintItemsCustomID:
			return fmt.Errorf("%w: %s", domain.ErrCustomIDTaken, pgErr.Detail)
		case ConstraintInventoriesTitle:
			return fmt.Errorf("%w: %s", domain.ErrInventoryTitleTaken, pgErr.Detail)
		case ConstraintInventoryFieldTitle:
			return fmt.Errorf("%w: duplicate field title", domain.ErrInvalidInput)
		}
	case PgErrorCodeForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrInventoryNotFound, pgErr.Detail)
	case PgErrorCodeSerializationFailure, PgErrorCodeDeadlockDetected:
		return fmt.Errorf("%w: %s", domain.ErrSerializationFailure, pgErr.Message)
	}
	return err
}
