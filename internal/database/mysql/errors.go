package mysql

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// mapError converts MySQL server errors into domain errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrTxDone) {
		return repository.ErrTxClosed
	}

	var myErr *gomysql.MySQLError
	if !errors.As(err, &myErr) {
		return err
	}

	switch myErr.Number {
	case ErNumDupEntry:
		switch {
		case strings.Contains(myErr.Message, KeyItemsCustomID):
			return fmt.Errorf("%w: %s", domain.ErrCustomIDTaken, myErr.Message)
		case strings.Contains(myErr.Message, KeyInventoriesTitle):
			return fmt.Errorf("%w: %s", domain.ErrInventoryTitleTaken, myErr.Message)
		case strings.Contains(myErr.Message, KeyInventoryFieldTitle):
			return fmt.Errorf("%w: duplicate field title", domain.ErrInvalidInput)
		}
	case ErNumNoReferencedRow, ErNumNoReferencedRowV2:
		return fmt.Errorf("%w: %s", domain.ErrInventoryNotFound, myErr.Message)
	case ErNumLockDeadlock, ErNumLockWaitTimeout:
		return fmt.Errorf("%w: %s", domain.ErrSerializationFailure, myErr.Message)
	}
	return err
}
