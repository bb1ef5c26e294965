package repository

import "context"

// Tx is the part every transaction handle shares
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
