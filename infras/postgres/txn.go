package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./txn.go -destination=./mocks/txn_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Txn runs a function inside a single write transaction. The transaction
// is committed when fn returns nil and rolled back otherwise.
type Txn interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type txnRunner struct {
	db *Connection
}

func NewTxn(db *Connection) Txn {
	return &txnRunner{db: db}
}

func (t *txnRunner) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("Failed to rollback transaction after panic")
			}

			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
