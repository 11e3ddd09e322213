package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"roam/infras/postgres"
)

type txnImpl struct {
}

// WithTransaction implements postgres.Txn. The callback runs with a nil
// transaction handle, which is enough for services that pass it straight
// through to mocked repositories.
func (t *txnImpl) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTxn() postgres.Txn {
	return &txnImpl{}
}
