package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/roach88/redline/contract"
)

// withTx runs fn inside a transaction. Commit on success; full rollback on
// error or panic. A partial write is never visible to readers.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return contract.NewStorage("begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return contract.NewStorage("commit transaction", err)
	}
	return nil
}
