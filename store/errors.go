package store

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/redline/contract"
)

// translateError maps storage-engine failures onto the domain error
// taxonomy so callers never match on sqlite3 error codes.
//
//   - foreign-key constraint  -> REFERENTIAL_INTEGRITY_VIOLATION
//   - unique / primary key    -> UNIQUE_CONSTRAINT_VIOLATION
//   - anything else           -> STORAGE_ERROR wrapping the cause
//
// Domain errors already raised deeper in the call are passed through.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var domainErr *contract.Error
	if errors.As(err, &domainErr) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return contract.NewReferentialIntegrity(op, err)
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return contract.NewUniqueConstraint(op, err)
		}
	}

	return contract.NewStorage(op, err)
}

// isNoRows reports whether err is the driver's empty-result sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
