package contract

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates an unknown contract, version, or clause row.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeSequentialVersion indicates a commit for a version other than
	// current_version + 1. Retryable: re-read state and recompute the diff.
	ErrCodeSequentialVersion ErrorCode = "SEQUENTIAL_VERSION_VIOLATION"

	// ErrCodeReferentialIntegrity indicates a foreign-key violation.
	ErrCodeReferentialIntegrity ErrorCode = "REFERENTIAL_INTEGRITY_VIOLATION"

	// ErrCodeUniqueConstraint indicates a unique or primary-key violation.
	ErrCodeUniqueConstraint ErrorCode = "UNIQUE_CONSTRAINT_VIOLATION"

	// ErrCodeValidation indicates malformed input: missing ids, contract_id
	// mismatch, wrong version. Permanent; raised before any transaction opens.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeIO indicates a read failure while hashing an upload.
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeStorage wraps a transaction or query failure.
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"
)

// Error is the engine's error type. Structured fields identify the affected
// contract and version for diagnostics and retry decisions.
type Error struct {
	Code    ErrorCode
	Message string

	// ContractID identifies the affected contract, when known.
	ContractID string

	// Version is the version involved (for version and not-found errors).
	Version int

	// ClauseIdentifier names the affected clause slot, when relevant.
	ClauseIdentifier string

	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.ContractID != "" && e.Version > 0:
		return fmt.Sprintf("%s: %s (contract=%s, version=%d)", e.Code, e.Message, e.ContractID, e.Version)
	case e.ContractID != "":
		return fmt.Sprintf("%s: %s (contract=%s)", e.Code, e.Message, e.ContractID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NOT_FOUND error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsVersionConflict reports whether err is a sequential-version violation.
// Callers should treat these as retryable.
func IsVersionConflict(err error) bool {
	return hasCode(err, ErrCodeSequentialVersion)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsConstraint reports whether err is a referential-integrity or
// unique-constraint violation.
func IsConstraint(err error) bool {
	return hasCode(err, ErrCodeReferentialIntegrity) || hasCode(err, ErrCodeUniqueConstraint)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// NewNotFound creates a NOT_FOUND error for a contract.
func NewNotFound(contractID string) *Error {
	return &Error{
		Code:       ErrCodeNotFound,
		Message:    "contract not found",
		ContractID: contractID,
	}
}

// NewVersionNotFound creates a NOT_FOUND error for a version of a contract.
func NewVersionNotFound(contractID string, version int) *Error {
	return &Error{
		Code:       ErrCodeNotFound,
		Message:    "version not found",
		ContractID: contractID,
		Version:    version,
	}
}

// NewVersionConflict creates a SEQUENTIAL_VERSION_VIOLATION error.
func NewVersionConflict(contractID string, requested, current int) *Error {
	return &Error{
		Code:       ErrCodeSequentialVersion,
		Message:    fmt.Sprintf("requested version %d, expected %d (current %d)", requested, current+1, current),
		ContractID: contractID,
		Version:    requested,
	}
}

// NewValidation creates a VALIDATION error.
func NewValidation(message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message}
}

// NewIO creates an IO_ERROR wrapping the read failure.
func NewIO(message string, err error) *Error {
	return &Error{Code: ErrCodeIO, Message: message, Err: err}
}

// NewStorage creates a STORAGE_ERROR wrapping the underlying failure.
func NewStorage(op string, err error) *Error {
	return &Error{Code: ErrCodeStorage, Message: op, Err: err}
}

// NewReferentialIntegrity creates a REFERENTIAL_INTEGRITY_VIOLATION wrapping
// the storage-engine error.
func NewReferentialIntegrity(op string, err error) *Error {
	return &Error{Code: ErrCodeReferentialIntegrity, Message: op, Err: err}
}

// NewUniqueConstraint creates a UNIQUE_CONSTRAINT_VIOLATION wrapping the
// storage-engine error.
func NewUniqueConstraint(op string, err error) *Error {
	return &Error{Code: ErrCodeUniqueConstraint, Message: op, Err: err}
}
