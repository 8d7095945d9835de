package contract

import "github.com/google/uuid"

// NewContractID generates a stable contract identity.
// Uses UUIDv7 so identifiers sort roughly by creation time.
func NewContractID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewClauseID generates an identity for one clause snapshot.
func NewClauseID() string {
	return uuid.Must(uuid.NewV7()).String()
}
