// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered username/password pair. Accounts are immutable
// after registration; there is no update or delete path.
type Account struct {
	ID        uuid.UUID // The unique ID for this account record.
	Username  string    // The login identifier. Unique across all accounts, matched exactly.
	Password  string    // The plaintext password. Hashing is out of scope for this service.
	CreatedAt time.Time // Timestamp of when this account was registered.
}
