package domain

import "time"

// AccountStatus represents lifecycle states for a registered account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
	AccountStatusBanned   AccountStatus = "BANNED"
)

// Account is the domain model for a phone-bound chat identity.
// Phone is the natural key and is immutable after registration.
type Account struct {
	ID             string
	Phone          string
	CredentialHash string
	DisplayName    string
	AvatarRef      string
	Status         AccountStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Deleted        bool
}
