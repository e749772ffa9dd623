package models

import "time"

// Account is the identity-provider-issued record for a registered user.
// The provider is the system of record for credentials and verification
// state; this application only references accounts by their opaque ID.
type Account struct {
	// ID is the opaque identifier assigned by the identity provider.
	// It doubles as the primary key of the corresponding Profile row.
	ID string `json:"id"`

	// Email is the address the account was registered with.
	Email string `json:"email"`

	// EmailConfirmedAt is the moment the user completed the emailed
	// verification link. Nil while the account is still unverified.
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`

	// CreatedAt is the provider-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Verified reports whether the account has completed email verification.
// An unverified account must not be treated as usable for login.
func (a Account) Verified() bool {
	return a.EmailConfirmedAt != nil
}
