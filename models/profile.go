package models

import "time"

// Profile is the application-owned record of user-supplied attributes,
// keyed by the identity-provider account ID. Exactly one profile exists
// per account; a profile must never outlive (or predate) its account.
type Profile struct {
	// ID equals the Account.ID of the owning identity-provider account.
	ID string `json:"id"`

	// Email duplicates the account email for display without a provider
	// round-trip.
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`

	// CreatedAt is stamped when the profile row is inserted during signup.
	CreatedAt time.Time `json:"created_at"`

	// LastSignIn is advanced on every successful login. The update is
	// best-effort: a failure to advance it never fails the login itself.
	LastSignIn time.Time `json:"last_sign_in"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate carries a partial profile update. Only non-nil fields are
// written; ID selects the row.
type ProfileUpdate struct {
	ID        string  `json:"id"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zip_code,omitempty"`
}
