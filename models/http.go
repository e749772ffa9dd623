package models

// ProfileFields is the user-supplied portion of a signup request. Field
// names follow the historical camelCase wire format of the mobile client.
type ProfileFields struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// SignupRequest is the body of POST /signup. Username carries the email
// address; the name is kept for historical reasons and the value is
// validated as an email on both sides of the wire.
type SignupRequest struct {
	Username string        `json:"username"`
	Password string        `json:"password"`
	UserData ProfileFields `json:"userData"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupResponse is the success body of POST /signup. The account is not
// usable until the user follows the emailed verification link, which is
// why no session is returned here.
type SignupResponse struct {
	User    Account `json:"user"`
	Profile Profile `json:"profile"`
	Message string  `json:"message"`
}

// LoginResponse is the success body of POST /login.
type LoginResponse struct {
	User    Account `json:"user"`
	Profile Profile `json:"profile"`
	Session Session `json:"session"`
}

// UpdateProfileRequest is the body of PUT /user/:id. Absent fields are left
// untouched; present fields overwrite, including with an empty string.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
}

// ErrorResponse is the failure body of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
