package service

import (
	"fmt"
	"net/mail"
)

// minPasswordLength mirrors the identity provider's own minimum so the
// request is rejected before a network call is spent on it.
const minPasswordLength = 6

func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: malformed email address", ErrInvalidDataProvided)
	}

	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	return nil
}
