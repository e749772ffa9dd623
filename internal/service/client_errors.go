package service

import "errors"

var (
	// ErrNotAuthenticated is returned when no usable local session state
	// exists. Callers must treat it as "redirect to the login screen".
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidTheme is returned when a theme value other than "light"
	// or "dark" is persisted or requested.
	ErrInvalidTheme = errors.New("invalid theme")
)
