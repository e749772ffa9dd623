package tui

import "github.com/evolt-dev/evolt/models"

type signupDoneMsg struct {
	message string
	err     error
}

type loginDoneMsg struct {
	profile models.Profile
	err     error
}

type profileRefreshedMsg struct {
	profile models.Profile
	err     error
}

type themeChangedMsg struct {
	theme models.Theme
	err   error
}

type signedOutMsg struct {
	err error
}

type sessionExpiredMsg struct{}

type clearStatusMsg struct{}
