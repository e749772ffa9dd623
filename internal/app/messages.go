// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// Evolt server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The wording is part of the wire contract: the mobile
// client matched on some of these strings, so changes here are breaking.
package app

const (
	// MsgSignupSuccess is returned after a successful registration. The
	// account is unusable until the emailed verification link is followed.
	MsgSignupSuccess = "Please check your email for verification link"

	// MsgEmailNotVerified is returned when a login is attempted before the
	// verification link has been followed.
	MsgEmailNotVerified = "Please verify your email before logging in"

	// MsgInvalidCredentials is returned when the email/password pair does
	// not match an account. Deliberately does not say which part is wrong.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgAccountExists is returned when a registration attempt reuses an
	// email that already has a confirmed account.
	MsgAccountExists = "User already registered"

	// MsgAuthServiceError is returned when the identity provider rejects or
	// mangles a request in a way the end user cannot fix.
	MsgAuthServiceError = "Authentication service error"

	// MsgProfileNotCreated is returned when the account was registered but
	// the profile row could not be written and the signup was rolled back.
	MsgProfileNotCreated = "Failed to create user profile"

	// MsgInvalidRequestData is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidRequestData = "Invalid request data"

	// MsgProfileNotFound is returned when a profile lookup targets an
	// unknown user ID.
	MsgProfileNotFound = "Profile not found"

	// MsgInternalServerError is returned for any unexpected server-side
	// failure.
	MsgInternalServerError = "Internal server error"
)
