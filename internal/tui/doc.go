// SPDX-License-Identifier: Apache-2.0

// Package tui implements the terminal front end of the Evolt client: the
// welcome/login/signup flow and the signed-in account screen with theme
// switching and sign-out.
package tui
