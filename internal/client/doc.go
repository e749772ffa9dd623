// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the session service, and the background session
// watcher into a single process lifecycle: restore a cached session when one
// exists, otherwise run the auth flow, then stay on the account screen until
// sign-out or exit.
package client
