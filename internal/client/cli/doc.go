// Package cli provides the interactive authbox terminal client.
//
// It wires configuration, the local session store, the REST authentication
// client, and a screen loop that mirrors the routes of the web application:
// sign-in, registration, OTP verification, password reset, and a post-login
// dashboard shell.
//
// Each screen is a flow controller: it validates input locally, performs at
// most one network round trip at a time, and maps the resulting Outcome to a
// store mutation, a notification, and a navigation step. The loop is started
// via App.Run(ctx), which blocks until the user exits.
package cli
