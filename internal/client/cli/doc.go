// Package cli provides the interactive FlowGate command-line client.
//
// It wires configuration, the persisted session, the gateway API client and
// an interactive REPL. What the REPL accepts depends on the view picked by
// the gate: signed-out users can only log in or register, signed-in users
// manage their rate-limited APIs.
//
// Signed out:
//   - login        sign in with email and password
//   - register     sign up: email, emailed one-time code, password
//
// Signed in:
//   - list         show provisioned APIs
//   - create       provision a new API
//   - usage <api>  show how to call an API through the proxy
//   - logout       forget the local session
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
