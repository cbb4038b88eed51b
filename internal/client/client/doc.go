// Package client contains the client-side building blocks that talk to the
// FlowGate management backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     InitiateRegistration, VerifyRegistration, ListAPIs and CreateAPI.
//  2. A JSON-over-HTTP implementation (see HTTPClient). Every request goes
//     through CredentialInjector, which attaches the current session
//     credential as "Authorization: Bearer <token>" when one exists.
//  3. Local persistence bootstrap (InitDatabase) wiring an SQLite database
//     and applying the embedded goose migrations.
//
// # Error Handling
//
// Transport failures match ErrUnavailable. Non-2xx responses are returned as
// *APIError carrying the backend's message; 401 and 403 additionally match
// ErrUnauthorized. ServerMessage extracts the message for display.
//
// A 401 never triggers a refresh or a sign-out here; that is left to callers.
package client
