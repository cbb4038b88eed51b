// Package auth drives the sign-in form and the three-step registration
// wizard of the FlowGate client.
//
// The package is split in two layers:
//
//   - A pure layer: State, the Event types and Transition(State, Event) State,
//     plus the validators in validate.go. Nothing here performs I/O, so every
//     rule (validation order, the OTP restart policy, tab resets) can be
//     tested by feeding events.
//   - Controller, which owns a State, performs the backend calls a Submitted
//     event asks for, writes the credential to the session on success and
//     feeds the outcome back as Succeeded / Failed events.
//
// # Registration wizard
//
//	EmailEntry --submit (valid email, backend ok)--> OtpPending
//	OtpPending --submit (6 digits, no backend call)--> PasswordSetup
//	PasswordSetup --submit (backend ok)--> done, credential stored
//	PasswordSetup --backend error mentioning "otp"--> EmailEntry (otp and passwords dropped)
//	PasswordSetup --any other backend error--> PasswordSetup (retry keeps the code)
//
// # Abandoned flows
//
// Selecting a tab resets both forms and bumps State.Generation. Completion
// events carry the generation captured at submit time; events from an older
// generation are dropped, and a credential returned to an abandoned flow is
// never stored.
package auth
