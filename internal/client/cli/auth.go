package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/flowgate/internal/client/auth"
	"github.com/dmitrijs2005/flowgate/internal/common"
)

// getSimpleText, getDefaultText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getDefaultText = GetDefaultText
	getPassword    = GetPassword
)

// Login shows the sign-in form. Running it while a registration is under way
// switches tabs, which discards the registration.
//
// Input errors are returned; a rejected sign-in is only printed.
func (a *App) Login(ctx context.Context) error {
	st := a.auth.SelectTab(auth.TabSignIn)

	email, err := getDefaultText(a.reader, "Enter email", st.Login.Email, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.auth.Dispatch(auth.FieldChanged{Field: auth.FieldLoginEmail, Value: email})
	a.auth.Dispatch(auth.FieldChanged{Field: auth.FieldLoginPassword, Value: string(password)})

	st = a.auth.Submit(ctx)
	if st.Login.Phase() != auth.PhaseSucceeded {
		printError(a.out, st.Login.Error)
		return nil
	}

	printSuccess(a.out, "Signed in " + a.getStatus())
	a.auth.Reset()
	return nil
}

// Register walks the registration wizard from its current step until it
// completes or a step fails. After a failure, running it again resumes where
// the wizard stands; an OTP failure sends it back to the email step with
// the email pre-filled.
func (a *App) Register(ctx context.Context) error {
	st := a.auth.SelectTab(auth.TabRegister)

	for !st.Wizard.Done {
		if err := a.fillStep(st.Wizard); err != nil {
			return err
		}

		st = a.auth.Submit(ctx)
		if st.Wizard.Error != "" {
			printError(a.out, st.Wizard.Error)
			_, _ = fmt.Fprintln(a.out, mutedColor.Sprint("Run 'register' to continue."))
			return nil
		}
		if st.Wizard.Success != "" {
			printSuccess(a.out, st.Wizard.Success)
		}
	}

	a.auth.Reset()
	return nil
}

func (a *App) fillStep(w auth.Wizard) error {
	switch w.Step {
	case auth.StepEmailEntry:
		email, err := getDefaultText(a.reader, "Enter email", w.Email, a.out)
		if err != nil {
			return err
		}
		a.auth.Dispatch(auth.FieldChanged{Field: auth.FieldEmail, Value: email})

	case auth.StepOTPPending:
		otp, err := getSimpleText(a.reader, "Enter the 6-digit code sent to "+w.Email, a.out)
		if err != nil {
			return err
		}
		a.auth.Dispatch(auth.FieldChanged{Field: auth.FieldOTP, Value: otp})

	case auth.StepPasswordSetup:
		password, err := getPassword("Choose a password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)

		confirm, err := getPassword("Confirm password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)

		a.auth.Dispatch(auth.FieldChanged{Field: auth.FieldPassword, Value: string(password)})
		a.auth.Dispatch(auth.FieldChanged{Field: auth.FieldConfirmPassword, Value: string(confirm)})
	}
	return nil
}

// Logout forgets the local session. The credential is not revoked on the server.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gate.SignOut(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		printError(a.out, "Could not sign out: " + err.Error())
		return err
	}
	printSuccess(a.out, "Signed out")
	return nil
}
