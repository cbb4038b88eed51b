package auth

import "fmt"

// Transition is the pure state machine of the authentication screen.
func Transition(s State, ev Event) State {
	switch e := ev.(type) {
	case TabSelected:
		return State{Tab: e.Tab, Generation: s.Generation + 1}
	case FieldChanged:
		return applyField(s, e)
	case Submitted:
		if s.Tab == TabSignIn {
			s.Login = submitLogin(s.Login)
		} else {
			s.Wizard = submitWizard(s.Wizard)
		}
		return s
	case Succeeded:
		if e.Generation != s.Generation || !s.Loading() {
			return s
		}
		if s.Tab == TabSignIn {
			s.Login = LoginForm{Email: s.Login.Email, Done: true}
		} else {
			s.Wizard = wizardSucceeded(s.Wizard)
		}
		return s
	case Failed:
		if e.Generation != s.Generation || !s.Loading() {
			return s
		}
		if s.Tab == TabSignIn {
			s.Login.Loading = false
			s.Login.Error = loginFailure(e.Message)
		} else {
			s.Wizard = wizardFailed(s.Wizard, e.Message)
		}
		return s
	default:
		return s
	}
}

// applyField only accepts input for fields visible on the current screen.
func applyField(s State, e FieldChanged) State {
	w := &s.Wizard
	switch {
	case s.Tab == TabSignIn && e.Field == FieldLoginEmail:
		s.Login.Email = e.Value
	case s.Tab == TabSignIn && e.Field == FieldLoginPassword:
		s.Login.Password = e.Value
	case s.Tab == TabRegister && e.Field == FieldEmail && w.Step == StepEmailEntry:
		w.Email = e.Value
	case s.Tab == TabRegister && e.Field == FieldOTP && w.Step == StepOTPPending:
		w.OTP = SanitizeOTP(e.Value)
	case s.Tab == TabRegister && e.Field == FieldPassword && w.Step == StepPasswordSetup:
		w.Password = e.Value
	case s.Tab == TabRegister && e.Field == FieldConfirmPassword && w.Step == StepPasswordSetup:
		w.ConfirmPassword = e.Value
	}
	return s
}

func submitLogin(f LoginForm) LoginForm {
	if f.Loading {
		return f
	}
	f.Done = false
	if err := ValidateLogin(f.Email, f.Password); err != nil {
		f.Error = err.Error()
		return f
	}
	f.Error = ""
	f.Loading = true
	return f
}

func submitWizard(w Wizard) Wizard {
	if w.Loading || w.Done {
		return w
	}

	var err error
	switch w.Step {
	case StepEmailEntry:
		err = ValidateEmail(w.Email)
	case StepOTPPending:
		err = ValidateOTP(w.OTP)
	case StepPasswordSetup:
		err = ValidatePassword(w.Password, w.ConfirmPassword)
	}
	if err != nil {
		w.Error = err.Error()
		return w
	}

	w.Error = ""
	if w.Step == StepOTPPending {
		// the code is checked by the backend together with the password
		w.Step = StepPasswordSetup
		w.Success = ""
		return w
	}
	if w.Step == StepEmailEntry {
		w.Success = ""
	}
	w.Loading = true
	return w
}

func wizardSucceeded(w Wizard) Wizard {
	w.Loading = false
	w.Error = ""
	switch w.Step {
	case StepEmailEntry:
		w.Step = StepOTPPending
		w.OTP = ""
		w.Success = fmt.Sprintf(MsgOTPSent, w.Email)
	case StepPasswordSetup:
		w.Done = true
		w.Success = MsgRegistered
	}
	return w
}

func wizardFailed(w Wizard, serverMsg string) Wizard {
	w.Loading = false
	w.Success = ""

	switch w.Step {
	case StepEmailEntry:
		w.Error = orDefault(serverMsg, MsgSendOTPFailed)
	case StepPasswordSetup:
		msg := orDefault(serverMsg, MsgVerifyFailed)
		if IsOTPError(msg) {
			// start over; the email is kept so it does not have to be typed again
			return Wizard{Step: StepEmailEntry, Email: w.Email, Error: msg}
		}
		w.Error = msg
	}
	return w
}

// loginFailure hides backend detail behind the generic credentials message.
// A local session write failure is not a credentials problem and says so.
func loginFailure(msg string) string {
	if msg == MsgSessionSaveFailed {
		return MsgSessionSaveFailed
	}
	return MsgInvalidCredentials
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
