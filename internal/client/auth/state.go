package auth

// Tab is the visible half of the authentication screen.
type Tab int

const (
	TabSignIn Tab = iota
	TabRegister
)

func (t Tab) String() string {
	switch t {
	case TabSignIn:
		return "sign-in"
	case TabRegister:
		return "register"
	default:
		return "unknown"
	}
}

// Step is the position in the registration wizard.
type Step int

const (
	StepEmailEntry Step = iota
	StepOTPPending
	StepPasswordSetup
)

func (s Step) String() string {
	switch s {
	case StepEmailEntry:
		return "email-entry"
	case StepOTPPending:
		return "otp-pending"
	case StepPasswordSetup:
		return "password-setup"
	default:
		return "unknown"
	}
}

// LoginForm is the sign-in tab. Error is "" when no error is shown.
type LoginForm struct {
	Email    string
	Password string
	Loading  bool
	Error    string
	Done     bool
}

// Phase of the sign-in sub-flow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (f LoginForm) Phase() Phase {
	switch {
	case f.Loading:
		return PhaseSubmitting
	case f.Done:
		return PhaseSucceeded
	case f.Error != "":
		return PhaseFailed
	default:
		return PhaseIdle
	}
}

// Wizard is the registration tab. OTP only ever holds up to six ASCII digits.
type Wizard struct {
	Step            Step
	Email           string
	OTP             string
	Password        string
	ConfirmPassword string
	Loading         bool
	Error           string
	Success         string
	Done            bool
}

// State is the whole authentication screen.
type State struct {
	Tab        Tab
	Generation uint64
	Login      LoginForm
	Wizard     Wizard
}

// Initial is the state shown when the authentication screen first appears.
func Initial() State {
	return State{Tab: TabSignIn}
}

// Loading reports whether the active tab has a request outstanding.
func (s State) Loading() bool {
	if s.Tab == TabSignIn {
		return s.Login.Loading
	}
	return s.Wizard.Loading
}
