package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	OTPLength         = 6
	MinPasswordLength = 6
)

// Messages shown to the user.
const (
	MsgFillAllFields      = "Please fill in all fields"
	MsgInvalidCredentials = "Invalid email or password"
	MsgEnterEmail         = "Please enter your email"
	MsgInvalidEmail       = "Please enter a valid email address"
	MsgOTPSent            = "OTP sent to %s. Check your inbox."
	MsgEnterOTP           = "Please enter the 6-digit OTP"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgPasswordMismatch   = "Passwords do not match"
	MsgSendOTPFailed      = "Failed to send OTP. Try again."
	MsgVerifyFailed       = "Invalid or expired OTP. Please start over."
	MsgRegistered         = "Registration complete. You are signed in."
	MsgSessionSaveFailed  = "Could not save your session. Please try again."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a client-side rejection. It never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// ValidateLogin requires both fields to be filled in.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return invalid(MsgFillAllFields)
	}
	return nil
}

// ValidateEmail checks for a local@domain.tld shape.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid(MsgEnterEmail)
	}
	if !emailPattern.MatchString(email) {
		return invalid(MsgInvalidEmail)
	}
	return nil
}

// SanitizeOTP drops everything but ASCII digits and keeps at most six of them.
func SanitizeOTP(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw) && b.Len() < OTPLength; i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ValidateOTP requires exactly six digits. Correctness is checked by the
// backend on the final step only.
func ValidateOTP(otp string) error {
	if len(otp) != OTPLength || SanitizeOTP(otp) != otp {
		return invalid(MsgEnterOTP)
	}
	return nil
}

// ValidatePassword checks length before the confirmation match.
func ValidatePassword(password, confirm string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid(MsgPasswordTooShort)
	}
	if password != confirm {
		return invalid(MsgPasswordMismatch)
	}
	return nil
}

// IsOTPError reports whether a final-step error message is about the code,
// in which case the wizard starts over from the email step.
func IsOTPError(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "otp")
}
