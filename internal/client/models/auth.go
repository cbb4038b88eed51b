package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// InitiateRegistrationRequest is the body of POST /auth/register/initiate.
type InitiateRegistrationRequest struct {
	Email string `json:"email"`
}

// VerifyRegistrationRequest is the body of POST /auth/register/verify.
type VerifyRegistrationRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// TokenResponse carries the credential issued on login or completed registration.
type TokenResponse struct {
	Token string `json:"token"`
}
