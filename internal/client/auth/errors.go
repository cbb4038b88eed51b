package auth

import (
	"errors"

	"github.com/dmitrijs2005/flowgate/internal/client/client"
)

// ErrorKind classifies a failed action. It is used for logging only; the
// user sees the message stored in State.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuth
	KindOTP
	KindServer
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindOTP:
		return "otp"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Classify maps an error returned by a backend call to its kind.
func Classify(err error) ErrorKind {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return KindValidation
	case errors.Is(err, client.ErrUnavailable):
		return KindNetwork
	case errors.Is(err, client.ErrUnauthorized):
		return KindAuth
	case IsOTPError(client.ServerMessage(err)):
		return KindOTP
	default:
		return KindServer
	}
}
