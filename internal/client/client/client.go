package client

import (
	"context"

	"github.com/dmitrijs2005/flowgate/internal/client/models"
)

// Client is the backend API used by the auth flow and the dashboard.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	InitiateRegistration(ctx context.Context, email string) error
	VerifyRegistration(ctx context.Context, email, otp, password string) (string, error)
	ListAPIs(ctx context.Context) ([]models.APIResource, error)
	CreateAPI(ctx context.Context, req models.CreateAPIRequest) (*models.APIResource, error)
}
