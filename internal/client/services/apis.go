// Package services contains the dashboard operations of the client: listing
// and provisioning rate-limited APIs on the gateway.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/flowgate/internal/client/models"
	"github.com/dmitrijs2005/flowgate/internal/logging"
)

var ErrNotFound = errors.New("api not found")

// InputError reports a form field that cannot be submitted.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string { return e.Field + ": " + e.Message }

// APIBackend is the part of the gateway API the dashboard calls.
type APIBackend interface {
	ListAPIs(ctx context.Context) ([]models.APIResource, error)
	CreateAPI(ctx context.Context, req models.CreateAPIRequest) (*models.APIResource, error)
}

// CreateAPIInput holds the create form as typed by the user.
type CreateAPIInput struct {
	Name       string
	TargetURL  string
	Capacity   string
	RefillRate string
}

// Request validates the input and converts it to the wire request.
func (in CreateAPIInput) Request() (models.CreateAPIRequest, error) {
	var req models.CreateAPIRequest

	req.Name = strings.TrimSpace(in.Name)
	if req.Name == "" {
		return req, &InputError{Field: "name", Message: "must not be empty"}
	}

	req.TargetURL = strings.TrimSpace(in.TargetURL)
	u, err := url.Parse(req.TargetURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return req, &InputError{Field: "target url", Message: "must be an absolute http(s) URL"}
	}

	req.Capacity, err = strconv.Atoi(strings.TrimSpace(in.Capacity))
	if err != nil || req.Capacity <= 0 {
		return req, &InputError{Field: "capacity", Message: "must be a positive integer"}
	}

	req.RefillRate, err = strconv.ParseFloat(strings.TrimSpace(in.RefillRate), 64)
	if err != nil || req.RefillRate <= 0 {
		return req, &InputError{Field: "refill rate", Message: "must be a positive number"}
	}
	return req, nil
}

// APIService wraps the backend calls of the dashboard.
type APIService struct {
	backend APIBackend
	log     logging.Logger
}

func NewAPIService(backend APIBackend, log logging.Logger) *APIService {
	if log == nil {
		log = logging.Nop()
	}
	return &APIService{backend: backend, log: log.With("component", "apis")}
}

// List returns every API owned by the signed-in user.
func (s *APIService) List(ctx context.Context) ([]models.APIResource, error) {
	items, err := s.backend.ListAPIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list apis: %w", err)
	}
	return items, nil
}

// Create validates in and provisions a new API. Invalid input never reaches
// the backend.
func (s *APIService) Create(ctx context.Context, in CreateAPIInput) (*models.APIResource, error) {
	req, err := in.Request()
	if err != nil {
		return nil, err
	}
	res, err := s.backend.CreateAPI(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create api: %w", err)
	}
	s.log.Info(ctx, "api created", "id", res.ID, "name", res.Name)
	return res, nil
}

// Find looks an API up by id, or by name when no id matches.
func (s *APIService) Find(ctx context.Context, ref string) (*models.APIResource, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	ref = strings.TrimSpace(ref)
	for i := range items {
		if string(items[i].ID) == ref {
			return &items[i], nil
		}
	}
	for i := range items {
		if strings.EqualFold(items[i].Name, ref) {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
}
