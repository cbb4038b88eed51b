package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/flowgate/internal/client/models"
	"github.com/dmitrijs2005/flowgate/internal/logging"
)

const (
	pathLogin            = "/auth/login"
	pathRegisterInitiate = "/auth/register/initiate"
	pathRegisterVerify   = "/auth/register/verify"
	pathAPIs             = "/apis"
)

// HTTPClient implements Client over JSON/HTTP. No request timeout is set;
// callers bound calls through ctx if they need to.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for baseURL whose requests carry the
// credential held by tokens. A nil base transport means http.DefaultTransport.
func NewHTTPClient(baseURL string, base http.RoundTripper, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	if log == nil {
		log = logging.Nop()
	}
	if base == nil {
		base = http.DefaultTransport
	}

	rt := NewCredentialInjector(requestIDTransport{base: base}, tokens)
	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Transport: rt},
		log:     log.With("component", "client"),
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, pathLogin, models.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrMissingToken
	}
	return resp.Token, nil
}

func (c *HTTPClient) InitiateRegistration(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, pathRegisterInitiate, models.InitiateRegistrationRequest{Email: email}, nil)
}

func (c *HTTPClient) VerifyRegistration(ctx context.Context, email, otp, password string) (string, error) {
	req := models.VerifyRegistrationRequest{Email: email, OTP: otp, Password: password}
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, pathRegisterVerify, req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrMissingToken
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListAPIs(ctx context.Context) ([]models.APIResource, error) {
	var apis []models.APIResource
	if err := c.do(ctx, http.MethodGet, pathAPIs, nil, &apis); err != nil {
		return nil, err
	}
	return apis, nil
}

func (c *HTTPClient) CreateAPI(ctx context.Context, req models.CreateAPIRequest) (*models.APIResource, error) {
	var api models.APIResource
	if err := c.do(ctx, http.MethodPost, pathAPIs, req, &api); err != nil {
		return nil, err
	}
	return &api, nil
}

// do sends in as JSON (when non-nil) and decodes a 2xx body into out (when
// non-nil and the body is not empty).
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req = req.WithContext(WithRequestID(ctx, reqID))

	log := c.log.With("method", method, "path", path, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
