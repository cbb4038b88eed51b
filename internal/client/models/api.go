package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// APIStatus is the rate-limiting state the gateway reports for a resource.
type APIStatus string

const (
	APIStatusActive      APIStatus = "ACTIVE"
	APIStatusRateLimited APIStatus = "RATE_LIMITED"
	APIStatusInactive    APIStatus = "INACTIVE"
)

// Label is the human form of the status, e.g. "RATE LIMITED".
func (s APIStatus) Label() string {
	if s == "" {
		return "UNKNOWN"
	}
	return strings.ReplaceAll(string(s), "_", " ")
}

// ResourceID accepts both numeric and string identifiers from the backend.
type ResourceID string

func (id *ResourceID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ResourceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ResourceID(n.String())
	return nil
}

// APIResource is a proxied endpoint provisioned on the gateway, with its
// token-bucket parameters and the key clients present to the proxy.
type APIResource struct {
	ID         ResourceID `json:"id"`
	Name       string     `json:"name"`
	TargetURL  string     `json:"targetUrl"`
	Capacity   int        `json:"capacity"`
	RefillRate float64    `json:"refillRate"`
	Status     APIStatus  `json:"status"`
	APIKey     string     `json:"apiKey"`
}

// CreateAPIRequest is the body of POST /apis.
type CreateAPIRequest struct {
	Name       string  `json:"name"`
	TargetURL  string  `json:"targetUrl"`
	Capacity   int     `json:"capacity"`
	RefillRate float64 `json:"refillRate"`
}

// ProxyRequest is the body a consumer sends to the gateway proxy together
// with the X-API-Key header.
type ProxyRequest struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Data   any    `json:"data,omitempty"`
}
