// Package identity verifica Bearer tokens contra el servicio de identidad externo.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/ports/auth"
)

const (
	verifyPath          = "/v1/tokens/verify"
	defaultAPIKeyHeader = "X-Api-Key"
)

var (
	ErrUnauthorized = errors.New("identity: unauthorized")
	ErrUpstream     = errors.New("identity: upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string
	// Vacío => X-Api-Key
	APIKeyHeader string
	Timeout      time.Duration
}

// Verifier implementa auth.AuthVerifier.
type Verifier struct {
	client       *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewVerifier(cfg Config) (*Verifier, error) {
	c, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = defaultAPIKeyHeader
	}
	return &Verifier{
		client:       c,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

type verifyResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		h.Set(v.apiKeyHeader, v.apiKey)
	}

	var out verifyResponse
	err := v.client.PostJSON(ctx, verifyPath, h, map[string]string{"token": token}, &out)
	switch code := httpclient.StatusCode(err); {
	case err == nil:
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return auth.Claims{}, ErrUnauthorized
	default:
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	uid := strings.TrimSpace(out.UserID)
	if uid == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}
	return auth.Claims{
		UserID:   uid,
		Email:    strings.TrimSpace(out.Email),
		TenantID: strings.TrimSpace(out.TenantID),
	}, nil
}
