// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/callward/callward/internal/config"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/models"
	"github.com/go-resty/resty/v2"
)

// principalResponse is the wire shape of the identity-service user
// endpoint.
type principalResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// httpVerifier implements [Verifier] against the managed identity service.
// One outbound call per request, no caching.
type httpVerifier struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewHTTPVerifier constructs a remote [Verifier]. It normalises and
// validates the base URL from cfg.BaseURL and configures the underlying
// resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPVerifier(cfg config.Identity, logger *logger.Logger) (Verifier, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpVerifier{client: client, apiKey: cfg.APIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// VerifyToken implements [Verifier]. It presents the bearer token to
// GET /auth/v1/user and maps the response to a [models.Principal].
//
// Any non-2xx response is an [ErrInvalidToken]; the status code and body
// are logged server-side only. A transport-level failure is an
// [ErrIdentityUnavailable].
func (v *httpVerifier) VerifyToken(ctx context.Context, token string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	var principal principalResponse
	req := v.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&principal)
	if v.apiKey != "" {
		req.SetHeader("apikey", v.apiKey)
	}

	resp, err := req.Get("/auth/v1/user")
	if err != nil {
		log.Err(err).
			Str("func", "httpVerifier.VerifyToken").
			Msg("identity service unreachable")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrIdentityUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK || principal.ID == "" {
		log.Warn().
			Str("func", "httpVerifier.VerifyToken").
			Int("status", resp.StatusCode()).
			Msg("identity service rejected token")
		return models.Principal{}, ErrInvalidToken
	}

	return models.Principal{UserID: principal.ID, Email: principal.Email}, nil
}
