// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/callward/callward/internal/config"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/models"
	"github.com/golang-jwt/jwt/v5"
)

// jwtVerifier implements [Verifier] locally: it validates HS256-signed
// session tokens issued by the login flow without a network round trip.
// Used when no identity-service base URL is configured.
type jwtVerifier struct {
	signKey string
	issuer  string
	logger  *logger.Logger
}

// NewJWTVerifier constructs a local [Verifier] from the configured signing
// key and expected issuer. Fails fast if either is missing: the gate never
// runs with an unverifiable token source.
func NewJWTVerifier(cfg config.App, logger *logger.Logger) (Verifier, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
		return nil, errors.New("token sign key and issuer are required for local verification")
	}

	return &jwtVerifier{signKey: cfg.TokenSignKey, issuer: cfg.TokenIssuer, logger: logger}, nil
}

// VerifyToken implements [Verifier]. Validation covers the HMAC signature,
// the issuer claim, expiry, and a non-empty subject. Every failure mode
// collapses into [ErrInvalidToken]; the underlying cause is logged only.
func (v *jwtVerifier) VerifyToken(ctx context.Context, token string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(v.signKey), nil
	}, jwt.WithIssuer(v.issuer))
	if err != nil {
		log.Warn().Err(err).
			Str("func", "jwtVerifier.VerifyToken").
			Msg("token validation failed")
		return models.Principal{}, ErrInvalidToken
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		log.Warn().
			Str("func", "jwtVerifier.VerifyToken").
			Msg("token has no subject")
		return models.Principal{}, ErrInvalidToken
	}

	return models.Principal{UserID: subject}, nil
}
