// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"github.com/callward/callward/internal/config"
	"github.com/callward/callward/internal/handler/http"
	"github.com/callward/callward/internal/identity"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, verifier identity.Verifier, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, verifier, cfg.App.Version, logger),
	}, nil
}
