// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/callward/callward/internal/identity"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/service"
)

type Handler struct {
	services *service.Services
	verifier identity.Verifier
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier identity.Verifier, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		verifier: verifier,
		version:  version,
		logger:   logger,
	}
}
