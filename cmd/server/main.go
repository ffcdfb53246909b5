// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/callward/callward/internal/config"
	"github.com/callward/callward/internal/crypto"
	"github.com/callward/callward/internal/handler"
	"github.com/callward/callward/internal/identity"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/server"
	"github.com/callward/callward/internal/service"
	"github.com/callward/callward/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("callward-proxy")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	// The encryption key is loaded once per process and immutable for its
	// lifetime; rotating it requires a restart with new configuration.
	key, err := crypto.KeyFromConfig(cfg.App.EncryptionKey, cfg.App.KeyPassphrase, cfg.App.KeySalt)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading encryption key")
	}
	cipher, err := crypto.NewFieldCipher(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field cipher")
	}

	verifier, err := newVerifier(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token verifier")
	}

	services := service.NewServices(storages, cipher, log)

	handlers, err := handler.NewHandlers(services, verifier, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newVerifier selects the token source: the remote identity service when a
// base URL is configured, local JWT verification otherwise.
func newVerifier(cfg config.StructuredConfig, log *logger.Logger) (identity.Verifier, error) {
	if cfg.Identity.BaseURL != "" {
		log.Info().Str("base_url", cfg.Identity.BaseURL).Msg("using remote identity verifier")
		return identity.NewHTTPVerifier(cfg.Identity, log)
	}

	log.Info().Msg("using local JWT verifier")
	return identity.NewJWTVerifier(cfg.App, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
