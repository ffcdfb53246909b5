// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/callward/callward/internal/crypto"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/sanitize"
	"github.com/callward/callward/internal/store"
)

type Services struct {
	AccessService AccessService
	ProxyService  ProxyService
}

func NewServices(storages *store.Storages, cipher crypto.FieldCipher, logger *logger.Logger) *Services {
	return &Services{
		AccessService: NewAccessService(storages.Roles, logger),
		ProxyService: NewProxyService(
			storages, cipher, sanitize.NewSanitizer(cipher), logger,
		),
	}
}
