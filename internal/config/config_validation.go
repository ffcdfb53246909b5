// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// security invariants before the process accepts traffic. Failing here is
// deliberate: the proxy must refuse to start rather than lazily discover a
// missing key or DSN on the first request.
//
// Rules:
//   - encryption key material must be present, either as a raw base64 key
//     or as a passphrase/salt pair (the key itself is validated when the
//     cipher is constructed);
//   - the database DSN must be set;
//   - a token verification source must exist: either an identity-service
//     base URL, or both a token sign key and issuer for local mode;
//   - the HTTP listen address must be set.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.EncryptionKey == "" && (cfg.App.KeyPassphrase == "" || cfg.App.KeySalt == "") {
		return ErrMissingEncryptionKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Identity.BaseURL == "" && (cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "") {
		return ErrMissingTokenVerifier
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
