// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-encryption-key base64-encoded AES-256 key
//	-key-passphrase passphrase for Argon2id key derivation
//	-key-salt salt for Argon2id key derivation
//	-identity-url identity service base URL
//	-identity-api-key identity service API key
//	-identity-timeout identity request timeout (e.g., "5s")
//	-token-sign-key local token verification key
//	-token-issuer expected token issuer name
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var encryptionKey string
	var keyPassphrase string
	var keySalt string
	var identityURL string
	var identityAPIKey string
	var identityTimeout time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&encryptionKey, "encryption-key", "", "Base64-encoded AES-256 key")
	flag.StringVar(&keyPassphrase, "key-passphrase", "", "Key derivation passphrase")
	flag.StringVar(&keySalt, "key-salt", "", "Key derivation salt")
	flag.StringVar(&identityURL, "identity-url", "", "Identity service base URL")
	flag.StringVar(&identityAPIKey, "identity-api-key", "", "Identity service API key")
	flag.DurationVar(&identityTimeout, "identity-timeout", 0, "Identity request timeout (e.g., 5s)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EncryptionKey: encryptionKey,
			KeyPassphrase: keyPassphrase,
			KeySalt:       keySalt,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
		},
		Identity: Identity{
			BaseURL:        identityURL,
			APIKey:         identityAPIKey,
			RequestTimeout: identityTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
