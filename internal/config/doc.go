// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading, merging, and validation
// facilities for the proxy.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Validation is strict:
// secrets the security boundary depends on (encryption key material, a
// token verification source, the database DSN) must be present at startup
// or construction fails — the proxy never lazily discovers a missing key
// per request.
package config
