// SPDX-License-Identifier: Apache-2.0

package models

// ErrorResponse is the uniform error body returned with any non-200 status:
// {"error": "..."}. Messages are intentionally generic; real causes stay in
// server-side logs.
type ErrorResponse struct {
	Error string `json:"error"`
}
