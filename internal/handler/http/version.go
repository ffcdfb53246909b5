// SPDX-License-Identifier: Apache-2.0

package http

import "net/http"

func (h *Handler) getServerVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(h.version))
}
