// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/utils"
	"github.com/callward/callward/models"
)

// proxy serves GET /api/proxy?action=<action>, the single data-access
// endpoint. The auth middleware has already verified the bearer token; this
// handler authorizes the requested action against the principal's role and
// dispatches it to the orchestrator. No data is fetched before
// authorization succeeds.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.proxy").Msg("no principal in request context")
		h.writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	query := r.URL.Query()

	actionParam := query.Get("action")
	if actionParam == "" {
		log.Warn().Str("func", "*Handler.proxy").Msg("missing action parameter")
		h.writeError(w, ErrMissingAction)
		return
	}
	action := models.Action(actionParam)

	access, err := h.services.AccessService.Authorize(r.Context(), principal, action)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*Handler.proxy").
			Str("action", actionParam).
			Msg("authorization rejected")
		h.writeError(w, err)
		return
	}

	params := models.QueryParams{
		ClientID:   query.Get("client_id"),
		EngineerID: query.Get("engineer_id"),
		StartDate:  query.Get("start_date"),
		Status:     query.Get("status"),
		AssignedTo: query.Get("assigned_to"),
	}

	result, err := h.services.ProxyService.Handle(r.Context(), access, action, params)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.proxy").
			Str("action", actionParam).
			Msg("action handling failed")
		h.writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.proxy").Msg("error writing response")
	}
}
