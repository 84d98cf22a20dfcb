// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package webhook helps fulfil service webhook calls with net/http. The
// service POSTs a query-response document to the webhook and expects a
// fulfillment document back.
package webhook

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lingora/lingora-go/pkg/core/schema"
	"github.com/lingora/lingora-go/pkg/observability/logging"
)

// Handler produces the fulfillment reply for one webhook call. The reply
// is pre-populated with the inbound result's fulfillment speech so a
// handler that does nothing echoes the agent's configured response.
type Handler func(ctx context.Context, req *schema.QueryResponse, reply *schema.Fulfillment) error

// NewHandler wraps h into an http.Handler that decodes the inbound
// document and encodes the reply.
func NewHandler(h Handler, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req schema.QueryResponse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to parse webhook request", "error", err)
			http.Error(w, "invalid webhook request", http.StatusBadRequest)
			return
		}

		reply := schema.Fulfillment{}
		if req.Result != nil && req.Result.Fulfillment != nil {
			reply.Speech = req.Result.Fulfillment.Speech
		}

		if err := h(r.Context(), &req, &reply); err != nil {
			logger.Error("webhook handler failed", "error", err, "session_id", req.SessionID)
			http.Error(w, "webhook handler failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(&reply); err != nil {
			logger.Error("failed to write webhook reply", "error", err)
		}
	})
}
