package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"brand-lift/internal/core/port"
)

// handleSimulate decodes a port.SimulationReq and returns the simulation as
// JSON. Malformed JSON, an unknown mode/strategy or an invalid campaign
// gives HTTP 400, an oversized body HTTP 413; any other failure gives
// HTTP 500.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.simulate(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, resp)
}

// writeJSON encodes v before touching w so that an encoding failure still
// produces a 500.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = buf.WriteTo(w)
}

// simulate runs the shared request path of the JSON and CSV endpoints. It
// writes the error response itself and reports whether the caller should
// continue.
func (h *Handler) simulate(w http.ResponseWriter, r *http.Request) (*port.SimulationResp, bool) {
	var req port.SimulationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	resp, err := h.svc.Simulate(r.Context(), req)
	switch {
	case errors.Is(err, port.ErrUnknownMode),
		errors.Is(err, port.ErrUnknownStrategy),
		errors.Is(err, port.ErrInvalidCampaign):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	case err != nil:
		h.logger.Error("simulate error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return resp, true
}

// handleChannels lists the active channel table.
func (h *Handler) handleChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.svc.Channels(r.Context())
	if err != nil {
		h.logger.Error("channels error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, channels)
}
