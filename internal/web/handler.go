package web

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"dealrisk-mcp/internal/service"
)

// Handler exposes the analysis service over HTTP.
type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := zerolog.Ctx(r.Context())
	logger.Warn().Err(err).Msg("request failed")
	h.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]interface{}{"templates": h.svc.Templates()})
}

func (h *Handler) Tornado(w http.ResponseWriter, r *http.Request) {
	var req service.TornadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	res, err := h.svc.Tornado(req)
	if err != nil {
		h.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) Matrix(w http.ResponseWriter, r *http.Request) {
	var req service.MatrixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	res, err := h.svc.Matrix(req)
	if err != nil {
		h.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) MonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req service.MonteCarloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	res, err := h.svc.MonteCarlo(req)
	if err != nil {
		h.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	var req service.ScenariosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	res, err := h.svc.CompareScenarios(req)
	if err != nil {
		h.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) BreakEven(w http.ResponseWriter, r *http.Request) {
	var req service.BreakEvenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	res, err := h.svc.BreakEven(req)
	if err != nil {
		h.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, res)
}
