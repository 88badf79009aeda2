package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ledgersynth/model"
	"ledgersynth/service"

	"go.uber.org/zap"
)

// GenerateHandler holds dependencies for data generation and health.
type GenerateHandler struct {
	ledger service.Ledger
	log    *zap.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(ledger service.Ledger, log *zap.Logger) *GenerateHandler {
	return &GenerateHandler{ledger: ledger, log: log}
}

// GenerateHandler appends freshly synthesized accounts and histories to the
// ledger. An empty body uses the default sizes.
//
// Method: POST
// Path: /api/generate
// Success: 201 Created
// Error: 400 Bad Request (for invalid JSON or sizes out of range)
// Error: 500 Internal Server Error (if generation fails)
func (h *GenerateHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeFailure(w, h.log, http.StatusBadRequest, codeInvalidInput, "Invalid request body")
		return
	}

	res, err := h.ledger.Generate(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, h.log, http.StatusCreated, newGenerateResponse(*res))
}

// HealthHandler reports service status and ledger size.
//
// Method: GET
// Path: /api/health
func (h *GenerateHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	health, err := h.ledger.Health(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, h.log, http.StatusOK, health)
}
