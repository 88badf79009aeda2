package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ledgersynth/query"
	"ledgersynth/service"

	"go.uber.org/zap"
)

// Stable error codes carried next to the human-readable message.
const (
	codeNotFound     = "NOT_FOUND"
	codeInvalidInput = "INVALID_INPUT"
	codeInternal     = "INTERNAL_ERROR"
)

// envelope is the shape of every response body.
type envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Error      string              `json:"error,omitempty"`
	Code       string              `json:"code,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

type PaginationResponse struct {
	Total   int  `json:"total"`
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	HasNext bool `json:"hasNext"`
}

func newPagination(res query.Result) *PaginationResponse {
	return &PaginationResponse{Total: res.Total, Offset: res.Offset, Limit: res.Limit, HasNext: res.HasNext}
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("error writing JSON response", zap.Error(err))
	}
}

func writeData(w http.ResponseWriter, log *zap.Logger, status int, data any) {
	writeJSON(w, log, status, envelope{Success: true, Data: data})
}

func writePage(w http.ResponseWriter, log *zap.Logger, res query.Result) {
	writeJSON(w, log, http.StatusOK, envelope{
		Success:    true,
		Data:       NewTransactionResponses(res.Items),
		Pagination: newPagination(res),
	})
}

func writeFailure(w http.ResponseWriter, log *zap.Logger, status int, code, msg string) {
	writeJSON(w, log, status, envelope{Success: false, Error: msg, Code: code})
}

// writeError maps service errors to HTTP statuses:
// not found → 404, invalid input → 400, anything else → 500.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeFailure(w, log, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeFailure(w, log, http.StatusBadRequest, codeInvalidInput, err.Error())
	default:
		log.Error("request failed", zap.Error(err))
		writeFailure(w, log, http.StatusInternalServerError, codeInternal, err.Error())
	}
}
