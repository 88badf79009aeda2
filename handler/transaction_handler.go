package handler

import (
	"encoding/json"
	"net/http"

	"ledgersynth/model"
	"ledgersynth/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	ledger service.Ledger
	log    *zap.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger service.Ledger, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, log: log}
}

// CreateTransactionHandler records a transaction against an account and
// updates its balance.
// It expects a JSON body with "type" and "amount", and optionally
// "description", "category" and "status".
//
// Method: POST
// Path: /api/accounts/{account_id}/transactions
// Success: 201 Created
// Error: 400 Bad Request (for invalid JSON or validation failure)
// Error: 404 Not Found (if account does not exist)
func (h *TransactionHandler) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, h.log, http.StatusBadRequest, codeInvalidInput, "Invalid request body")
		return
	}

	txn, err := h.ledger.CreateTransaction(r.Context(), mux.Vars(r)["account_id"], req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, h.log, http.StatusCreated, NewTransactionResponse(*txn))
}

// ListTransactionsHandler returns a filtered page across all accounts.
//
// Method: GET
// Path: /api/transactions
// Query: accountId, type, status, category, startDate, endDate, limit, offset
// Success: 200 OK
// Error: 400 Bad Request (for malformed query parameters)
func (h *TransactionHandler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseFilter(q)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	p, err := parsePage(q)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	res, err := h.ledger.ListTransactions(r.Context(), f, p)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writePage(w, h.log, res)
}

// GetTransactionHandler returns one transaction.
//
// Method: GET
// Path: /api/transactions/{transaction_id}
// Success: 200 OK
// Error: 404 Not Found (if transaction does not exist)
func (h *TransactionHandler) GetTransactionHandler(w http.ResponseWriter, r *http.Request) {
	txn, err := h.ledger.GetTransaction(r.Context(), mux.Vars(r)["transaction_id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, h.log, http.StatusOK, NewTransactionResponse(*txn))
}
