package handler

import (
	"net/http"

	"ledgersynth/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	ledger service.Ledger
	log    *zap.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger service.Ledger, log *zap.Logger) *AccountHandler {
	return &AccountHandler{ledger: ledger, log: log}
}

// ListAccountsHandler returns every account.
//
// Method: GET
// Path: /api/accounts
// Success: 200 OK
func (h *AccountHandler) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.ledger.ListAccounts(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, h.log, http.StatusOK, NewAccountResponses(accounts))
}

// GetAccountHandler returns one account.
//
// Method: GET
// Path: /api/accounts/{account_id}
// Success: 200 OK
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	account, err := h.ledger.GetAccount(r.Context(), mux.Vars(r)["account_id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, h.log, http.StatusOK, NewAccountResponse(*account))
}

// GetBalanceHandler returns the balance view of one account.
//
// Method: GET
// Path: /api/accounts/{account_id}/balance
// Success: 200 OK
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledger.GetBalance(r.Context(), mux.Vars(r)["account_id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, h.log, http.StatusOK, newBalanceResponse(*balance))
}

// ListAccountTransactionsHandler returns a filtered page of one account's
// transactions, newest first.
//
// Method: GET
// Path: /api/accounts/{account_id}/transactions
// Query: type, status, category, startDate, endDate, limit, offset
// Success: 200 OK
// Error: 400 Bad Request (for malformed query parameters)
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) ListAccountTransactionsHandler(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.ledger.ListAccountTransactions(r.Context(), mux.Vars(r)["account_id"], f, p)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writePage(w, h.log, res)
}

// SummaryHandler returns the aggregate summary of one account.
//
// Method: GET
// Path: /api/accounts/{account_id}/summary
// Success: 200 OK
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledger.Summary(r.Context(), mux.Vars(r)["account_id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, h.log, http.StatusOK, newSummaryResponse(*summary))
}
