package handler

import (
	"net/http"

	"ledgersynth/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter registers every API route on a new gorilla/mux router and wraps
// it with panic recovery and CORS. CORS sits outside the router so preflight
// requests are answered for every route.
func NewRouter(ledger service.Ledger, log *zap.Logger) http.Handler {
	accountHandler := NewAccountHandler(ledger, log)
	transactionHandler := NewTransactionHandler(ledger, log)
	generateHandler := NewGenerateHandler(ledger, log)

	r := mux.NewRouter()
	r.Use(requestLogger(log))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", generateHandler.HealthHandler).Methods("GET")
	api.HandleFunc("/generate", generateHandler.GenerateHandler).Methods("POST")

	api.HandleFunc("/accounts", accountHandler.ListAccountsHandler).Methods("GET")
	api.HandleFunc("/accounts/{account_id}", accountHandler.GetAccountHandler).Methods("GET")
	api.HandleFunc("/accounts/{account_id}/balance", accountHandler.GetBalanceHandler).Methods("GET")
	api.HandleFunc("/accounts/{account_id}/summary", accountHandler.SummaryHandler).Methods("GET")
	api.HandleFunc("/accounts/{account_id}/transactions", accountHandler.ListAccountTransactionsHandler).Methods("GET")
	api.HandleFunc("/accounts/{account_id}/transactions", transactionHandler.CreateTransactionHandler).Methods("POST")

	api.HandleFunc("/transactions", transactionHandler.ListTransactionsHandler).Methods("GET")
	api.HandleFunc("/transactions/{transaction_id}", transactionHandler.GetTransactionHandler).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, log, http.StatusNotFound, codeNotFound, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, log, http.StatusMethodNotAllowed, codeInvalidInput, "Method not allowed")
	})

	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{log: log}))
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
	return cors(recovery(r))
}
