package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ledgersynth/config"
	"ledgersynth/content"
	"ledgersynth/generator"
	"ledgersynth/model"
	"ledgersynth/service"
	"ledgersynth/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// response mirrors envelope with raw data for decoding in tests.
type response struct {
	Success    bool                `json:"success"`
	Data       json.RawMessage     `json:"data"`
	Error      string              `json:"error"`
	Code       string              `json:"code"`
	Pagination *PaginationResponse `json:"pagination"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr, resp
}

// newLedgerRouter returns a router over a real service holding one account
// with the given id and balance.
func newLedgerRouter(t *testing.T, accountID, balance string) (http.Handler, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	if accountID != "" {
		acc := model.Account{
			ID:             accountID,
			OpeningBalance: decimal.RequireFromString(balance),
			Hold:           decimal.RequireFromString("50.00"),
			Currency:       model.Currency,
			Status:         model.StatusActive,
		}
		acc.SetBalance(acc.OpeningBalance, time.Now())
		require.NoError(t, store.PutAccount(context.Background(), acc))
	}
	gen := generator.New(content.NewFallback(), config.NewDefault().Generator)
	svc := service.NewLedgerService(store, gen, 2, zap.NewNop())
	return NewRouter(svc, zap.NewNop()), store
}
