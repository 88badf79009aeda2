package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledgersynth/model"
	"ledgersynth/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, _ := newLedgerRouter(t, "", "")

		rr, resp := do(t, router, "POST", "/api/generate", `{"accountCount": 2, "transactionsPerAccount": 3}`)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		assert.Contains(t, string(resp.Data), `"accountsGenerated":2`)
		assert.Contains(t, string(resp.Data), `"transactionsGenerated":6`)

		_, health := do(t, router, "GET", "/api/health", "")
		assert.Contains(t, string(health.Data), `"accounts":2`)
		assert.Contains(t, string(health.Data), `"transactions":6`)
		assert.Contains(t, string(health.Data), `"contentProvider":"fallback"`)
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		mock := &MockLedger{
			GenerateFunc: func(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error) {
				assert.Equal(t, model.GenerateRequest{}, req)
				return &model.GenerateResult{AccountsGenerated: 5, TransactionsGenerated: 100}, nil
			},
		}
		rr, _ := do(t, NewRouter(mock, zap.NewNop()), "POST", "/api/generate", "")
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("out of range", func(t *testing.T) {
		router, _ := newLedgerRouter(t, "", "")
		rr, resp := do(t, router, "POST", "/api/generate", `{"accountCount": 1000}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, codeInvalidInput, resp.Code)
	})

	t.Run("internal error carries the cause", func(t *testing.T) {
		mock := &MockLedger{
			GenerateFunc: func(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error) {
				return nil, fmt.Errorf("%w: generate ledger: %w", service.ErrInternal, context.DeadlineExceeded)
			},
		}
		rr, resp := do(t, NewRouter(mock, zap.NewNop()), "POST", "/api/generate", `{}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, codeInternal, resp.Code)
		assert.Contains(t, resp.Error, "context deadline exceeded")
	})

	t.Run("invalid json", func(t *testing.T) {
		rr, _ := do(t, NewRouter(&MockLedger{}, zap.NewNop()), "POST", "/api/generate", `{"accountCount":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRecoverer(t *testing.T) {
	mock := &MockLedger{
		HealthFunc: func(ctx context.Context) (*service.Health, error) {
			panic("unexpected")
		},
	}
	req := httptest.NewRequest("GET", "/api/health", nil)
	rr := httptest.NewRecorder()

	NewRouter(mock, zap.NewNop()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCORS(t *testing.T) {
	router := NewRouter(&MockLedger{
		HealthFunc: func(ctx context.Context) (*service.Health, error) {
			return &service.Health{Status: "UP"}, nil
		},
	}, zap.NewNop())

	t.Run("preflight is answered for read routes", func(t *testing.T) {
		for _, target := range []string{"/api/health", "/api/accounts/acc/balance", "/api/transactions", "/api/generate"} {
			req := httptest.NewRequest(http.MethodOptions, target, nil)
			req.Header.Set("Origin", "https://app.example.com")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code, target)
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"), target)
			assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodGet, target)
		}
	})

	t.Run("simple request carries the origin header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
