package handler

import (
	"context"

	"ledgersynth/model"
	"ledgersynth/query"
	"ledgersynth/service"
)

// MockLedger provides a mock implementation of service.Ledger for testing.
type MockLedger struct {
	ListAccountsFunc            func(ctx context.Context) ([]model.Account, error)
	GetAccountFunc              func(ctx context.Context, id string) (*model.Account, error)
	GetBalanceFunc              func(ctx context.Context, id string) (*model.Balance, error)
	ListAccountTransactionsFunc func(ctx context.Context, accountID string, f query.Filter, p query.Page) (query.Result, error)
	SummaryFunc                 func(ctx context.Context, accountID string) (*model.Summary, error)
	ListTransactionsFunc        func(ctx context.Context, f query.Filter, p query.Page) (query.Result, error)
	GetTransactionFunc          func(ctx context.Context, id string) (*model.Transaction, error)
	CreateTransactionFunc       func(ctx context.Context, accountID string, req model.CreateTransactionRequest) (*model.Transaction, error)
	GenerateFunc                func(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error)
	HealthFunc                  func(ctx context.Context) (*service.Health, error)
}

func (m *MockLedger) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return m.ListAccountsFunc(ctx)
}

func (m *MockLedger) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	return m.GetAccountFunc(ctx, id)
}

func (m *MockLedger) GetBalance(ctx context.Context, id string) (*model.Balance, error) {
	return m.GetBalanceFunc(ctx, id)
}

func (m *MockLedger) ListAccountTransactions(ctx context.Context, accountID string, f query.Filter, p query.Page) (query.Result, error) {
	return m.ListAccountTransactionsFunc(ctx, accountID, f, p)
}

func (m *MockLedger) Summary(ctx context.Context, accountID string) (*model.Summary, error) {
	return m.SummaryFunc(ctx, accountID)
}

func (m *MockLedger) ListTransactions(ctx context.Context, f query.Filter, p query.Page) (query.Result, error) {
	return m.ListTransactionsFunc(ctx, f, p)
}

func (m *MockLedger) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	return m.GetTransactionFunc(ctx, id)
}

func (m *MockLedger) CreateTransaction(ctx context.Context, accountID string, req model.CreateTransactionRequest) (*model.Transaction, error) {
	return m.CreateTransactionFunc(ctx, accountID, req)
}

func (m *MockLedger) Generate(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error) {
	return m.GenerateFunc(ctx, req)
}

func (m *MockLedger) Health(ctx context.Context) (*service.Health, error) {
	return m.HealthFunc(ctx)
}
