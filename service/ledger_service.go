// Package service wires generation, storage and queries into the operations
// exposed to clients.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ledgersynth/generator"
	"ledgersynth/model"
	"ledgersynth/query"
	"ledgersynth/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAccountCount           = 5
	DefaultTransactionsPerAccount = 20
	MaxAccountCount               = model.MaxAccountCount
	MaxTransactionsPerAccount     = model.MaxTransactionsPerAccount

	sampleAccounts     = 2
	sampleTransactions = 5
)

// Ledger is the set of operations the HTTP layer calls.
type Ledger interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	GetBalance(ctx context.Context, id string) (*model.Balance, error)
	ListAccountTransactions(ctx context.Context, accountID string, f query.Filter, p query.Page) (query.Result, error)
	Summary(ctx context.Context, accountID string) (*model.Summary, error)
	ListTransactions(ctx context.Context, f query.Filter, p query.Page) (query.Result, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	CreateTransaction(ctx context.Context, accountID string, req model.CreateTransactionRequest) (*model.Transaction, error)
	Generate(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error)
	Health(ctx context.Context) (*Health, error)
}

// Health describes the running service.
type Health struct {
	Status          string `json:"status"`
	ContentProvider string `json:"contentProvider"`
	Accounts        int    `json:"accounts"`
	Transactions    int    `json:"transactions"`
}

type LedgerService struct {
	store   storage.Store
	gen     *generator.Generator
	workers int
	log     *zap.Logger
	now     func() time.Time
}

func NewLedgerService(store storage.Store, gen *generator.Generator, workers int, log *zap.Logger) *LedgerService {
	if workers <= 0 {
		workers = 1
	}
	return &LedgerService{
		store:   store,
		gen:     gen,
		workers: workers,
		log:     log,
		now:     time.Now,
	}
}

// Seed fills the ledger with sample data. Zero accounts seeds nothing and zero
// transactions per account seeds accounts without history.
func (s *LedgerService) Seed(ctx context.Context, accounts, perAccount int) error {
	if accounts == 0 {
		return nil
	}
	if accounts < 0 || accounts > MaxAccountCount || perAccount < 0 || perAccount > MaxTransactionsPerAccount {
		return fmt.Errorf("%w: seed size %d x %d is out of range", ErrInvalidInput, accounts, perAccount)
	}
	_, err := s.generate(ctx, accounts, perAccount)
	return err
}

func (s *LedgerService) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return s.store.ListAccounts(ctx)
}

func (s *LedgerService) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	return s.store.GetAccount(ctx, id)
}

func (s *LedgerService) GetBalance(ctx context.Context, id string) (*model.Balance, error) {
	acc, err := s.store.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.Balance{
		AccountID:        acc.ID,
		Balance:          acc.Balance,
		AvailableBalance: acc.AvailableBalance,
		Currency:         acc.Currency,
		LastUpdated:      acc.LastUpdated,
	}, nil
}

func (s *LedgerService) ListAccountTransactions(ctx context.Context, accountID string, f query.Filter, p query.Page) (query.Result, error) {
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return query.Result{}, err
	}
	f.AccountID = accountID
	return s.ListTransactions(ctx, f, p)
}

func (s *LedgerService) Summary(ctx context.Context, accountID string) (*model.Summary, error) {
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	txns, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	summary := query.Summarize(txns, accountID, s.now())
	return &summary, nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, f query.Filter, p query.Page) (query.Result, error) {
	txns, err := s.store.ListTransactions(ctx)
	if err != nil {
		return query.Result{}, err
	}
	return query.Apply(txns, f, p), nil
}

func (s *LedgerService) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	return s.store.GetTransaction(ctx, id)
}

// CreateTransaction records one transaction against the current balance of
// the account. The description, when missing, is fetched before the store's
// critical section is entered.
func (s *LedgerService) CreateTransaction(ctx context.Context, accountID string, req model.CreateTransactionRequest) (*model.Transaction, error) {
	if req.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: type must be %q or %q", ErrInvalidInput, model.Credit, model.Debit)
	}
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	status := req.Status
	if status == "" {
		status = model.Completed
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrInvalidInput, model.Completed, model.Pending)
	}

	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = model.DefaultCategory
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = s.gen.NewDescription(ctx, category, req.Type)
	}

	txn, err := s.store.ApplyTransaction(ctx, accountID, model.Transaction{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        s.now(),
		Status:      status,
		Reference:   generator.NewReference(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("transaction created",
		zap.String("account_id", accountID),
		zap.String("transaction_id", txn.ID),
		zap.String("type", string(txn.Type)),
		zap.String("amount", txn.Amount.StringFixed(2)),
		zap.String("balance_after", txn.BalanceAfter.StringFixed(2)),
	)
	return txn, nil
}

type generated struct {
	account model.Account
	txns    []model.Transaction
}

// Generate synthesizes accounts with transaction histories and appends them
// to the ledger. Accounts are built concurrently; each is committed together
// with its history once that history is fully applied.
func (s *LedgerService) Generate(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error) {
	accounts, perAccount := req.AccountCount, req.TransactionsPerAccount
	if accounts == 0 {
		accounts = DefaultAccountCount
	}
	if perAccount == 0 {
		perAccount = DefaultTransactionsPerAccount
	}
	if accounts < 1 || accounts > MaxAccountCount {
		return nil, fmt.Errorf("%w: accountCount must be between 1 and %d", ErrInvalidInput, MaxAccountCount)
	}
	if perAccount < 1 || perAccount > MaxTransactionsPerAccount {
		return nil, fmt.Errorf("%w: transactionsPerAccount must be between 1 and %d", ErrInvalidInput, MaxTransactionsPerAccount)
	}
	return s.generate(ctx, accounts, perAccount)
}

func (s *LedgerService) generate(ctx context.Context, accounts, perAccount int) (*model.GenerateResult, error) {
	start := time.Now()
	pacer := s.gen.NewPacer()
	results := make([]generated, accounts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range accounts {
		g.Go(func() error {
			acc := s.gen.NewAccount(gctx)
			if err := pacer.Tick(gctx); err != nil {
				return err
			}
			txns, err := s.gen.History(gctx, &acc, perAccount, pacer)
			if err != nil {
				return err
			}
			if err := s.store.PutLedger(gctx, acc, txns); err != nil {
				return err
			}
			results[i] = generated{account: acc, txns: txns}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("bulk generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: generate ledger: %w", ErrInternal, err)
	}

	res := &model.GenerateResult{
		AccountsGenerated:     accounts,
		TransactionsGenerated: accounts * perAccount,
		SampleAccounts:        make([]model.Account, 0, sampleAccounts),
		SampleTransactions:    make([]model.Transaction, 0, sampleTransactions),
	}
	for _, r := range results[:min(sampleAccounts, len(results))] {
		res.SampleAccounts = append(res.SampleAccounts, r.account)
	}
	for _, t := range results[0].txns[:min(sampleTransactions, len(results[0].txns))] {
		stored, err := s.store.GetTransaction(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: read back generated transaction: %w", ErrInternal, err)
		}
		res.SampleTransactions = append(res.SampleTransactions, *stored)
	}

	s.log.Info("ledger generated",
		zap.Int("accounts", res.AccountsGenerated),
		zap.Int("transactions", res.TransactionsGenerated),
		zap.String("content_provider", s.gen.ProviderName()),
		zap.Duration("took", time.Since(start)),
	)
	return res, nil
}

func (s *LedgerService) Health(ctx context.Context) (*Health, error) {
	accounts, txns, err := s.store.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &Health{
		Status:          "UP",
		ContentProvider: s.gen.ProviderName(),
		Accounts:        accounts,
		Transactions:    txns,
	}, nil
}
