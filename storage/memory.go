package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"ledgersynth/model"
)

// Custom errors for the storage layer.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrBalanceMismatch = errors.New("balance does not replay")
)

// Store defines the ledger operations the rest of the application relies on.
type Store interface {
	PutAccount(ctx context.Context, acc model.Account) error
	PutTransactions(ctx context.Context, txns []model.Transaction) error
	PutLedger(ctx context.Context, acc model.Account, txns []model.Transaction) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	ApplyTransaction(ctx context.Context, accountID string, txn model.Transaction) (*model.Transaction, error)
	Counts(ctx context.Context) (accounts, transactions int, err error)
}

// MemoryStore keeps the whole ledger in process memory. All balance-affecting
// writes happen under the write lock and never block inside it.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
	order    []string // account ids in insertion order

	// txns is kept in read order: newest date first, later sequence first on ties.
	txns   []model.Transaction
	txByID map[string]model.Transaction
	seq    uint64
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*model.Account),
		txByID:   make(map[string]model.Transaction),
	}
}

// PutTransactions applies txns, in the given order, to the current balances
// of their accounts, exactly as ApplyTransaction would one at a time. Every
// referenced account must already exist; otherwise nothing is appended.
func (s *MemoryStore) PutTransactions(ctx context.Context, txns []model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkNew(txns); err != nil {
		return err
	}
	applied := slices.Clone(txns)
	for i := range applied {
		if applied[i].Date.IsZero() {
			applied[i].Date = time.Now()
		}
		acc := s.accounts[applied[i].AccountID]
		applied[i].BalanceAfter = acc.Balance.Add(applied[i].Signed())
		acc.SetBalance(applied[i].BalanceAfter, applied[i].Date)
	}
	s.appendTransactions(applied)
	return nil
}

// PutLedger adds an account together with its already applied history, so
// readers never see one without the other. The history must replay from the
// opening balance to the account's balance.
func (s *MemoryStore) PutLedger(ctx context.Context, acc model.Account, txns []model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	running := acc.OpeningBalance
	for _, t := range txns {
		if t.AccountID != acc.ID {
			return fmt.Errorf("transaction %s belongs to account %s, not %s", t.ID, t.AccountID, acc.ID)
		}
		running = running.Add(t.Signed())
		if !running.Equal(t.BalanceAfter) {
			return fmt.Errorf("transaction %s: balance after %s, replay gives %s: %w",
				t.ID, t.BalanceAfter.StringFixed(2), running.StringFixed(2), ErrBalanceMismatch)
		}
	}
	if !running.Equal(acc.Balance) {
		return fmt.Errorf("account %s: balance %s, replay gives %s: %w",
			acc.ID, acc.Balance.StringFixed(2), running.StringFixed(2), ErrBalanceMismatch)
	}
	if _, ok := s.accounts[acc.ID]; ok {
		return fmt.Errorf("account %s: %w", acc.ID, ErrAlreadyExists)
	}
	if err := s.checkIDs(txns); err != nil {
		return err
	}
	s.putAccount(acc)
	s.appendTransactions(txns)
	return nil
}

// PutAccount adds acc to the ledger.
func (s *MemoryStore) PutAccount(ctx context.Context, acc model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[acc.ID]; ok {
		return fmt.Errorf("account %s: %w", acc.ID, ErrAlreadyExists)
	}
	s.putAccount(acc)
	return nil
}

func (s *MemoryStore) putAccount(acc model.Account) {
	s.accounts[acc.ID] = &acc
	s.order = append(s.order, acc.ID)
}

// checkNew reports whether txns can be appended: known accounts, fresh ids.
func (s *MemoryStore) checkNew(txns []model.Transaction) error {
	for _, t := range txns {
		if _, ok := s.accounts[t.AccountID]; !ok {
			return fmt.Errorf("account %s: %w", t.AccountID, ErrNotFound)
		}
	}
	return s.checkIDs(txns)
}

func (s *MemoryStore) checkIDs(txns []model.Transaction) error {
	seen := make(map[string]bool, len(txns))
	for _, t := range txns {
		if _, ok := s.txByID[t.ID]; ok || seen[t.ID] {
			return fmt.Errorf("transaction %s: %w", t.ID, ErrAlreadyExists)
		}
		seen[t.ID] = true
	}
	return nil
}

// appendTransactions assigns sequences in slice order and restores read order.
func (s *MemoryStore) appendTransactions(txns []model.Transaction) {
	for _, t := range txns {
		s.seq++
		t.Sequence = s.seq
		s.txns = append(s.txns, t)
		s.txByID[t.ID] = t
	}
	slices.SortStableFunc(s.txns, readOrder)
}

// GetAccount retrieves a single account by its ID.
func (s *MemoryStore) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	cp := *acc
	return &cp, nil
}

// ListAccounts returns every account in insertion order.
func (s *MemoryStore) ListAccounts(ctx context.Context) ([]model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.accounts[id])
	}
	return out, nil
}

// GetTransaction retrieves a single transaction by its ID.
func (s *MemoryStore) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.txByID[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return &t, nil
}

// ListTransactions returns every transaction, newest date first.
func (s *MemoryStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.txns), nil
}

// ApplyTransaction applies txn to the current balance of the account and
// records it. Reading the balance, computing BalanceAfter and writing the new
// balance form one critical section.
func (s *MemoryStore) ApplyTransaction(ctx context.Context, accountID string, txn model.Transaction) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	if _, ok := s.txByID[txn.ID]; ok {
		return nil, fmt.Errorf("transaction %s: %w", txn.ID, ErrAlreadyExists)
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}

	txn.AccountID = accountID
	txn.BalanceAfter = acc.Balance.Add(txn.Signed())
	s.seq++
	txn.Sequence = s.seq
	acc.SetBalance(txn.BalanceAfter, txn.Date)

	// A new transaction is normally the newest, so this is the head of the list.
	i, _ := slices.BinarySearchFunc(s.txns, txn, readOrder)
	s.txns = slices.Insert(s.txns, i, txn)
	s.txByID[txn.ID] = txn
	return &txn, nil
}

// Counts returns the number of accounts and transactions held.
func (s *MemoryStore) Counts(ctx context.Context) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts), len(s.txns), nil
}

func readOrder(a, b model.Transaction) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	switch {
	case a.Sequence > b.Sequence:
		return -1
	case a.Sequence < b.Sequence:
		return 1
	}
	return 0
}
