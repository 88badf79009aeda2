// Package generator fabricates synthetic accounts and causally consistent
// transaction histories.
package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"ledgersynth/config"
	"ledgersynth/content"
	"ledgersynth/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	creditProbability    = 0.3
	completedProbability = 0.9
	maxAccountAge        = 5 * 365 * 24 * time.Hour

	minAmount       = 5
	maxDebitAmount  = 1500
	maxCreditAmount = 3000
)

const (
	upperAlphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits             = "0123456789"
)

type Generator struct {
	provider content.Provider
	cfg      config.GeneratorConfig
	now      func() time.Time
}

type Option func(*Generator)

// WithClock replaces time.Now as the reference instant for backdating.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(provider content.Provider, cfg config.GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{provider: provider, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewIdentity returns a synthetic account owner.
func (g *Generator) NewIdentity(ctx context.Context) model.Identity {
	return g.provider.Identity(ctx)
}

// NewDescription returns a description for a transaction of the given
// category and type.
func (g *Generator) NewDescription(ctx context.Context, category string, typ model.TransactionType) string {
	return g.provider.Description(ctx, category, typ)
}

// ProviderName reports which content provider backs the generator.
func (g *Generator) ProviderName() string {
	return g.provider.Name()
}

// NewAccount builds an account with a random bank, branch and opening balance.
func (g *Generator) NewAccount(ctx context.Context) model.Account {
	bank := model.Pick(model.Banks)
	city := model.Pick(model.Cities)
	branch := bank.IFSCPrefix + "0" + city.Code

	now := g.now()
	opening := randomAmount(g.cfg.OpeningMin, g.cfg.OpeningMax)
	hold := decimal.Min(randomAmount(0, g.cfg.MaxHold), opening)

	acc := model.Account{
		ID:             uuid.NewString(),
		AccountNumber:  randomString(digits[1:], 1) + randomString(digits, 11),
		BankName:       bank.Name,
		BankCode:       bank.Code,
		BranchCode:     branch + randomString(upperAlphanumerics, 3),
		IFSCCode:       fmt.Sprintf("%s%03d", branch, rand.IntN(1000)),
		AccountType:    model.Pick(model.AccountTypes),
		Owner:          g.NewIdentity(ctx),
		OpeningBalance: opening,
		Hold:           hold,
		Currency:       model.Currency,
		Status:         model.StatusActive,
		OpenDate:       now.Add(-time.Duration(rand.Int64N(int64(maxAccountAge)))),
	}
	acc.SetBalance(opening, now)
	return acc
}

// NewTransaction builds one transaction for accountID. A non-empty forced type
// pins the direction. BalanceAfter and Sequence are left for the caller.
func (g *Generator) NewTransaction(ctx context.Context, accountID string, forced model.TransactionType) model.Transaction {
	typ := forced
	if !typ.IsValid() {
		typ = model.Debit
		if rand.Float64() < creditProbability {
			typ = model.Credit
		}
	}

	maxAmount := float64(maxDebitAmount)
	if typ == model.Credit {
		maxAmount = maxCreditAmount
	}

	status := model.Completed
	if rand.Float64() >= completedProbability {
		status = model.Pending
	}

	category := model.Pick(model.Categories)
	return model.Transaction{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Type:        typ,
		Amount:      randomAmount(minAmount, maxAmount),
		Description: g.NewDescription(ctx, category, typ),
		Category:    category,
		Date:        g.now(),
		Status:      status,
		Reference:   NewReference(),
	}
}

// History generates count transactions for acc in causal order and applies
// them to its balance. Provider calls and pacing happen before any balance is
// touched; the error is non-nil only when ctx ends first, in which case acc is
// unchanged.
func (g *Generator) History(ctx context.Context, acc *model.Account, count int, pacer *Pacer) ([]model.Transaction, error) {
	txns := make([]model.Transaction, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		txns = append(txns, g.NewTransaction(ctx, acc.ID, ""))
		if err := pacer.Tick(ctx); err != nil {
			return nil, err
		}
	}

	now := g.now()
	g.assignDates(acc.OpenDate, now, txns)
	ApplyHistory(acc, txns, now)
	return txns, nil
}

// assignDates spreads txns over the history window ending at now, in
// ascending order so dates follow causal order.
func (g *Generator) assignDates(openDate, now time.Time, txns []model.Transaction) {
	start := now.AddDate(0, 0, -g.cfg.HistoryDays)
	if openDate.After(start) {
		start = openDate
	}
	span := now.Sub(start)

	dates := make([]time.Time, len(txns))
	for i := range dates {
		dates[i] = now
		if span > 0 {
			dates[i] = start.Add(time.Duration(rand.Int64N(int64(span)))).Truncate(time.Second)
		}
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	for i := range txns {
		txns[i].Date = dates[i]
	}
}

// ApplyHistory runs the running balance of acc through txns in order, writing
// BalanceAfter on each and the final balance back to acc. It never blocks.
func ApplyHistory(acc *model.Account, txns []model.Transaction, at time.Time) {
	running := acc.Balance
	for i := range txns {
		running = running.Add(txns[i].Signed())
		txns[i].BalanceAfter = running
	}
	acc.SetBalance(running, at)
}

// NewReference returns a display payment reference such as TXN4F7Q2K9ZB1XA.
func NewReference() string {
	return "TXN" + randomString(upperAlphanumerics, 12)
}

// randomAmount draws uniformly from [lo, hi] at cent precision.
func randomAmount(lo, hi float64) decimal.Decimal {
	loCents := int64(math.Round(lo * 100))
	hiCents := int64(math.Round(hi * 100))
	if hiCents <= loCents {
		return decimal.New(loCents, -2)
	}
	return decimal.New(loCents+rand.Int64N(hiCents-loCents+1), -2)
}

func randomString(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}
