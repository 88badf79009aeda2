// Package query filters, paginates and aggregates ledger snapshots. Every
// function here is pure: it reads the slices it is given and never mutates them.
package query

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"ledgersynth/model"

	"github.com/shopspring/decimal"
)

const DefaultLimit = 50

// Filter selects transactions. Zero fields match everything.
type Filter struct {
	AccountID string
	Type      model.TransactionType
	Status    model.TransactionStatus
	// Category matches case-insensitively as a substring.
	Category string
	// From and To bound Date inclusively.
	From time.Time
	To   time.Time
}

// Match reports whether t passes every set criterion.
func (f Filter) Match(t model.Transaction) bool {
	switch {
	case f.AccountID != "" && t.AccountID != f.AccountID:
		return false
	case f.Type != "" && t.Type != f.Type:
		return false
	case f.Status != "" && t.Status != f.Status:
		return false
	case f.Category != "" && !strings.Contains(strings.ToLower(t.Category), strings.ToLower(f.Category)):
		return false
	case !f.From.IsZero() && t.Date.Before(f.From):
		return false
	case !f.To.IsZero() && t.Date.After(f.To):
		return false
	}
	return true
}

type Page struct {
	Offset int
	Limit  int
}

func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultLimit}
}

// Result is one page of matching transactions.
type Result struct {
	Items   []model.Transaction
	Total   int
	Offset  int
	Limit   int
	HasNext bool
}

// Apply filters txns, keeping their order, and cuts out the requested page.
// Total counts every match before pagination.
func Apply(txns []model.Transaction, f Filter, p Page) Result {
	offset, limit := max(p.Offset, 0), max(p.Limit, 0)

	matched := make([]model.Transaction, 0)
	for _, t := range txns {
		if f.Match(t) {
			matched = append(matched, t)
		}
	}

	total := len(matched)
	start := min(offset, total)
	remaining := total - start
	return Result{
		Items:   matched[start : start+min(limit, remaining)],
		Total:   total,
		Offset:  offset,
		Limit:   limit,
		HasNext: offset < total && limit < remaining,
	}
}

// Summarize aggregates the transactions of accountID found in txns.
// Sums are rounded to 2 places once, after adding.
func Summarize(txns []model.Transaction, accountID string, now time.Time) model.Summary {
	var debit, credit, all decimal.Decimal
	var count, recent int
	since := now.AddDate(0, 0, -30)

	for _, t := range txns {
		if t.AccountID != accountID {
			continue
		}
		count++
		all = all.Add(t.Amount)
		switch t.Type {
		case model.Debit:
			debit = debit.Add(t.Amount)
		case model.Credit:
			credit = credit.Add(t.Amount)
		}
		if !t.Date.Before(since) && !t.Date.After(now) {
			recent++
		}
	}

	s := model.Summary{
		AccountID:        accountID,
		TotalDebit:       debit.Round(2),
		TotalCredit:      credit.Round(2),
		TransactionCount: count,
		Last30DaysCount:  recent,
	}
	s.NetAmount = s.TotalCredit.Sub(s.TotalDebit)
	if count > 0 {
		avg := all.Div(decimal.NewFromInt(int64(count))).Round(2)
		s.AvgTransactionAmount = &avg
	}
	return s
}

// Verify replays the transactions of acc in causal order from its opening
// balance and checks every BalanceAfter and the final balance.
func Verify(acc model.Account, txns []model.Transaction) error {
	var own []model.Transaction
	for _, t := range txns {
		if t.AccountID == acc.ID {
			own = append(own, t)
		}
	}
	slices.SortFunc(own, func(a, b model.Transaction) int {
		switch {
		case a.Sequence < b.Sequence:
			return -1
		case a.Sequence > b.Sequence:
			return 1
		}
		return 0
	})

	running := acc.OpeningBalance
	for _, t := range own {
		running = running.Add(t.Signed())
		if !running.Equal(t.BalanceAfter) {
			return fmt.Errorf("account %s: transaction %s (sequence %d) has balance after %s, replay gives %s",
				acc.ID, t.ID, t.Sequence, t.BalanceAfter.StringFixed(2), running.StringFixed(2))
		}
	}
	if !running.Equal(acc.Balance) {
		return fmt.Errorf("account %s: balance %s, replay gives %s", acc.ID, acc.Balance.StringFixed(2), running.StringFixed(2))
	}
	return nil
}
