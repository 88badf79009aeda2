package query

import (
	"fmt"
	"math"
	"testing"
	"time"

	"ledgersynth/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func txn(id, account string, typ model.TransactionType, amount, category string, status model.TransactionStatus, daysAgo int) model.Transaction {
	return model.Transaction{
		ID:        id,
		AccountID: account,
		Type:      typ,
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
		Status:    status,
		Date:      now.AddDate(0, 0, -daysAgo),
	}
}

// seeded returns 5 debit "Food & Dining" and 3 credit transactions on a1,
// plus one debit on a2, newest first.
func seeded() []model.Transaction {
	var out []model.Transaction
	for i := 0; i < 5; i++ {
		out = append(out, txn(fmt.Sprintf("d%d", i), "a1", model.Debit, "10.10", "Food & Dining", model.Completed, i*10))
	}
	for i := 0; i < 3; i++ {
		out = append(out, txn(fmt.Sprintf("c%d", i), "a1", model.Credit, "100.005", "Salary", model.Pending, 45+i))
	}
	out = append(out, txn("x0", "a2", model.Debit, "1.00", "Food & Dining", model.Completed, 1))
	return out
}

func TestApplyFoodScenario(t *testing.T) {
	f := Filter{AccountID: "a1", Type: model.Debit, Category: "food"}

	res := Apply(seeded(), f, Page{Offset: 0, Limit: 2})

	assert.Equal(t, 5, res.Total)
	assert.Len(t, res.Items, 2)
	assert.True(t, res.HasNext)
	assert.Equal(t, "d0", res.Items[0].ID)
	assert.Equal(t, "d1", res.Items[1].ID)
}

func TestApplyPagination(t *testing.T) {
	txns := seeded()
	filters := []Filter{
		{},
		{AccountID: "a1"},
		{Type: model.Credit},
		{Status: model.Completed},
		{Category: "SAL"},
		{From: now.AddDate(0, 0, -20), To: now.AddDate(0, 0, -10)},
		{AccountID: "nobody"},
	}

	for fi, f := range filters {
		want := 0
		for _, t := range txns {
			if f.Match(t) {
				want++
			}
		}
		for offset := 0; offset <= 10; offset++ {
			for limit := 0; limit <= 10; limit++ {
				res := Apply(txns, f, Page{Offset: offset, Limit: limit})
				require.Equal(t, want, res.Total, "filter %d", fi)
				assert.Equal(t, offset+limit < want, res.HasNext, "filter %d offset %d limit %d", fi, offset, limit)
				assert.Len(t, res.Items, min(limit, max(0, want-offset)), "filter %d offset %d limit %d", fi, offset, limit)
				assert.NotNil(t, res.Items)
			}
		}
	}

	t.Run("huge offset and limit", func(t *testing.T) {
		total := len(txns)

		res := Apply(txns, Filter{}, Page{Offset: 1, Limit: math.MaxInt})
		assert.Len(t, res.Items, total-1)
		assert.False(t, res.HasNext)

		res = Apply(txns, Filter{}, Page{Offset: math.MaxInt, Limit: math.MaxInt})
		assert.Empty(t, res.Items)
		assert.NotNil(t, res.Items)
		assert.False(t, res.HasNext)

		res = Apply(txns, Filter{}, Page{Offset: 0, Limit: total - 1})
		assert.True(t, res.HasNext)
	})
}

func TestFilterMatch(t *testing.T) {
	t1 := txn("t", "a1", model.Debit, "5", "Food & Dining", model.Pending, 10)

	assert.True(t, Filter{}.Match(t1))
	assert.True(t, Filter{Category: "DINING"}.Match(t1))
	assert.False(t, Filter{Category: "salary"}.Match(t1))
	assert.False(t, Filter{Type: model.Credit}.Match(t1))
	assert.False(t, Filter{Status: model.Completed}.Match(t1))

	t.Run("date bounds are inclusive", func(t *testing.T) {
		assert.True(t, Filter{From: t1.Date, To: t1.Date}.Match(t1))
		assert.False(t, Filter{From: t1.Date.Add(time.Nanosecond)}.Match(t1))
		assert.False(t, Filter{To: t1.Date.Add(-time.Nanosecond)}.Match(t1))
	})
}

func TestSummarize(t *testing.T) {
	s := Summarize(seeded(), "a1", now)

	assert.Equal(t, "50.50", s.TotalDebit.StringFixed(2))
	// 3 x 100.005 = 300.015, rounded once at the end
	assert.Equal(t, "300.02", s.TotalCredit.StringFixed(2))
	assert.True(t, s.NetAmount.Equal(s.TotalCredit.Sub(s.TotalDebit)))
	assert.Equal(t, 8, s.TransactionCount)
	// d0 (today), d1 (10 days), d2 (20 days), d3 (30 days)
	assert.Equal(t, 4, s.Last30DaysCount)
	require.NotNil(t, s.AvgTransactionAmount)
	// (50.50 + 300.015) / 8 = 43.814375
	assert.Equal(t, "43.81", s.AvgTransactionAmount.StringFixed(2))
}

func TestSummarizeNoTransactions(t *testing.T) {
	s := Summarize(seeded(), "empty", now)

	assert.Zero(t, s.TransactionCount)
	assert.Nil(t, s.AvgTransactionAmount)
	assert.True(t, s.TotalDebit.IsZero())
	assert.True(t, s.NetAmount.IsZero())
}

func TestVerify(t *testing.T) {
	acc := model.Account{ID: "a1", OpeningBalance: decimal.RequireFromString("100.00")}
	txns := []model.Transaction{
		{ID: "t2", AccountID: "a1", Type: model.Credit, Amount: decimal.RequireFromString("5.00"), BalanceAfter: decimal.RequireFromString("95.00"), Sequence: 2},
		{ID: "t1", AccountID: "a1", Type: model.Debit, Amount: decimal.RequireFromString("10.00"), BalanceAfter: decimal.RequireFromString("90.00"), Sequence: 1},
		{ID: "o1", AccountID: "other", Type: model.Debit, Amount: decimal.RequireFromString("1.00"), Sequence: 3},
	}
	acc.Balance = decimal.RequireFromString("95.00")
	require.NoError(t, Verify(acc, txns))

	acc.Balance = decimal.RequireFromString("96.00")
	assert.Error(t, Verify(acc, txns))

	acc.Balance = decimal.RequireFromString("95.00")
	txns[0].BalanceAfter = decimal.RequireFromString("94.00")
	assert.Error(t, Verify(acc, txns))
}
