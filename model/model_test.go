package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionSigned(t *testing.T) {
	amount := decimal.RequireFromString("12.34")

	assert.Equal(t, "12.34", Transaction{Type: Credit, Amount: amount}.Signed().StringFixed(2))
	assert.Equal(t, "-12.34", Transaction{Type: Debit, Amount: amount}.Signed().StringFixed(2))
}

func TestAccountSetBalance(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	acc := Account{Hold: decimal.RequireFromString("99.99")}

	acc.SetBalance(decimal.RequireFromString("100.00"), at)

	assert.Equal(t, "100.00", acc.Balance.StringFixed(2))
	assert.Equal(t, "0.01", acc.AvailableBalance.StringFixed(2))
	assert.Equal(t, at, acc.LastUpdated)
	assert.True(t, acc.AvailableBalance.LessThanOrEqual(acc.Balance))
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, Credit.IsValid())
	assert.True(t, Debit.IsValid())
	assert.False(t, TransactionType("refund").IsValid())
	assert.False(t, TransactionType("").IsValid())

	assert.True(t, Completed.IsValid())
	assert.True(t, Pending.IsValid())
	assert.False(t, TransactionStatus("failed").IsValid())
}

func TestCategories(t *testing.T) {
	require.Len(t, Categories, 30)
	seen := make(map[string]bool)
	for _, c := range Categories {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
	assert.True(t, seen[DefaultCategory])
}

func TestCreateTransactionRequestJSON(t *testing.T) {
	t.Run("amount as number or string", func(t *testing.T) {
		for _, body := range []string{`{"type":"debit","amount":500}`, `{"type":"debit","amount":"500"}`} {
			var req CreateTransactionRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req))
			require.NotNil(t, req.Amount)
			assert.True(t, decimal.NewFromInt(500).Equal(*req.Amount))
			assert.Equal(t, Debit, req.Type)
		}
	})

	t.Run("missing amount stays nil", func(t *testing.T) {
		var req CreateTransactionRequest
		require.NoError(t, json.Unmarshal([]byte(`{"type":"credit"}`), &req))
		assert.Nil(t, req.Amount)
	})

	t.Run("invalid amount type", func(t *testing.T) {
		var req CreateTransactionRequest
		err := json.Unmarshal([]byte(`{"type":"credit","amount":true}`), &req)
		require.Error(t, err)
	})
}
