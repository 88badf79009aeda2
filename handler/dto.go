package handler

import (
	"encoding/json"
	"time"

	"ledgersynth/model"

	"github.com/shopspring/decimal"
)

// Response types render money as JSON numbers with exactly two decimals.

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

type AccountResponse struct {
	ID               string              `json:"id"`
	AccountNumber    string              `json:"accountNumber"`
	BankName         string              `json:"bankName"`
	BankCode         string              `json:"bankCode"`
	BranchCode       string              `json:"branchCode"`
	IFSCCode         string              `json:"ifscCode"`
	AccountType      model.AccountType   `json:"accountType"`
	Owner            model.Identity      `json:"owner"`
	OpeningBalance   json.Number         `json:"openingBalance"`
	Balance          json.Number         `json:"balance"`
	AvailableBalance json.Number         `json:"availableBalance"`
	Currency         string              `json:"currency"`
	Status           model.AccountStatus `json:"status"`
	OpenDate         time.Time           `json:"openDate"`
	LastUpdated      time.Time           `json:"lastUpdated"`
}

func NewAccountResponse(a model.Account) AccountResponse {
	return AccountResponse{
		ID:               a.ID,
		AccountNumber:    a.AccountNumber,
		BankName:         a.BankName,
		BankCode:         a.BankCode,
		BranchCode:       a.BranchCode,
		IFSCCode:         a.IFSCCode,
		AccountType:      a.AccountType,
		Owner:            a.Owner,
		OpeningBalance:   money(a.OpeningBalance),
		Balance:          money(a.Balance),
		AvailableBalance: money(a.AvailableBalance),
		Currency:         a.Currency,
		Status:           a.Status,
		OpenDate:         a.OpenDate,
		LastUpdated:      a.LastUpdated,
	}
}

func NewAccountResponses(accounts []model.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = NewAccountResponse(a)
	}
	return out
}

type TransactionResponse struct {
	ID           string                  `json:"id"`
	AccountID    string                  `json:"accountId"`
	Type         model.TransactionType   `json:"type"`
	Amount       json.Number             `json:"amount"`
	Description  string                  `json:"description"`
	Category     string                  `json:"category"`
	Date         time.Time               `json:"date"`
	Status       model.TransactionStatus `json:"status"`
	Reference    string                  `json:"reference"`
	BalanceAfter json.Number             `json:"balanceAfter"`
	Sequence     uint64                  `json:"sequence"`
}

func NewTransactionResponse(t model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		AccountID:    t.AccountID,
		Type:         t.Type,
		Amount:       money(t.Amount),
		Description:  t.Description,
		Category:     t.Category,
		Date:         t.Date,
		Status:       t.Status,
		Reference:    t.Reference,
		BalanceAfter: money(t.BalanceAfter),
		Sequence:     t.Sequence,
	}
}

func NewTransactionResponses(txns []model.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = NewTransactionResponse(t)
	}
	return out
}

type BalanceResponse struct {
	AccountID        string      `json:"accountId"`
	Balance          json.Number `json:"balance"`
	AvailableBalance json.Number `json:"availableBalance"`
	Currency         string      `json:"currency"`
	LastUpdated      time.Time   `json:"lastUpdated"`
}

func newBalanceResponse(b model.Balance) BalanceResponse {
	return BalanceResponse{
		AccountID:        b.AccountID,
		Balance:          money(b.Balance),
		AvailableBalance: money(b.AvailableBalance),
		Currency:         b.Currency,
		LastUpdated:      b.LastUpdated,
	}
}

// SummaryResponse carries a null average and hasTransactions=false for an
// account without transactions.
type SummaryResponse struct {
	AccountID            string       `json:"accountId"`
	TotalDebit           json.Number  `json:"totalDebit"`
	TotalCredit          json.Number  `json:"totalCredit"`
	NetAmount            json.Number  `json:"netAmount"`
	TransactionCount     int          `json:"transactionCount"`
	Last30DaysCount      int          `json:"last30DaysCount"`
	AvgTransactionAmount *json.Number `json:"avgTransactionAmount"`
	HasTransactions      bool         `json:"hasTransactions"`
}

func newSummaryResponse(s model.Summary) SummaryResponse {
	out := SummaryResponse{
		AccountID:        s.AccountID,
		TotalDebit:       money(s.TotalDebit),
		TotalCredit:      money(s.TotalCredit),
		NetAmount:        money(s.NetAmount),
		TransactionCount: s.TransactionCount,
		Last30DaysCount:  s.Last30DaysCount,
		HasTransactions:  s.AvgTransactionAmount != nil,
	}
	if s.AvgTransactionAmount != nil {
		avg := money(*s.AvgTransactionAmount)
		out.AvgTransactionAmount = &avg
	}
	return out
}

type GenerateResponse struct {
	AccountsGenerated     int                   `json:"accountsGenerated"`
	TransactionsGenerated int                   `json:"transactionsGenerated"`
	SampleAccounts        []AccountResponse     `json:"sampleAccounts"`
	SampleTransactions    []TransactionResponse `json:"sampleTransactions"`
}

func newGenerateResponse(r model.GenerateResult) GenerateResponse {
	return GenerateResponse{
		AccountsGenerated:     r.AccountsGenerated,
		TransactionsGenerated: r.TransactionsGenerated,
		SampleAccounts:        NewAccountResponses(r.SampleAccounts),
		SampleTransactions:    NewTransactionResponses(r.SampleTransactions),
	}
}
