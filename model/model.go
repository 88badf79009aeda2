// Package model defines the data structures used by the synthetic ledger.
// Money is held in decimal.Decimal throughout.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the single currency code every synthetic account is held in.
const Currency = "INR"

// AccountType is the product kind of an account.
type AccountType string

const (
	Savings AccountType = "Savings"
	Current AccountType = "Current"
	Salary  AccountType = "Salary"
)

// AccountTypes lists every account type a generated account can have.
var AccountTypes = []AccountType{Savings, Current, Salary}

// AccountStatus is the lifecycle state of an account. Only Active is modeled.
type AccountStatus string

const StatusActive AccountStatus = "Active"

// TransactionType is the direction of a transaction relative to its account.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// IsValid reports whether t is credit or debit.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	Completed TransactionStatus = "completed"
	Pending   TransactionStatus = "pending"
)

// IsValid reports whether s is completed or pending.
func (s TransactionStatus) IsValid() bool {
	return s == Completed || s == Pending
}

// Address is the postal address of an account owner.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// Identity is the synthetic person owning an account.
type Identity struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// Account represents a synthetic bank account.
type Account struct {
	ID               string          `json:"id"`
	AccountNumber    string          `json:"accountNumber"`
	BankName         string          `json:"bankName"`
	BankCode         string          `json:"bankCode"`
	BranchCode       string          `json:"branchCode"`
	IFSCCode         string          `json:"ifscCode"`
	AccountType      AccountType     `json:"accountType"`
	Owner            Identity        `json:"owner"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	// Hold is the synthetic amount withheld from the available balance.
	Hold        decimal.Decimal `json:"-"`
	Currency    string          `json:"currency"`
	Status      AccountStatus   `json:"status"`
	OpenDate    time.Time       `json:"openDate"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// SetBalance updates the balance and everything derived from it.
func (a *Account) SetBalance(balance decimal.Decimal, at time.Time) {
	a.Balance = balance
	a.AvailableBalance = balance.Sub(a.Hold)
	a.LastUpdated = at
}

// Transaction represents a single ledger entry against one account.
type Transaction struct {
	ID           string            `json:"id"`
	AccountID    string            `json:"accountId"`
	Type         TransactionType   `json:"type"`
	Amount       decimal.Decimal   `json:"amount"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Date         time.Time         `json:"date"`
	Status       TransactionStatus `json:"status"`
	Reference    string            `json:"reference"`
	BalanceAfter decimal.Decimal   `json:"balanceAfter"`
	// Sequence is the causal position of the transaction in the ledger. It is assigned
	// when the transaction is appended and increases strictly in application order.
	Sequence uint64 `json:"sequence"`
}

// Signed returns the amount as it affects the balance: positive for credits,
// negative for debits.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Summary aggregates the transactions of one account.
type Summary struct {
	AccountID        string          `json:"accountId"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	TransactionCount int             `json:"transactionCount"`
	Last30DaysCount  int             `json:"last30DaysCount"`
	// AvgTransactionAmount is nil when the account has no transactions.
	AvgTransactionAmount *decimal.Decimal `json:"avgTransactionAmount"`
}

// CreateTransactionRequest defines the expected JSON body for creating a transaction.
type CreateTransactionRequest struct {
	Type        TransactionType   `json:"type"`
	Amount      *decimal.Decimal  `json:"amount"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	Status      TransactionStatus `json:"status,omitempty"`
}

// Size limits of one bulk generation run.
const (
	MaxAccountCount           = 50
	MaxTransactionsPerAccount = 500
)

// GenerateRequest defines the expected JSON body for bulk generation.
type GenerateRequest struct {
	AccountCount           int `json:"accountCount"`
	TransactionsPerAccount int `json:"transactionsPerAccount"`
}

// GenerateResult reports what a bulk generation run appended to the ledger.
type GenerateResult struct {
	AccountsGenerated     int           `json:"accountsGenerated"`
	TransactionsGenerated int           `json:"transactionsGenerated"`
	SampleAccounts        []Account     `json:"sampleAccounts"`
	SampleTransactions    []Transaction `json:"sampleTransactions"`
}

// Balance is the balance view of an account.
type Balance struct {
	AccountID        string          `json:"accountId"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	Currency         string          `json:"currency"`
	LastUpdated      time.Time       `json:"lastUpdated"`
}
