package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"ledgersynth/handler"
	"ledgersynth/model"
	"ledgersynth/query"

	"github.com/spf13/cobra"
)

// dataset is the document printed by the generate command.
type dataset struct {
	Accounts     []handler.AccountResponse     `json:"accounts"`
	Transactions []handler.TransactionResponse `json:"transactions"`
}

func newGenerateCmd() *cobra.Command {
	var accounts, perAccount int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic ledger and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync() //nolint:errcheck

			if _, err := a.service.Generate(cmd.Context(), model.GenerateRequest{
				AccountCount:           accounts,
				TransactionsPerAccount: perAccount,
			}); err != nil {
				return err
			}
			return writeDataset(cmd.Context(), a, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&accounts, "accounts", "a", 5, "number of accounts to generate")
	cmd.Flags().IntVarP(&perAccount, "transactions", "t", 20, "transactions per account")
	return cmd
}

// writeDataset checks every account replays to its balance, then prints the
// ledger.
func writeDataset(ctx context.Context, a *app, w io.Writer) error {
	accounts, err := a.store.ListAccounts(ctx)
	if err != nil {
		return err
	}
	txns, err := a.store.ListTransactions(ctx)
	if err != nil {
		return err
	}
	for _, acc := range accounts {
		if err := query.Verify(acc, txns); err != nil {
			return fmt.Errorf("generated ledger is inconsistent: %w", err)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dataset{
		Accounts:     handler.NewAccountResponses(accounts),
		Transactions: handler.NewTransactionResponses(txns),
	})
}
