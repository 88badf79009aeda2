package cmd

import (
	"fmt"
	"os"

	"ledgersynth/config"
	"ledgersynth/content"
	"ledgersynth/generator"
	"ledgersynth/logger"
	"ledgersynth/service"
	"ledgersynth/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfgFile string

// app is the fully wired ledger shared by the subcommands.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *storage.MemoryStore
	service *service.LedgerService
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		return nil, err
	}

	provider := content.Select(cfg.Content, log)
	gen := generator.New(provider, cfg.Generator)
	store := storage.NewMemoryStore()
	return &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		service: service.NewLedgerService(store, gen, cfg.Generator.Workers, log),
	}, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ledgersynth",
		Short:         "ledgersynth generates and serves synthetic banking ledgers",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(newServeCmd(), newGenerateCmd())
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
