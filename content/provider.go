// Package content supplies the human-readable parts of synthetic data:
// owner identities and transaction descriptions.
package content

import (
	"context"

	"ledgersynth/config"
	"ledgersynth/model"

	"go.uber.org/zap"
)

// Provider produces identities and transaction descriptions.
// Implementations never return an error: a failing backend degrades to
// table-driven output internally.
type Provider interface {
	Identity(ctx context.Context) model.Identity
	Description(ctx context.Context, category string, typ model.TransactionType) string
	// Name identifies the implementation, "ai" or "fallback".
	Name() string
	// Paced reports whether bulk generation must slow down between calls.
	Paced() bool
}

// Select picks the provider for the lifetime of the process. The AI-backed
// provider is used only when a credential is configured and the backend client
// can be built; otherwise the fallback is returned.
func Select(cfg config.ContentConfig, log *zap.Logger) Provider {
	if cfg.APIKey == "" {
		log.Info("no content API key configured, using fallback content provider")
		return NewFallback()
	}

	client, err := NewGeminiClient(context.Background(), cfg.APIKey, cfg.Model, cfg.Endpoint)
	if err != nil {
		log.Warn("content backend unavailable, using fallback content provider", zap.Error(err))
		return NewFallback()
	}
	p, err := NewAIProvider(client, cfg.Timeout, log)
	if err != nil {
		log.Warn("content backend unavailable, using fallback content provider", zap.Error(err))
		return NewFallback()
	}

	log.Info("using AI content provider", zap.String("model", cfg.Model))
	return p
}
