// ABOUTME: Shared wiring for commands that need the full ranking engine
// ABOUTME: Loads config, catalog and OpenAI client, then embeds the catalog
package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/eventscout/eventscout/internal/catalog"
	"github.com/eventscout/eventscout/internal/config"
	"github.com/eventscout/eventscout/internal/llm"
	"github.com/eventscout/eventscout/internal/recommend"
)

// newLogger builds a zap logger honoring the global verbosity flags
func newLogger() (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildEngine loads everything a query needs: config, catalog, the OpenAI
// client, and the engine with its startup embedding pass.
func buildEngine(ctx context.Context, logger *zap.Logger) (*recommend.Engine, *config.Config, error) {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.OpenAIKey == "" {
		return nil, nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog %q: %w", cfg.CatalogPath, err)
	}

	client, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	engine, err := recommend.NewEngine(ctx, cat, client, client, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing engine: %w", err)
	}

	return engine, cfg, nil
}
