package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ritam/preptrail/internal/store"
)

// ErrNoCredentials indicates no provider API key is configured anywhere.
// Callers use this to report that generation is unavailable rather than
// treating it as a hard failure.
var ErrNoCredentials = errors.New("no LLM API key configured")

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a provider from PREPTRAIL_* variables, falling
// back to probing standard API key variables when none are set. Returns
// ErrNoCredentials when no key is found by either path.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() == nil && hasKey(cfg) {
		return NewProvider(ctx, cfg, eventRepo)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, ErrNoCredentials
	}
	return NewProvider(ctx, discovered, eventRepo)
}

// hasKey reports whether the selected provider actually has a key, so an
// all-defaults Config (provider "anthropic", no key) falls through to
// discovery instead of failing at request time.
func hasKey(cfg Config) bool {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	case "mock":
		return true
	}
	return false
}
