package infer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// ErrNoCredential is returned when a live provider is requested without an API key.
var ErrNoCredential = errors.New("no API credential configured")

// ErrUnknownProvider is returned for a provider name nobody registered.
var ErrUnknownProvider = errors.New("unknown inference provider")

// Provider sends one prompt to a text-generation service and returns the raw answer.
type Provider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// ProviderConfig carries the settings shared by all providers.
type ProviderConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Factory builds a provider from its configuration.
type Factory func(ctx context.Context, cfg ProviderConfig) (Provider, error)

// NoProvider is the name under which no live provider is used.
const NoProvider = "none"

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a provider factory available under name.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[strings.ToLower(name)] = f
}

// Providers returns the registered provider names, sorted.
func Providers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry)+1)
	for n := range registry {
		names = append(names, n)
	}

	names = append(names, NoProvider)
	slices.Sort(names)

	return names
}

// NewProvider builds the provider registered under name. The name "none"
// and an empty name yield a nil provider, which makes a Gateway use
// fallback values only.
func NewProvider(ctx context.Context, name string, cfg ProviderConfig) (Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == NoProvider {
		return nil, nil
	}

	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}

	p, err := f(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", name, err)
	}

	return p, nil
}

func init() {
	Register("openai", func(_ context.Context, cfg ProviderConfig) (Provider, error) {
		return NewOpenAIProvider(cfg)
	})
	Register("gemini", func(ctx context.Context, cfg ProviderConfig) (Provider, error) {
		return NewGeminiProvider(ctx, cfg)
	})
}
