// Package completion wraps the external text-generation providers and the
// recovery of structured JSON results from their free-text output.
//
// Every capability endpoint funnels through the same pipeline: build a
// prompt, call Complete once, run ExtractJSON over the raw text, check the
// capability's required top-level keys, and fall back to a deterministic
// schema-conformant payload when anything goes wrong. Raw model output and
// parse errors never travel past this package's callers.
package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foundrbox/core/internal/config"
)

// Client is the single-call completion contract the capability services
// depend on. Tests substitute counting fakes for it.
type Client interface {
	Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

var errNoProvider = errors.New("no enabled AI provider configured")

// New builds a provider-backed client for one capability. The assignment may
// pin a provider and override its model; otherwise the first enabled provider
// wins.
func New(cfg config.AIConfig, assignment *config.AIModelAssignment) (Client, error) {
	provider := selectProvider(cfg, assignment)
	if provider == nil {
		return nil, errNoProvider
	}
	return newProviderClient(provider, cfg), nil
}

func selectProvider(cfg config.AIConfig, assignment *config.AIModelAssignment) *config.AIProvider {
	var providerID, overrideModel string
	if assignment != nil {
		providerID = strings.TrimSpace(assignment.ProviderID)
		overrideModel = strings.TrimSpace(assignment.Model)
	}

	pick := func(provider config.AIProvider) *config.AIProvider {
		selected := provider
		if overrideModel != "" {
			selected.DefaultModel = overrideModel
		}
		return &selected
	}

	if providerID != "" {
		for _, provider := range cfg.Providers {
			if !provider.Enabled {
				continue
			}
			if strings.TrimSpace(provider.ID) != providerID {
				continue
			}
			return pick(provider)
		}
	}

	for _, provider := range cfg.Providers {
		if !provider.Enabled {
			continue
		}
		return pick(provider)
	}
	return nil
}

// ParseResult recovers a typed result from raw completion text: extract a
// JSON candidate, verify the required top-level keys are present, then decode
// into out. Any failure is total; the caller substitutes its fallback.
func ParseResult(text string, requiredKeys []string, out interface{}) error {
	candidate, ok := ExtractJSON(text)
	if !ok {
		return ErrNoJSON
	}
	obj, err := decodeObject(candidate)
	if err != nil {
		return err
	}
	for _, key := range requiredKeys {
		if _, present := obj[key]; !present {
			return fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
	}
	return unmarshalJSON([]byte(candidate), out)
}
