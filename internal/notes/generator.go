// Package notes turns a transcript into structured markdown meeting notes.
// Generation is two-tier with a deterministic fallback: the primary hosted
// provider, then the secondary, then a templated generator that depends on
// nothing external. The pipeline never stalls for lack of a credential.
package notes

import (
	"context"
	"log/slog"
)

// Provider is a hosted text-generation service producing markdown notes.
type Provider interface {
	GenerateNotes(ctx context.Context, transcript string) (string, error)
}

// Generator applies the provider chain. Either provider may be nil when its
// credential is not configured.
type Generator struct {
	primary   Provider
	secondary Provider
	logger    *slog.Logger
}

// NewGenerator builds a Generator from the configured API keys. Empty keys
// leave the corresponding provider unset.
func NewGenerator(anthropicKey, groqKey string) *Generator {
	g := &Generator{logger: slog.Default()}
	if anthropicKey != "" {
		g.primary = NewAnthropicClient(anthropicKey)
	}
	if groqKey != "" {
		g.secondary = NewGroqClient(groqKey)
	}
	return g
}

// NewGeneratorWithProviders wires explicit providers; used by tests and by
// callers that need custom base URLs.
func NewGeneratorWithProviders(primary, secondary Provider) *Generator {
	return &Generator{primary: primary, secondary: secondary, logger: slog.Default()}
}

// Generate produces markdown notes for the transcript. It never fails and
// never returns empty output: provider errors fall through to the next tier
// and finally to the deterministic fallback.
func (g *Generator) Generate(ctx context.Context, transcript string) string {
	if g.primary != nil {
		out, err := g.primary.GenerateNotes(ctx, transcript)
		if err == nil {
			return out
		}
		g.logger.Warn("primary notes provider failed", "error", err)
	}
	if g.secondary != nil {
		out, err := g.secondary.GenerateNotes(ctx, transcript)
		if err == nil {
			return out
		}
		g.logger.Warn("secondary notes provider failed", "error", err)
	}
	return FallbackNotes(transcript)
}
