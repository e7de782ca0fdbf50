package infer

import (
	"context"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"teachreach/internal/record"
	"teachreach/internal/schema"
)

// sourceIDKeys are the input attributes that carry the upstream identifier.
var sourceIDKeys = []string{"ID", "id"}

// Gateway resolves inferred fields for one record at a time.
type Gateway struct {
	provider Provider
	tables   *schema.Tables
	timeout  time.Duration
	logger   *zap.Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithTimeout bounds each provider call whose context has no deadline.
func WithTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithLogger sets the logger used for degraded calls.
func WithLogger(l *zap.Logger) GatewayOption {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGateway creates a gateway. A nil provider makes every field resolve
// from the fallback table.
func NewGateway(provider Provider, tables *schema.Tables, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		provider: provider,
		tables:   tables,
		timeout:  DefaultTimeout,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Live reports whether the gateway calls a provider.
func (g *Gateway) Live() bool {
	return g.provider != nil
}

// Infer returns a value for every requested field. The provider is called
// at most once; failures degrade to fallback values.
func (g *Gateway) Infer(ctx context.Context, fields []string, rec *record.Teacher) map[string]any {
	out := make(map[string]any, len(fields))
	ask := make([]string, 0, len(fields))

	for _, f := range fields {
		if _, done := out[f]; done {
			continue
		}

		// the upstream identifier is copied, never generated
		if g.tables.Canonical(f) == schema.SourceID {
			out[f] = g.sourceID(rec, f)
			continue
		}

		out[f] = nil
		ask = append(ask, f)
	}

	if len(ask) == 0 {
		return out
	}

	answer := g.ask(ctx, ask, rec)

	for _, f := range ask {
		if v, ok := normalizeValue(g.tables, f, answer[f]); ok {
			out[f] = v
			continue
		}

		if answer != nil {
			g.logger.Debug("field missing from inference answer, using fallback", zap.String("field", f))
		}

		out[f] = g.tables.Fallback(f)
	}

	return out
}

// ask performs the provider call. A nil map means every field falls back.
func (g *Gateway) ask(ctx context.Context, fields []string, rec *record.Teacher) map[string]any {
	if g.provider == nil {
		return nil
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)

		defer cancel()
	}

	start := time.Now()

	raw, err := g.provider.Complete(ctx, SystemPrompt, BuildPrompt(g.tables, fields, Summarize(rec)))
	if err != nil {
		g.logger.Warn("inference call failed, using fallback values",
			zap.Strings("fields", fields),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))

		return nil
	}

	answer, err := decodeAnswer(raw)
	if err != nil {
		g.logger.Warn("inference answer unreadable, using fallback values",
			zap.Strings("fields", fields),
			zap.Int("answer_len", len(raw)),
			zap.Error(err))

		return nil
	}

	if ce := g.logger.Check(zap.DebugLevel, "inference call completed"); ce != nil {
		ce.Write(
			zap.Strings("fields", fields),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("answer", spew.Sdump(answer)))
	}

	return answer
}

func (g *Gateway) sourceID(rec *record.Teacher, field string) any {
	for _, k := range sourceIDKeys {
		if v := strings.TrimSpace(rec.Value(k)); v != "" {
			return v
		}
	}

	return g.tables.Fallback(field)
}
