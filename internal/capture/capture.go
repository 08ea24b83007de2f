// Package capture polls a meeting page for caption-like text. A page-side
// MutationObserver accumulates fragments into a buffer; the engine drains
// the buffer on each tick while watching for in-call UI affordances whose
// disappearance means the meeting ended.
package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"meetscribe/internal/browser"
)

// Fragment is one caption-like text observation with its page-side
// observation time in epoch milliseconds.
type Fragment struct {
	Text      string `json:"text"`
	Timestamp int64  `json:"ts"`
}

const (
	// DefaultMaxDuration bounds the capture window. Raise it via config for
	// longer meetings; the loop also exits early when liveness is lost.
	DefaultMaxDuration = 60 * time.Second
	// DefaultPollInterval is the sleep between buffer drains.
	DefaultPollInterval = 5 * time.Second
)

// Engine runs the capture loop for one meeting page.
type Engine struct {
	MaxDuration  time.Duration
	PollInterval time.Duration

	logger *slog.Logger
}

// New creates an Engine, substituting defaults for non-positive durations.
func New(maxDuration, pollInterval time.Duration) *Engine {
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Engine{
		MaxDuration:  maxDuration,
		PollInterval: pollInterval,
		logger:       slog.Default(),
	}
}

// Run installs the caption observer and polls until the capture window
// closes, the meeting ends, or ctx is cancelled. A single iteration's
// failure is logged and retried on the next tick, never propagated. If the
// observer produced nothing, a one-shot DOM scan is attempted as a fallback
// source. The returned fragments may be empty; downstream synthesis handles
// that case.
func (e *Engine) Run(ctx context.Context, page browser.Page, onProgress func(string)) ([]Fragment, error) {
	var installed bool
	if err := page.Evaluate(ctx, installObserverJS, &installed); err != nil {
		e.logger.Warn("caption observer install failed", "error", err)
	}

	var fragments []Fragment
	start := time.Now()

	for time.Since(start) < e.MaxDuration {
		alive, err := e.tick(ctx, page, &fragments)
		if err != nil {
			e.logger.Warn("capture iteration failed", "error", err)
		} else if !alive {
			e.logger.Info("meeting ended, stopping capture", "elapsed", time.Since(start).Round(time.Second))
			break
		}

		if onProgress != nil {
			onProgress(fmt.Sprintf("Capturing captions: %ds elapsed, %d fragments",
				int(time.Since(start).Seconds()), len(fragments)))
		}

		select {
		case <-ctx.Done():
			e.disconnect(page)
			return fragments, ctx.Err()
		case <-time.After(e.PollInterval):
		}
	}

	e.disconnect(page)

	if len(fragments) == 0 {
		fragments = e.fallbackScan(ctx, page)
	}

	return fragments, nil
}

// tick performs one liveness check plus buffer drain. It reports whether
// the meeting still looks live.
func (e *Engine) tick(ctx context.Context, page browser.Page, fragments *[]Fragment) (bool, error) {
	var alive bool
	if err := page.Evaluate(ctx, livenessJS, &alive); err != nil {
		return true, fmt.Errorf("liveness check: %w", err)
	}
	if !alive {
		return false, nil
	}

	var drained []Fragment
	if err := page.Evaluate(ctx, drainBufferJS, &drained); err != nil {
		return true, fmt.Errorf("draining buffer: %w", err)
	}
	*fragments = append(*fragments, drained...)
	return true, nil
}

func (e *Engine) disconnect(page browser.Page) {
	// Detached pages make this fail routinely when the meeting has already
	// closed; that is fine.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var ok bool
	if err := page.Evaluate(ctx, disconnectObserverJS, &ok); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		e.logger.Debug("observer disconnect failed", "error", err)
	}
}

// fallbackScan is the secondary one-shot source: any caption, transcript,
// or chat element text currently in the DOM.
func (e *Engine) fallbackScan(ctx context.Context, page browser.Page) []Fragment {
	var texts []string
	if err := page.Evaluate(ctx, fallbackScanJS, &texts); err != nil {
		e.logger.Warn("fallback scan failed", "error", err)
		return nil
	}
	now := time.Now().UnixMilli()
	fragments := make([]Fragment, 0, len(texts))
	for _, t := range texts {
		fragments = append(fragments, Fragment{Text: t, Timestamp: now})
	}
	return fragments
}

// Texts returns just the fragment texts in observation order.
func Texts(fragments []Fragment) []string {
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = f.Text
	}
	return out
}
