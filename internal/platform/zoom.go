package platform

import (
	"context"
	"log/slog"

	"meetscribe/internal/browser"
)

// Ordered: explicit ARIA labels for the web client's join buttons first,
// generic text scan second.
var zoomJoinSelectors = []string{
	`button[aria-label="Join Audio by Computer"]`,
	`button[aria-label="Join Computer Audio"]`,
	`button[aria-label="Join"]`,
	`#joinBtn`,
}

var zoomJoinHints = []string{"join audio", "join from your browser", "join"}

var zoomLeaveHints = []string{"leave", "end"}

type zoomAdapter struct{}

func (z *zoomAdapter) Name() string { return "zoom" }

func (z *zoomAdapter) Join(ctx context.Context, page browser.Page, displayName string) error {
	return joinFlow(ctx, page, displayName, zoomJoinSelectors, zoomJoinHints)
}

// Leave clicks whatever leave/end control the web client exposes. Failures
// are logged and swallowed; a stuck leave never fails the run.
func (z *zoomAdapter) Leave(ctx context.Context, page browser.Page) error {
	clicked, err := evalBool(ctx, page, clickByTextJS(zoomLeaveHints))
	if err != nil {
		slog.Warn("zoom leave failed", "error", err)
		return nil
	}
	if !clicked {
		slog.Debug("zoom leave control not found")
	}
	return nil
}
