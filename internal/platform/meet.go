package platform

import (
	"context"
	"log/slog"

	"meetscribe/internal/browser"
)

var meetJoinSelectors = []string{
	`button[aria-label="Join now"]`,
	`button[aria-label="Ask to join"]`,
	`button[jsname="Qx7uuf"]`,
}

var meetJoinHints = []string{"join now", "ask to join", "join"}

var meetLeaveSelectors = []string{
	`button[aria-label="Leave call"]`,
	`button[aria-label*="Leave call"]`,
}

type meetAdapter struct{}

func (m *meetAdapter) Name() string { return "google-meet" }

func (m *meetAdapter) Join(ctx context.Context, page browser.Page, displayName string) error {
	return joinFlow(ctx, page, displayName, meetJoinSelectors, meetJoinHints)
}

// Leave uses Meet's stable leave-call ARIA label, falling back to a text
// scan. Failures are logged and swallowed.
func (m *meetAdapter) Leave(ctx context.Context, page browser.Page) error {
	clicked, err := evalBool(ctx, page, clickBySelectorsJS(meetLeaveSelectors))
	if err != nil {
		slog.Warn("meet leave failed", "error", err)
		return nil
	}
	if !clicked {
		if _, err := evalBool(ctx, page, clickByTextJS([]string{"leave call"})); err != nil {
			slog.Warn("meet leave text scan failed", "error", err)
		}
	}
	return nil
}
