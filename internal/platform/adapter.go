// Package platform holds the provider-specific DOM interaction for joining
// and leaving meetings. Provider pages are unversioned and uncontracted, so
// every sub-step is best-effort: a missing control is a missed opportunity,
// not an error. Only a failed page evaluation propagates as join failure.
package platform

import (
	"context"
	"fmt"
	"log/slog"

	"meetscribe/internal/browser"
	"meetscribe/internal/meeting"
)

// Adapter is the per-provider join/leave capability.
type Adapter interface {
	Name() string
	Join(ctx context.Context, page browser.Page, displayName string) error
	Leave(ctx context.Context, page browser.Page) error
}

// For returns the adapter for the given platform.
func For(p meeting.Platform) (Adapter, error) {
	switch p {
	case meeting.PlatformZoom:
		return &zoomAdapter{}, nil
	case meeting.PlatformGoogleMeet:
		return &meetAdapter{}, nil
	default:
		return nil, fmt.Errorf("unsupported platform %q", p)
	}
}

// captionHints match any interactive element that toggles live captions.
// Shared across providers; both label subtitles with one of these.
var captionHints = []string{"caption", "subtitle", "cc"}

// joinFlow runs the common join sequence against selector data supplied by
// the provider adapter: explicit selectors first, then a generic scan of
// interactive elements for join-ish text, then the name field, then
// captions.
func joinFlow(ctx context.Context, page browser.Page, displayName string, joinSelectors []string, joinHints []string) error {
	clicked, err := evalBool(ctx, page, clickBySelectorsJS(joinSelectors))
	if err != nil {
		return fmt.Errorf("join control lookup: %w", err)
	}
	if !clicked {
		clicked, err = evalBool(ctx, page, clickByTextJS(joinHints))
		if err != nil {
			return fmt.Errorf("join text scan: %w", err)
		}
	}
	if !clicked {
		slog.Debug("no join control found, continuing")
	}

	if displayName != "" {
		filled, err := evalBool(ctx, page, fillNameFieldJS(displayName))
		if err != nil {
			return fmt.Errorf("name field: %w", err)
		}
		if filled {
			// Some pages gate the join button behind the name field; retry the
			// click once after filling.
			if _, err := evalBool(ctx, page, clickByTextJS(joinHints)); err != nil {
				return fmt.Errorf("join retry after name: %w", err)
			}
		}
	}

	enabled, err := evalBool(ctx, page, clickByTextJS(captionHints))
	if err != nil {
		return fmt.Errorf("caption toggle: %w", err)
	}
	if !enabled {
		slog.Debug("caption toggle not found")
	}

	return nil
}

func evalBool(ctx context.Context, page browser.Page, js string) (bool, error) {
	var out bool
	if err := page.Evaluate(ctx, js, &out); err != nil {
		return false, err
	}
	return out, nil
}
