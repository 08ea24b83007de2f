package platform

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meetscribe/internal/meeting"
)

type fakePage struct {
	evaluateFn func(js string, out any) error
	scripts    []string
}

func (p *fakePage) Navigate(ctx context.Context, url string) error { return nil }

func (p *fakePage) Evaluate(ctx context.Context, js string, out any) error {
	p.scripts = append(p.scripts, js)
	if p.evaluateFn != nil {
		return p.evaluateFn(js, out)
	}
	if b, ok := out.(*bool); ok {
		*b = false
	}
	return nil
}

func (p *fakePage) Close(ctx context.Context) error { return nil }

func TestFor(t *testing.T) {
	zoom, err := For(meeting.PlatformZoom)
	if err != nil || zoom.Name() != "zoom" {
		t.Errorf("For(zoom) = %v, %v", zoom, err)
	}
	meet, err := For(meeting.PlatformGoogleMeet)
	if err != nil || meet.Name() != "google-meet" {
		t.Errorf("For(google-meet) = %v, %v", meet, err)
	}
	if _, err := For(meeting.Platform("teams")); err == nil {
		t.Error("For(teams) should fail")
	}
}

func TestJoinToleratesMissingControls(t *testing.T) {
	// Every evaluation succeeds but finds nothing to click; the join must
	// still complete without error.
	for _, p := range []meeting.Platform{meeting.PlatformZoom, meeting.PlatformGoogleMeet} {
		adapter, err := For(p)
		if err != nil {
			t.Fatalf("For(%s): %v", p, err)
		}
		page := &fakePage{}
		if err := adapter.Join(context.Background(), page, "Notetaker"); err != nil {
			t.Errorf("%s Join with bare page: %v", p, err)
		}
		if len(page.scripts) == 0 {
			t.Errorf("%s Join evaluated nothing", p)
		}
	}
}

func TestJoinPropagatesEvaluationError(t *testing.T) {
	adapter, _ := For(meeting.PlatformZoom)
	page := &fakePage{evaluateFn: func(js string, out any) error {
		return errors.New("target closed")
	}}
	if err := adapter.Join(context.Background(), page, "Notetaker"); err == nil {
		t.Error("Join should fail when the page cannot be evaluated")
	}
}

func TestJoinRetriesClickAfterNameFill(t *testing.T) {
	var clicks int
	page := &fakePage{}
	page.evaluateFn = func(js string, out any) error {
		b, ok := out.(*bool)
		if !ok {
			return nil
		}
		switch {
		case strings.Contains(js, "input"):
			*b = true // name field filled
		case strings.Contains(js, "textContent"):
			clicks++
			*b = false
		default:
			*b = false
		}
		return nil
	}

	adapter, _ := For(meeting.PlatformGoogleMeet)
	if err := adapter.Join(context.Background(), page, "Notetaker"); err != nil {
		t.Fatalf("Join: %v", err)
	}
	// Initial text scan, retry after the name fill, and the caption toggle.
	if clicks < 3 {
		t.Errorf("text-scan evaluations = %d, want at least 3", clicks)
	}
}

func TestLeaveNeverFails(t *testing.T) {
	for _, p := range []meeting.Platform{meeting.PlatformZoom, meeting.PlatformGoogleMeet} {
		adapter, err := For(p)
		if err != nil {
			t.Fatalf("For(%s): %v", p, err)
		}
		page := &fakePage{evaluateFn: func(js string, out any) error {
			return errors.New("page already detached")
		}}
		if err := adapter.Leave(context.Background(), page); err != nil {
			t.Errorf("%s Leave returned %v, want nil", p, err)
		}
	}
}
