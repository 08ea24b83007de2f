package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// ChromeLauncher launches sandboxed headless Chrome instances via chromedp.
type ChromeLauncher struct {
	// ExecPath overrides the Chrome binary location; empty means chromedp's
	// default lookup.
	ExecPath string
	// Headless disables the visible browser window. On by default from
	// config; turning it off helps when debugging selector heuristics.
	Headless bool
}

// Launch starts a fresh browser instance with a fixed small viewport and
// returns the page controlling it. The returned page owns the browser
// process; Close tears the whole instance down.
func (l *ChromeLauncher) Launch(ctx context.Context) (Page, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", l.Headless),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("use-fake-ui-for-media-stream", true),
		chromedp.WindowSize(1280, 720),
	)
	if l.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(l.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	pageCtx, pageCancel := chromedp.NewContext(allocCtx)

	// Start the browser process now so launch failures surface here, not on
	// the first navigation.
	if err := chromedp.Run(pageCtx); err != nil {
		pageCancel()
		allocCancel()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	return &chromePage{
		ctx:         pageCtx,
		pageCancel:  pageCancel,
		allocCancel: allocCancel,
	}, nil
}

type chromePage struct {
	ctx         context.Context
	pageCancel  context.CancelFunc
	allocCancel context.CancelFunc
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	runCtx, cancel := mergeDeadline(p.ctx, ctx)
	defer cancel()
	if err := chromedp.Run(runCtx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

func (p *chromePage) Evaluate(ctx context.Context, js string, out any) error {
	runCtx, cancel := mergeDeadline(p.ctx, ctx)
	defer cancel()
	if err := chromedp.Run(runCtx, chromedp.Evaluate(js, out)); err != nil {
		return fmt.Errorf("evaluating script: %w", err)
	}
	return nil
}

func (p *chromePage) Close(_ context.Context) error {
	p.pageCancel()
	p.allocCancel()
	return nil
}

// mergeDeadline applies the caller context's deadline and cancellation to
// the browser context, which chromedp requires as the Run target.
func mergeDeadline(browserCtx, callerCtx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := callerCtx.Deadline(); ok {
		return context.WithDeadline(browserCtx, deadline)
	}
	ctx, cancel := context.WithCancel(browserCtx)
	stop := context.AfterFunc(callerCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
