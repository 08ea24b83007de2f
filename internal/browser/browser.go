// Package browser abstracts the headless-browser automation host. The
// session controller, platform adapters, and capture engine depend only on
// the Page interface; the chromedp driver is the production implementation.
package browser

import "context"

// Page is one isolated browser page owned by a single automation run.
// Evaluate runs a JavaScript expression in page context and decodes its
// JSON-serializable result into out.
type Page interface {
	Navigate(ctx context.Context, url string) error
	Evaluate(ctx context.Context, js string, out any) error
	Close(ctx context.Context) error
}

// Launcher creates Pages. Each Launch call produces an isolated browser
// instance that must be Closed on every exit path.
type Launcher interface {
	Launch(ctx context.Context) (Page, error)
}
