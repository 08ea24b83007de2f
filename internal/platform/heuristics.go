package platform

import (
	"encoding/json"
	"fmt"
)

// The snippets below are evaluated in page context and always return a
// boolean so callers can tell a miss from a hit. Selector and hint lists
// are injected as JSON literals.

func clickBySelectorsJS(selectors []string) string {
	return fmt.Sprintf(`(() => {
		const selectors = %s;
		for (const sel of selectors) {
			const el = document.querySelector(sel);
			if (el) { el.click(); return true; }
		}
		return false;
	})()`, mustJSON(selectors))
}

// clickByTextJS scans interactive elements for a label or text containing
// any of the hints (case-insensitive) and clicks the first match.
func clickByTextJS(hints []string) string {
	return fmt.Sprintf(`(() => {
		const hints = %s;
		const els = document.querySelectorAll('button, [role="button"], a, [tabindex]');
		for (const el of els) {
			const label = ((el.getAttribute('aria-label') || '') + ' ' + (el.textContent || '')).toLowerCase();
			if (hints.some(h => label.includes(h))) { el.click(); return true; }
		}
		return false;
	})()`, mustJSON(hints))
}

// fillNameFieldJS sets the display name on any visible name input and
// dispatches input/change events so the page's reactive bindings observe
// the new value.
func fillNameFieldJS(name string) string {
	return fmt.Sprintf(`(() => {
		const inputs = document.querySelectorAll('input[type="text"], input:not([type])');
		for (const el of inputs) {
			const label = ((el.getAttribute('aria-label') || '') + ' ' + (el.getAttribute('placeholder') || '')).toLowerCase();
			if (!label.includes('name')) continue;
			el.value = %s;
			el.dispatchEvent(new Event('input', { bubbles: true }));
			el.dispatchEvent(new Event('change', { bubbles: true }));
			return true;
		}
		return false;
	})()`, mustJSON(name))
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Only reachable with non-serializable input, which the callers
		// never pass.
		panic(err)
	}
	return string(b)
}
