package capture

// Page-side scripts. Each returns a JSON-serializable value; the buffer and
// observer live on window under meetscribe-prefixed names so repeated
// installs stay idempotent.

// installObserverJS watches DOM insertions for caption-like text: ARIA-live
// regions, class-name hints, or textual mention of captions. Fragments are
// length-filtered to plausible utterances so boilerplate is excluded.
const installObserverJS = `(() => {
	if (window.__meetscribeObserver) return true;
	window.__meetscribeBuffer = [];

	const looksLikeCaption = (el) => {
		if (!el.getAttribute) return false;
		const cls = (el.className && el.className.toString ? el.className.toString() : '').toLowerCase();
		const live = (el.getAttribute('aria-live') || '').toLowerCase();
		const text = (el.textContent || '').toLowerCase();
		return live === 'polite' || live === 'assertive' ||
			cls.includes('caption') || cls.includes('subtitle') || cls.includes('transcript') ||
			text.includes('caption') || text.includes('transcript');
	};

	const observer = new MutationObserver((mutations) => {
		for (const m of mutations) {
			for (const node of m.addedNodes) {
				if (node.nodeType !== Node.ELEMENT_NODE) continue;
				if (!looksLikeCaption(node)) continue;
				const text = (node.textContent || '').trim();
				if (text.length < 5 || text.length > 500) continue;
				window.__meetscribeBuffer.push({ text: text, ts: Date.now() });
			}
		}
	});
	observer.observe(document.body, { childList: true, subtree: true });
	window.__meetscribeObserver = observer;
	return true;
})()`

// livenessJS reports whether any in-call UI affordance is still present.
const livenessJS = `(() => {
	const selectors = [
		'[aria-label*="microphone" i]',
		'[aria-label*="mute" i]',
		'[aria-label*="camera" i]',
		'[aria-label*="Leave call" i]',
		'[aria-label*="leave meeting" i]',
		'[aria-label*="end" i]',
	];
	return selectors.some(sel => document.querySelector(sel) !== null);
})()`

const drainBufferJS = `(() => {
	const buf = window.__meetscribeBuffer || [];
	window.__meetscribeBuffer = [];
	return buf;
})()`

const disconnectObserverJS = `(() => {
	if (window.__meetscribeObserver) {
		window.__meetscribeObserver.disconnect();
		window.__meetscribeObserver = null;
	}
	return true;
})()`

// fallbackScanJS is the one-shot scan used when the observer saw nothing:
// grab whatever caption, transcript, or chat text currently sits in the DOM.
const fallbackScanJS = `(() => {
	const selectors = [
		'[class*="caption" i]',
		'[class*="subtitle" i]',
		'[class*="transcript" i]',
		'[class*="chat" i] [class*="message" i]',
		'[aria-live]',
	];
	const texts = [];
	const seen = new Set();
	for (const sel of selectors) {
		for (const el of document.querySelectorAll(sel)) {
			const text = (el.textContent || '').trim();
			if (text.length < 5 || text.length > 500) continue;
			if (seen.has(text)) continue;
			seen.add(text);
			texts.push(text);
		}
	}
	return texts;
})()`
