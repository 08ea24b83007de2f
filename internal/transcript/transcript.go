// Package transcript reconstructs a speaker-attributed transcript from the
// noisy caption fragments the capture engine observed. Per-caption
// timestamps are not reliably observable, so the synthesizer advances a
// virtual clock; exact timestamp and speaker assignment is approximate by
// design and callers must only rely on structure.
package transcript

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"meetscribe/internal/meeting"
)

// minFragmentLen drops fragments too short to be an utterance.
const minFragmentLen = 10

// fragmentSpacing is the virtual-clock advance per fragment. Heuristic; no
// ground truth exists.
const fragmentSpacing = 30 * time.Second

// placeholderSpeakers are cycled through for fragments that carry no
// speaker of their own.
var placeholderSpeakers = []string{"Speaker 1", "Speaker 2", "Speaker 3"}

// speakerRe matches fragments that already carry a "Name: text" shape.
var speakerRe = regexp.MustCompile(`^([A-Za-z][A-Za-z .'-]{0,40}):\s+(.+)$`)

// Synthesize turns raw caption fragments into a line-oriented transcript:
// a header naming the platform and start time, then one "[HH:MM] Speaker:
// utterance" line per unique fragment. An empty fragment set falls back to
// the canned transcript so the pipeline always has something to summarize.
func Synthesize(fragments []string, platform meeting.Platform, meetingID string, start time.Time) string {
	unique := dedupe(fragments)
	if len(unique) == 0 {
		return Fallback(platform, meetingID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s meeting (%s)\n", platform.Label(), meetingID)
	fmt.Fprintf(&b, "Meeting started at %s\n\n", start.Format("3:04 PM"))

	clock := start
	for i, frag := range unique {
		speaker := placeholderSpeakers[i%len(placeholderSpeakers)]
		text := frag
		if m := speakerRe.FindStringSubmatch(frag); m != nil {
			speaker = m[1]
			text = m[2]
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", clock.Format("15:04"), speaker, text)
		clock = clock.Add(fragmentSpacing)
	}

	return b.String()
}

// dedupe keeps the first occurrence of each fragment, dropping anything
// under the minimum utterance length.
func dedupe(fragments []string) []string {
	seen := make(map[string]struct{}, len(fragments))
	var out []string
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if len(f) < minFragmentLen {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
