package notes

import (
	"fmt"
	"regexp"
	"strings"
)

// transcriptLineRe matches the synthesizer's "[HH:MM] Speaker: text" lines.
var transcriptLineRe = regexp.MustCompile(`^\[(\d{1,2}:\d{2})\]\s+([^:]+):\s+(.+)$`)

// dueRe pulls a date-ish phrase out of an utterance for action items.
var dueRe = regexp.MustCompile(`(?i)\b(?:by|due|until)\s+([A-Z][a-z]+ \d{1,2}(?:st|nd|rd|th)?|\d{1,2}/\d{1,2})`)

var decisionHints = []string{"approved", "decided", "agreed", "let's plan", "we will", "sign off"}

var actionHints = []string{"you'll own", "you own", "i'll ", "will own", "follow up", "need to hire"}

type transcriptEntry struct {
	timestamp string
	speaker   string
	text      string
}

// FallbackNotes is the deterministic notes generator used when no provider
// credential is configured or every provider call failed. It derives its
// bullets from the transcript's own timestamped lines and always emits the
// four mandated sections.
func FallbackNotes(transcript string) string {
	entries := parseTranscript(transcript)

	var b strings.Builder
	b.WriteString("# Meeting Notes\n\n")
	writeTLDR(&b, entries)
	writeHighlights(&b, entries)
	writeDecisions(&b, entries)
	writeActionItems(&b, entries)
	b.WriteString("---\n\n*Notes generated offline from captured captions.*\n")
	return b.String()
}

func parseTranscript(transcript string) []transcriptEntry {
	var entries []transcriptEntry
	for _, line := range strings.Split(transcript, "\n") {
		m := transcriptLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		entries = append(entries, transcriptEntry{
			timestamp: m[1],
			speaker:   strings.TrimSpace(m[2]),
			text:      strings.TrimSpace(m[3]),
		})
	}
	return entries
}

func writeTLDR(b *strings.Builder, entries []transcriptEntry) {
	speakers := make(map[string]struct{})
	for _, e := range entries {
		speakers[e.speaker] = struct{}{}
	}
	if len(entries) == 0 {
		b.WriteString("**TL;DR:** No caption content was captured for this meeting.\n\n")
		return
	}
	fmt.Fprintf(b, "**TL;DR:** Meeting covered %d discussion points across %d speakers.\n\n",
		len(entries), len(speakers))
}

func writeHighlights(b *strings.Builder, entries []transcriptEntry) {
	b.WriteString("## Discussion Highlights\n\n")
	if len(entries) == 0 {
		b.WriteString("- No discussion captured\n\n")
		return
	}
	const maxHighlights = 10
	for i, e := range entries {
		if i >= maxHighlights {
			break
		}
		fmt.Fprintf(b, "- [**%s**] %s: %s\n", e.timestamp, e.speaker, e.text)
	}
	b.WriteString("\n")
}

func writeDecisions(b *strings.Builder, entries []transcriptEntry) {
	b.WriteString("## Decisions Made\n\n")
	n := 0
	for _, e := range entries {
		if !containsAny(e.text, decisionHints) {
			continue
		}
		n++
		fmt.Fprintf(b, "%d. **%s** - %s [**%s**]\n", n, e.speaker, e.text, e.timestamp)
	}
	if n == 0 {
		b.WriteString("No formal decisions were recorded.\n")
	}
	b.WriteString("\n")
}

func writeActionItems(b *strings.Builder, entries []transcriptEntry) {
	b.WriteString("## Action Items\n\n")
	n := 0
	for _, e := range entries {
		if !containsAny(e.text, actionHints) {
			continue
		}
		n++
		due := "TBD"
		if m := dueRe.FindStringSubmatch(e.text); m != nil {
			due = m[1]
		}
		fmt.Fprintf(b, "- **%s** — %s — **Due: %s**\n", e.speaker, e.text, due)
	}
	if n == 0 {
		b.WriteString("- **Unassigned** — Review captured transcript for follow-ups — **Due: TBD**\n")
	}
	b.WriteString("\n")
}

func containsAny(text string, hints []string) bool {
	lower := strings.ToLower(text)
	for _, h := range hints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}
