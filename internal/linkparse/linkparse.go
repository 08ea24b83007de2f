// Package linkparse classifies user-supplied meeting links into a platform
// and a provider-specific meeting identifier.
package linkparse

import (
	"regexp"

	"meetscribe/internal/meeting"
)

// Result is the outcome of classifying a link. Platform is empty when the
// link matched no known provider; callers must reject such input.
type Result struct {
	Platform  meeting.Platform
	MeetingID string
}

type pattern struct {
	platform meeting.Platform
	re       *regexp.Regexp
}

// Ordered: first match wins. The strict Meet code shape comes before the
// loose one so canonical xxx-xxxx-xxx links extract exactly.
var patterns = []pattern{
	{meeting.PlatformZoom, regexp.MustCompile(`zoom\.us/j/(\d+)`)},
	{meeting.PlatformZoom, regexp.MustCompile(`zoom\.us/meeting/(\d+)`)},
	{meeting.PlatformZoom, regexp.MustCompile(`zoom\.com/j/(\d+)`)},
	{meeting.PlatformGoogleMeet, regexp.MustCompile(`meet\.google\.com/([a-z]{3}-[a-z]{4}-[a-z]{3})`)},
	{meeting.PlatformGoogleMeet, regexp.MustCompile(`meet\.google\.com/([a-z][a-z-]+[a-z])`)},
}

// Classify parses a raw link into its platform and meeting id. Pure
// function; no validation beyond pattern matching.
func Classify(link string) Result {
	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(link); m != nil {
			return Result{Platform: p.platform, MeetingID: m[1]}
		}
	}
	return Result{}
}
