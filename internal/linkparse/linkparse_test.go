package linkparse

import (
	"testing"

	"meetscribe/internal/meeting"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		platform meeting.Platform
		id       string
	}{
		{"zoom join link", "https://zoom.us/j/1234567890", meeting.PlatformZoom, "1234567890"},
		{"zoom join link with query", "https://zoom.us/j/1234567890?pwd=abc123", meeting.PlatformZoom, "1234567890"},
		{"zoom subdomain", "https://us02web.zoom.us/j/9876543210", meeting.PlatformZoom, "9876543210"},
		{"zoom meeting path", "https://zoom.us/meeting/555444333", meeting.PlatformZoom, "555444333"},
		{"zoom dot com", "https://zoom.com/j/111222333", meeting.PlatformZoom, "111222333"},
		{"meet canonical", "https://meet.google.com/abc-defg-hij", meeting.PlatformGoogleMeet, "abc-defg-hij"},
		{"meet canonical with query", "https://meet.google.com/abc-defg-hij?authuser=0", meeting.PlatformGoogleMeet, "abc-defg-hij"},
		{"meet loose code", "https://meet.google.com/some-longer-code", meeting.PlatformGoogleMeet, "some-longer-code"},
		{"plain text", "not a link at all", "", ""},
		{"unknown provider", "https://teams.microsoft.com/l/meetup-join/xyz", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.link)
			if got.Platform != tt.platform {
				t.Errorf("Classify(%q).Platform = %q, want %q", tt.link, got.Platform, tt.platform)
			}
			if got.MeetingID != tt.id {
				t.Errorf("Classify(%q).MeetingID = %q, want %q", tt.link, got.MeetingID, tt.id)
			}
		})
	}
}

func TestClassifyPrefersStrictMeetShape(t *testing.T) {
	// The strict xxx-xxxx-xxx pattern must win over the loose one so the id
	// excludes trailing path segments.
	got := Classify("https://meet.google.com/abc-defg-hij/extra")
	if got.MeetingID != "abc-defg-hij" {
		t.Errorf("MeetingID = %q, want %q", got.MeetingID, "abc-defg-hij")
	}
}
