// Package meeting defines the persisted Job Record that describes one
// automated meeting-attendance run, together with its status state machine.
package meeting

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Platform identifies the meeting provider.
type Platform string

const (
	PlatformZoom       Platform = "zoom"
	PlatformGoogleMeet Platform = "google-meet"
)

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	return p == PlatformZoom || p == PlatformGoogleMeet
}

// Label returns the human-facing provider name.
func (p Platform) Label() string {
	if p == PlatformZoom {
		return "Zoom"
	}
	return "Google Meet"
}

// Status is the job lifecycle state observed by polling clients.
type Status string

const (
	StatusWaiting      Status = "waiting"
	StatusConnecting   Status = "connecting"
	StatusTranscribing Status = "transcribing"
	StatusProcessing   Status = "processing"
	StatusDone         Status = "done"
	StatusError        Status = "error"
)

// statusOrder gives each non-error status its position in the forward-only
// progression. Error is reachable from any non-terminal state.
var statusOrder = map[Status]int{
	StatusWaiting:      0,
	StatusConnecting:   1,
	StatusTranscribing: 2,
	StatusProcessing:   3,
	StatusDone:         4,
}

// Valid reports whether s is one of the six defined statuses.
func (s Status) Valid() bool {
	if s == StatusError {
		return true
	}
	_, ok := statusOrder[s]
	return ok
}

// Terminal reports whether polling should stop.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusError
}

// CanTransitionTo reports whether moving from s to next is a legal step:
// strictly forward through the defined order, or any non-terminal state
// directly to error.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusError {
		return !s.Terminal()
	}
	from, ok := statusOrder[s]
	if !ok {
		return false
	}
	to, ok := statusOrder[next]
	if !ok {
		return false
	}
	return to > from
}

// RecordingStatus is the companion progress axis advanced in lockstep with
// Status. It is display-only; completion is determined by Status alone.
type RecordingStatus string

const (
	RecordingIdle       RecordingStatus = "idle"
	RecordingStarting   RecordingStatus = "starting"
	RecordingRecording  RecordingStatus = "recording"
	RecordingProcessing RecordingStatus = "processing"
	RecordingAvailable  RecordingStatus = "available"
)

var recordingRank = map[RecordingStatus]int{
	RecordingIdle:       0,
	RecordingStarting:   1,
	RecordingRecording:  2,
	RecordingProcessing: 3,
	RecordingAvailable:  4,
}

// Rank returns the position of r in the forward-only recording order,
// or -1 for an unknown value.
func (r RecordingStatus) Rank() int {
	rank, ok := recordingRank[r]
	if !ok {
		return -1
	}
	return rank
}

// Recording tracks the capture sub-state of a run. Timestamps are epoch
// milliseconds; zero means unset.
type Recording struct {
	Status          RecordingStatus `json:"status"`
	StartedAt       int64           `json:"startedAt,omitempty"`
	EndedAt         int64           `json:"endedAt,omitempty"`
	DurationMinutes int             `json:"durationMinutes,omitempty"`
}

// Job is the persisted record of one automation run. It is created once on
// submission and mutated exclusively by the owning session controller.
type Job struct {
	ID            string    `json:"id"`
	MeetingLink   string    `json:"meetingLink"`
	Platform      Platform  `json:"platform"`
	MeetingID     string    `json:"meetingId"`
	DisplayName   string    `json:"displayName"`
	Status        Status    `json:"status"`
	StatusMessage string    `json:"statusMessage,omitempty"`
	Recording     Recording `json:"recording"`
	Notes         string    `json:"notes,omitempty"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     int64     `json:"createdAt"`
	UpdatedAt     int64     `json:"updatedAt"`
}

// NewJob creates a Job in the waiting state with a fresh identifier.
func NewJob(link string, platform Platform, meetingID, displayName string) Job {
	now := time.Now().UnixMilli()
	return Job{
		ID:          uuid.New().String(),
		MeetingLink: link,
		Platform:    platform,
		MeetingID:   meetingID,
		DisplayName: displayName,
		Status:      StatusWaiting,
		Recording:   Recording{Status: RecordingIdle},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DurationMinutes computes the rounded run length in minutes for the given
// epoch-millisecond bounds, with a floor of one minute.
func DurationMinutes(startedAt, endedAt int64) int {
	if endedAt < startedAt {
		endedAt = startedAt
	}
	minutes := int(math.Round(float64(endedAt-startedAt) / 60000.0))
	if minutes < 1 {
		return 1
	}
	return minutes
}
