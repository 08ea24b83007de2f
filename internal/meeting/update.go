package meeting

import "time"

// Update is a partial mutation of a Job. Nil fields are left untouched, so
// applying the same Update twice yields the same visible state (UpdatedAt
// aside).
type Update struct {
	Status          *Status
	StatusMessage   *string
	RecordingStatus *RecordingStatus
	StartedAt       *int64
	EndedAt         *int64
	DurationMinutes *int
	Notes           *string
	Error           *string
}

// Apply folds u into the job and refreshes UpdatedAt. The recording status
// never regresses: a lower-ranked value than the current one is ignored.
// StartedAt is only set while unset, keeping retries of the connect step
// idempotent.
func (j *Job) Apply(u Update) {
	if u.Status != nil {
		j.Status = *u.Status
	}
	if u.StatusMessage != nil {
		j.StatusMessage = *u.StatusMessage
	}
	if u.RecordingStatus != nil && u.RecordingStatus.Rank() >= j.Recording.Status.Rank() {
		j.Recording.Status = *u.RecordingStatus
	}
	if u.StartedAt != nil && j.Recording.StartedAt == 0 {
		j.Recording.StartedAt = *u.StartedAt
	}
	if u.EndedAt != nil {
		j.Recording.EndedAt = *u.EndedAt
	}
	if u.DurationMinutes != nil {
		j.Recording.DurationMinutes = *u.DurationMinutes
	}
	if u.Notes != nil {
		j.Notes = *u.Notes
	}
	if u.Error != nil {
		j.Error = *u.Error
	}
	j.UpdatedAt = time.Now().UnixMilli()
}

// Helpers for building Updates without local temporaries.

func StatusPtr(s Status) *Status { return &s }

func RecordingPtr(r RecordingStatus) *RecordingStatus { return &r }

func StringPtr(s string) *string { return &s }

func Int64Ptr(v int64) *int64 { return &v }

func IntPtr(v int) *int { return &v }
