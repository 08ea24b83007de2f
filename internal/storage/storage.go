// Package storage persists Job Records behind a small key-value interface
// with a fixed retention window. Expiry is the backend's responsibility;
// callers only ever Get and Set whole records.
package storage

import (
	"context"
	"errors"
	"time"

	"meetscribe/internal/meeting"
)

// ErrNotFound is returned when a requested record does not exist or has
// expired.
var ErrNotFound = errors.New("not found")

// RetentionTTL is how long a Job Record stays readable after its last write.
const RetentionTTL = 7 * 24 * time.Hour

// Store is the Job Record store. Exactly one writer (the owning session
// controller) ever mutates a given key, so read-modify-write with
// last-write-wins semantics is sufficient.
type Store interface {
	Get(ctx context.Context, id string) (meeting.Job, error)
	Set(ctx context.Context, job meeting.Job) error
	Close() error
}
