// Package session orchestrates one end-to-end automation run: launch a
// browser, join the meeting, capture captions, synthesize a transcript,
// generate notes, leave, and tear down, advancing the persisted Job Record
// at each step.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"meetscribe/internal/browser"
	"meetscribe/internal/capture"
	"meetscribe/internal/meeting"
	"meetscribe/internal/platform"
	"meetscribe/internal/storage"
	"meetscribe/internal/transcript"
)

// DefaultNavTimeout bounds meeting-page navigation.
const DefaultNavTimeout = 60 * time.Second

// NotesGenerator produces markdown notes from a transcript. Never fails.
type NotesGenerator interface {
	Generate(ctx context.Context, transcript string) string
}

// Controller runs exactly one join-record-leave cycle per call. A given job
// is only ever mutated by the one controller run that owns it, so plain
// read-modify-write against the store is safe.
type Controller struct {
	store      storage.Store
	launcher   browser.Launcher
	notes      NotesGenerator
	capture    *capture.Engine
	navTimeout time.Duration
	logger     *slog.Logger
}

// NewController wires a Controller. navTimeout <= 0 selects the default.
func NewController(store storage.Store, launcher browser.Launcher, gen NotesGenerator, eng *capture.Engine, navTimeout time.Duration) *Controller {
	if navTimeout <= 0 {
		navTimeout = DefaultNavTimeout
	}
	return &Controller{
		store:      store,
		launcher:   launcher,
		notes:      gen,
		capture:    eng,
		navTimeout: navTimeout,
		logger:     slog.Default(),
	}
}

// Run executes the full automation cycle for the job. Launch and navigation
// failures are fatal; join, capture-iteration, and leave failures degrade
// toward a best-effort done state. Any error (or panic) surfaces exactly
// once as status=error with a short message; the job is never left stuck
// mid-pipeline.
func (c *Controller) Run(ctx context.Context, jobID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("run panicked: %v", r)
		}
		if err != nil {
			c.logger.Error("run failed", "job_id", jobID, "error", err)
			c.fail(jobID, err)
		}
	}()
	return c.run(ctx, jobID)
}

func (c *Controller) run(ctx context.Context, jobID string) error {
	job, err := c.store.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("loading job: %w", err)
	}

	adapter, err := platform.For(job.Platform)
	if err != nil {
		return err
	}

	startedAt := time.Now().UnixMilli()
	if err := c.update(ctx, jobID, meeting.Update{
		Status:          meeting.StatusPtr(meeting.StatusConnecting),
		StatusMessage:   meeting.StringPtr("Connecting to " + job.Platform.Label()),
		RecordingStatus: meeting.RecordingPtr(meeting.RecordingStarting),
		StartedAt:       meeting.Int64Ptr(startedAt),
	}); err != nil {
		return err
	}

	page, err := c.launcher.Launch(ctx)
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := page.Close(closeCtx); err != nil {
			c.logger.Warn("browser teardown failed", "job_id", jobID, "error", err)
		}
	}()

	navCtx, cancel := context.WithTimeout(ctx, c.navTimeout)
	err = page.Navigate(navCtx, job.MeetingLink)
	cancel()
	if err != nil {
		return fmt.Errorf("navigating to meeting: %w", err)
	}

	// A failed join may still leave captions visible, so capture proceeds
	// either way; partial capture beats aborting.
	joined := true
	if err := adapter.Join(ctx, page, job.DisplayName); err != nil {
		joined = false
		c.logger.Warn("join failed, continuing with capture", "job_id", jobID, "platform", adapter.Name(), "error", err)
	}

	if err := c.update(ctx, jobID, meeting.Update{
		Status:          meeting.StatusPtr(meeting.StatusTranscribing),
		StatusMessage:   meeting.StringPtr("Capturing live captions"),
		RecordingStatus: meeting.RecordingPtr(meeting.RecordingRecording),
	}); err != nil {
		return err
	}

	fragments, capErr := c.capture.Run(ctx, page, func(progress string) {
		if err := c.update(ctx, jobID, meeting.Update{StatusMessage: meeting.StringPtr(progress)}); err != nil {
			c.logger.Warn("progress update failed", "job_id", jobID, "error", err)
		}
	})
	if capErr != nil {
		return fmt.Errorf("capture: %w", capErr)
	}

	if err := c.update(ctx, jobID, meeting.Update{
		Status:          meeting.StatusPtr(meeting.StatusProcessing),
		StatusMessage:   meeting.StringPtr("Generating meeting notes"),
		RecordingStatus: meeting.RecordingPtr(meeting.RecordingProcessing),
	}); err != nil {
		return err
	}

	text := transcript.Synthesize(capture.Texts(fragments), job.Platform, job.MeetingID, time.UnixMilli(startedAt))
	markdown := c.notes.Generate(ctx, text)

	if joined {
		if err := adapter.Leave(ctx, page); err != nil {
			c.logger.Warn("leave failed", "job_id", jobID, "error", err)
		}
	}

	endedAt := time.Now().UnixMilli()
	current, err := c.store.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("reloading job: %w", err)
	}
	duration := meeting.DurationMinutes(current.Recording.StartedAt, endedAt)

	if err := c.update(ctx, jobID, meeting.Update{
		Status:          meeting.StatusPtr(meeting.StatusDone),
		StatusMessage:   meeting.StringPtr("Meeting notes ready"),
		RecordingStatus: meeting.RecordingPtr(meeting.RecordingAvailable),
		EndedAt:         meeting.Int64Ptr(endedAt),
		DurationMinutes: meeting.IntPtr(duration),
		Notes:           meeting.StringPtr(markdown),
	}); err != nil {
		return err
	}

	c.logger.Info("run complete", "job_id", jobID, "fragments", len(fragments), "duration_minutes", duration)
	return nil
}

// update performs one read-modify-write of the Job Record. Status changes
// must follow the forward-only lifecycle; a same-status update is a no-op
// refresh, anything backwards (or out of a terminal state) is rejected.
func (c *Controller) update(ctx context.Context, jobID string, u meeting.Update) error {
	job, err := c.store.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("loading job for update: %w", err)
	}
	if u.Status != nil && *u.Status != job.Status {
		if !u.Status.Valid() {
			return fmt.Errorf("invalid status %q", *u.Status)
		}
		if !job.Status.CanTransitionTo(*u.Status) {
			return fmt.Errorf("illegal status transition %s -> %s", job.Status, *u.Status)
		}
	}
	job.Apply(u)
	if err := c.store.Set(ctx, job); err != nil {
		return fmt.Errorf("saving job: %w", err)
	}
	return nil
}

// fail marks the job as terminally errored with a short human-readable
// message. Uses a fresh context so it still works when the run context is
// gone; recording keeps whatever partial state it reached.
func (c *Controller) fail(jobID string, runErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	msg := truncate(runErr.Error(), 200)
	if err := c.update(ctx, jobID, meeting.Update{
		Status:        meeting.StatusPtr(meeting.StatusError),
		StatusMessage: meeting.StringPtr("Automation run failed"),
		Error:         meeting.StringPtr(msg),
	}); err != nil {
		c.logger.Error("failed to record error state", "job_id", jobID, "error", err)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
