package watcher

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"HomeworkSentinel/internal/collector"
	"HomeworkSentinel/internal/model"
	"HomeworkSentinel/internal/notifier"
	"HomeworkSentinel/internal/recorder"
	"HomeworkSentinel/internal/review"
)

// Notifier is the delivery channel used by the watcher.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Watcher runs the poll-check-notify loop: fetch statuses updated since the
// cursor, validate, render the first record, and deliver it once per change.
type Watcher struct {
	Fetcher  collector.Fetcher
	Notifier Notifier
	Recorder recorder.Recorder
	Interval time.Duration

	// Poll state. Touched only by the goroutine running Run, never shared.
	tracker  *Tracker
	fromDate int64
}

// NewWatcher creates a watcher that polls every interval, starting from now.
func NewWatcher(f collector.Fetcher, n Notifier, rec recorder.Recorder, interval time.Duration) *Watcher {
	return &Watcher{
		Fetcher:  f,
		Notifier: n,
		Recorder: rec,
		Interval: interval,
		tracker:  NewTracker(),
		fromDate: time.Now().Unix(),
	}
}

// Run executes poll cycles until ctx is cancelled. The first cycle runs
// immediately; every later cycle waits Interval regardless of outcome.
func (w *Watcher) Run(ctx context.Context) error {
	log.Printf("[INFO] watcher started: poll interval %s, source %s", w.Interval, w.Fetcher.Name())
	for {
		w.cycle(ctx)
		select {
		case <-ctx.Done():
			log.Println("[INFO] watcher stopped")
			return ctx.Err()
		case <-time.After(w.Interval):
		}
	}
}

// cycle performs one fetch-validate-report-notify pass. The cursor advances
// to the server's current_date only when the cycle reached the notify step;
// fetch, validation and formatting failures leave it where it was.
func (w *Watcher) cycle(ctx context.Context) {
	raw, err := w.Fetcher.FetchStatuses(ctx, w.fromDate)
	if err != nil {
		log.Printf("[ERROR] fetch statuses: %v", err)
		return
	}

	page, err := review.CheckResponse(raw)
	if err != nil {
		log.Printf("[DEBUG] invalid statuses payload: %v", err)
		return
	}

	var pending model.Report
	if len(page.Homeworks) == 0 {
		pending = model.Report{Name: w.tracker.Last().Name, Text: review.NoUpdates}
	} else {
		// Records arrive newest first; later ones wait for their own cycle.
		hw := page.Homeworks[0]
		text, err := review.ParseStatus(hw)
		if err != nil {
			log.Printf("[ERROR] parse status: %v", err)
			fault := model.Report{Name: w.tracker.Last().Name, Text: notifier.FormatFault(err)}
			w.deliver(ctx, fault, recorder.KindFault)
			return
		}
		pending = model.Report{Name: *hw.Name, Text: text}
	}

	w.deliver(ctx, pending, recorder.KindStatus)
	w.fromDate = page.CurrentDate
}

// deliver sends the report if it differs from the last delivered one.
// Commit happens only after a successful send, so a failed delivery keeps
// the report eligible the next time it is produced.
func (w *Watcher) deliver(ctx context.Context, rep model.Report, kind string) {
	if !w.tracker.ShouldNotify(rep) {
		log.Println("[DEBUG] report unchanged, nothing to send")
		return
	}
	if err := w.Notifier.Send(ctx, rep.Text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
		return
	}
	w.tracker.Commit(rep)
	log.Printf("[INFO] notification delivered: %s", rep.Text)

	if err := w.Recorder.RecordDelivery(&recorder.DeliveryEvent{
		ID:       uuid.NewString(),
		Kind:     kind,
		Homework: rep.Name,
		Message:  rep.Text,
	}); err != nil {
		log.Printf("[ERROR] record delivery: %v", err)
	}
}

// CheckNow fetches the full review history (from_date=0) and returns the
// validated page. It never touches the poll cursor or the tracker, so an
// on-demand check cannot swallow a pending change notification.
func (w *Watcher) CheckNow(ctx context.Context) (*model.StatusPage, error) {
	raw, err := w.Fetcher.FetchStatuses(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch statuses: %w", err)
	}
	page, err := review.CheckResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("check response: %w", err)
	}
	return page, nil
}

// HandleCommand serves Telegram chat commands and returns the reply text.
func (w *Watcher) HandleCommand(ctx context.Context, command string) string {
	switch command {
	case "/status":
		page, err := w.CheckNow(ctx)
		if err != nil {
			log.Printf("[ERROR] on-demand check: %v", err)
			return "Не удалось получить статусы, попробуйте позже."
		}
		return notifier.FormatDigest(page)
	default:
		return "Доступные команды:\n• /status: текущее состояние домашних работ"
	}
}
