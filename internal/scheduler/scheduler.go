package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"HomeworkSentinel/internal/model"
	"HomeworkSentinel/internal/notifier"
	"HomeworkSentinel/internal/recorder"
)

// Checker supplies the current review state for the digest.
type Checker interface {
	CheckNow(ctx context.Context) (*model.StatusPage, error)
}

// Notifier is the digest delivery channel.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Scheduler runs the optional cron-driven digest. The change-notification
// loop lives in the watcher; the scheduler only adds periodic summaries.
type Scheduler struct {
	Cron     *cron.Cron
	Checker  Checker
	Notifier Notifier
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, chk Checker, n Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Checker:  chk,
		Notifier: n,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// RegisterDigest registers the digest task under a 6-field cron spec.
func (s *Scheduler) RegisterDigest(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDigestNow executes the digest task immediately (manual trigger).
func (s *Scheduler) RunDigestNow() {
	s.digestTask()
}

func (s *Scheduler) digestTask() {
	log.Println("[INFO] running digest task")
	page, err := s.Checker.CheckNow(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] digest check: %v", err)
		return
	}

	msg := notifier.FormatDigest(page)
	if err := s.Notifier.Send(s.Ctx, msg); err != nil {
		log.Printf("[ERROR] send digest: %v", err)
		return
	}

	if err := s.Recorder.RecordDelivery(&recorder.DeliveryEvent{
		ID:      uuid.NewString(),
		Kind:    recorder.KindDigest,
		Message: msg,
	}); err != nil {
		log.Printf("[ERROR] record digest: %v", err)
	}
}
