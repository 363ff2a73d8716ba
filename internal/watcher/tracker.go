package watcher

import "HomeworkSentinel/internal/model"

// Tracker remembers the last delivered report and decides whether a
// candidate is new. It is owned by the poll loop goroutine and needs no lock.
type Tracker struct {
	last model.Report
}

func NewTracker() *Tracker { return &Tracker{} }

// ShouldNotify reports whether r differs from the last committed report.
// The zero-value tracker treats any non-zero report as new.
func (t *Tracker) ShouldNotify(r model.Report) bool {
	return r != t.last
}

// Commit stores r as the last delivered report. Call it only after the
// notification actually went out.
func (t *Tracker) Commit(r model.Report) {
	t.last = r
}

// Last returns the last committed report.
func (t *Tracker) Last() model.Report {
	return t.last
}
