package notifier

import (
	"context"
	"log/slog"

	"github.com/Houeta/restobot/internal/metrics"
)

// queueSize bounds the number of pending notification sends. Submissions
// beyond the bound are dropped, not blocked on.
const queueSize = 64

// Job describes one pending notification send.
type Job struct {
	SenderID    string // SenderID is the identifier of the task author.
	RecipientID string // RecipientID is the identifier of the assignee.
	Title       string // Title is the task title.
	Zone        string // Zone is the work area label.
	Deadline    string // Deadline is the task deadline label.
	Priority    string // Priority is one of high, medium, low.
}

// Dispatcher hands notification jobs from HTTP handlers to a single
// background worker through a bounded queue. HTTP handlers never wait for
// delivery; they only observe whether the job was accepted.
type Dispatcher struct {
	log      *slog.Logger
	notifier *Notifier
	metrics  *metrics.Metrics
	jobs     chan Job
}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher(log *slog.Logger, ntf *Notifier, mtr *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		log:      log,
		notifier: ntf,
		metrics:  mtr,
		jobs:     make(chan Job, queueSize),
	}
}

// Enqueue submits a job without blocking. It returns false when the queue
// is full and the job was dropped.
func (d *Dispatcher) Enqueue(job Job) bool {
	select {
	case d.jobs <- job:
		return true
	default:
		d.log.Warn("Notification queue is full, dropping job", "recipient", job.RecipientID)
		d.metrics.Notifications.WithLabelValues("dropped").Inc()
		return false
	}
}

// Run processes queued jobs one at a time until the context is canceled.
// It is meant to run once, on its own goroutine, for the process lifetime.
func (d *Dispatcher) Run(ctx context.Context) {
	d.log.Info("Notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.log.Info("Notification dispatcher stopped")
			return
		case job := <-d.jobs:
			d.notifier.SendTaskNotification(ctx, job)
		}
	}
}
