package models

import "time"

// DefaultDeadline is used when a task request does not specify a deadline.
const DefaultDeadline = "18:00"

// Task priorities understood by the system.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task represents a single assignment from one employee to another.
// A task request addressed to N recipients produces N independent tasks,
// each with its own identifier.
type Task struct {
	ID          int       `json:"id"`               // Unique identifier for the task.
	SenderID    string    `json:"sender_tg_id"`     // SenderID is the identifier of the task author.
	RecipientID string    `json:"recipient_tg_id"`  // RecipientID is the identifier of the assignee.
	Title       string    `json:"title"`            // Title is the short task summary.
	Description string    `json:"description"`      // Description defaults to the title when omitted.
	Deadline    string    `json:"deadline"`         // Deadline is a free-form time label, defaults to DefaultDeadline.
	Priority    string    `json:"priority"`         // Priority is one of high, medium, low.
	Zone        string    `json:"zone"`             // Zone is a free-text label for a work area.
	CreatedAt   time.Time `json:"created_at"`       // CreatedAt is when the task was created.
}
