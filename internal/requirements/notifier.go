package requirements

import "log"

const (
	EventCompletion   = "completion"
	EventVerification = "verification"
	EventComment      = "comment"
	EventStatus       = "status"
	EventOverdue      = "overdue"
)

type Event struct {
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	RequirementId string `json:"requirementId,omitempty"`
}

// Notifier receives the local notification side effects of status-changing
// manager operations. Delivery is best effort; the manager logs failures
// and never surfaces them to callers.
type Notifier interface {
	Notify(e Event) error
}

type LogNotifier struct{}

func (LogNotifier) Notify(e Event) error {
	log.Printf("[notify] %s: %s - %s", e.Kind, e.Title, e.Body)
	return nil
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(Event) error { return nil }
