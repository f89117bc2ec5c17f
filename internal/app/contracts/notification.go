package contracts

import "context"

// NotificationMessage is what gets queued when something a user cares about
// happens, such as a booked appointment or a changed schedule.
type NotificationMessage struct {
	UserID  string `json:"user_id"`
	Event   string `json:"event"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type NotificationPublisher interface {
	Publish(ctx context.Context, message *NotificationMessage) error
}
