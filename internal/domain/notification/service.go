package notification

import "context"

type Service interface {
	// QueueNotification stores a notification for later delivery. Failures
	// are logged, not propagated; notifying must never fail the action that
	// triggered it.
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error
	List(ctx context.Context, recipientID string, limit int) ([]NotificationResponse, int, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}
