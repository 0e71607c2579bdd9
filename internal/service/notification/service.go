package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/notification"
)

const defaultListLimit = 50

type Service struct {
	repo   notification.NotificationRepository
	logger *slog.Logger
}

func NewService(repo notification.NotificationRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// QueueNotification stores the notification and swallows failures: the
// action that triggered it must not fail because notifying did.
func (s *Service) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	_, err := s.repo.Create(ctx, notification.Notification{
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		Data:        req.Data,
	})
	if err != nil {
		s.logger.Error("failed to queue notification",
			slog.String("recipient_id", req.RecipientID),
			slog.String("type", string(req.Type)),
			slog.Any("error", err),
		)
	}
	return nil
}

func (s *Service) List(ctx context.Context, recipientID string, limit int) ([]notification.NotificationResponse, int, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	items, err := s.repo.ListByRecipient(ctx, recipientID, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	out := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, notification.ToResponse(n))
	}
	return out, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.repo.MarkRead(ctx, id, recipientID)
}
