package services

import (
	"log/slog"

	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/realtime"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

type NotificationService struct {
	store   storage.Store
	tracker *realtime.Tracker
}

func NewNotificationService(store storage.Store, tracker *realtime.Tracker) *NotificationService {
	return &NotificationService{store: store, tracker: tracker}
}

// Notify creates a notification and publishes its ID to the polling
// tracker. Delivery is best-effort; failures are logged, not surfaced.
func (s *NotificationService) Notify(userID uint, title, body string) {
	n := models.Notification{UserID: userID, Title: title, Body: body}
	if err := s.store.CreateNotification(&n); err != nil {
		slog.Error("failed to create notification", "user_id", userID, "error", err)
		return
	}
	s.tracker.PublishNotification(userID, n.ID)
}

func (s *NotificationService) List(userID uint, unreadOnly bool) ([]models.Notification, error) {
	return s.store.ListNotifications(userID, unreadOnly)
}

func (s *NotificationService) ListSince(userID, sinceID uint) ([]models.Notification, error) {
	return s.store.GetNotificationsSince(userID, sinceID)
}

// MarkRead marks one of the caller's own notifications as read. Another
// user's notification is indistinguishable from a missing one.
func (s *NotificationService) MarkRead(userID, id uint) error {
	return s.store.MarkNotificationAsRead(userID, id)
}

func (s *NotificationService) MarkAllRead(userID uint) (bool, error) {
	return s.store.MarkAllNotificationsAsRead(userID)
}
