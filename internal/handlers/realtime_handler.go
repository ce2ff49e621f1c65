package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/middleware"
	"github.com/workbridge/jobboard-backend/internal/realtime"
	"github.com/workbridge/jobboard-backend/internal/services"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

// RealtimeHandler serves the cursor-based polling endpoints. Each poll is
// a stateless, independent read; there is no long-poll or push.
type RealtimeHandler struct {
	store         storage.Store
	notifications *services.NotificationService
	tracker       *realtime.Tracker
}

func NewRealtimeHandler(store storage.Store, notifications *services.NotificationService, tracker *realtime.Tracker) *RealtimeHandler {
	return &RealtimeHandler{store: store, notifications: notifications, tracker: tracker}
}

// Jobs serves GET /api/realtime/jobs?since=<id>.
func (h *RealtimeHandler) Jobs(c *fiber.Ctx) error {
	since := uint(c.QueryInt("since", 0))

	items, err := h.store.GetJobsSince(since)
	if err != nil {
		return fail(c, err)
	}

	lastID := since
	if n := len(items); n > 0 {
		lastID = items[n-1].ID
	} else if last := h.tracker.LastJobID(); last > lastID {
		lastID = last
	}
	return c.JSON(dto.JobsPollResponse{Items: items, LastID: lastID})
}

// Notifications serves GET /api/realtime/notifications?since=<id>.
func (h *RealtimeHandler) Notifications(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	since := uint(c.QueryInt("since", 0))

	items, err := h.notifications.ListSince(userID, since)
	if err != nil {
		return fail(c, err)
	}

	lastID := since
	if n := len(items); n > 0 {
		lastID = items[n-1].ID
	} else if last := h.tracker.LastNotificationID(userID); last > lastID {
		lastID = last
	}
	return c.JSON(dto.NotificationsPollResponse{Items: items, LastID: lastID})
}
