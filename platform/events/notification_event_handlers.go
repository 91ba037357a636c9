package events

import (
	"jobdeck/domain/dashboard"
	"jobdeck/domain/events"
	"jobdeck/logging"
)

// ToastBroadcaster defines the interface for pushing toast notifications to
// connected clients (same as the SSE manager's broadcast surface)
type ToastBroadcaster interface {
	BroadcastToast(message, toastType string)
	BroadcastDashboardRefresh()
}

// SyncMessageFormatter builds the user-facing message for a completed sync
// (the presentation layer's sync presenter).
type SyncMessageFormatter interface {
	FormatSyncSuccessMessage(result *dashboard.SyncResult) string
}

// NotificationEventHandlers converts sync lifecycle events into toast
// notifications for connected clients
type NotificationEventHandlers struct {
	broadcaster ToastBroadcaster
	formatter   SyncMessageFormatter
	logger      *logging.Logger
}

// NewNotificationEventHandlers creates event handlers for notifications
func NewNotificationEventHandlers(broadcaster ToastBroadcaster, formatter SyncMessageFormatter) *NotificationEventHandlers {
	return &NotificationEventHandlers{
		broadcaster: broadcaster,
		formatter:   formatter,
		logger:      logging.Default().WithComponent("notification_events"),
	}
}

// RegisterHandlers registers all notification event handlers with the event bus
func (h *NotificationEventHandlers) RegisterHandlers(eventBus *SyncEventBus) {
	eventBus.OnSyncCompleted(h.handleSyncCompleted)
	eventBus.OnSyncFailed(h.handleSyncFailed)
	eventBus.OnReindexCompleted(h.handleReindexCompleted)
	eventBus.OnReindexFailed(h.handleReindexFailed)
}

// Event handler implementations

func (h *NotificationEventHandlers) handleSyncCompleted(event events.SyncCompletedEvent) {
	h.logger.Info("Handling sync completed event", "job_group_id", event.Request.GroupID)

	h.broadcaster.BroadcastToast(h.formatter.FormatSyncSuccessMessage(event.Result), "success")
}

func (h *NotificationEventHandlers) handleSyncFailed(event events.SyncFailedEvent) {
	h.logger.Info("Handling sync failed event", "job_group_id", event.Request.GroupID, "error", event.Error)

	h.broadcaster.BroadcastToast(event.Error, "error")
}

func (h *NotificationEventHandlers) handleReindexCompleted(event events.ReindexCompletedEvent) {
	h.logger.Info("Handling reindex completed event", "job_group_id", event.GroupID)

	// Server message passed through verbatim
	h.broadcaster.BroadcastToast(event.Message, "success")
}

func (h *NotificationEventHandlers) handleReindexFailed(event events.ReindexFailedEvent) {
	h.logger.Info("Handling reindex failed event", "job_group_id", event.GroupID, "error", event.Error)

	h.broadcaster.BroadcastToast(event.Error, "error")
}
