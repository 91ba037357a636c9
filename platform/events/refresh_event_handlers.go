package events

import (
	"context"

	"jobdeck/domain/events"
	"jobdeck/logging"
)

// DashboardRefresher is the slice of the orchestrator the refresh handlers
// need: the two reads a successful sync invalidates
type DashboardRefresher interface {
	RefreshJobGroups(ctx context.Context)
	RefreshStats(ctx context.Context)
}

// RefreshEventHandlers is the declared side-effect table tying sync success
// to list invalidation: a successful sync refreshes the job group list and
// stats, nothing else. Failed syncs and reindex outcomes refresh nothing.
type RefreshEventHandlers struct {
	refresher   DashboardRefresher
	broadcaster ToastBroadcaster
	logger      *logging.Logger
}

// NewRefreshEventHandlers creates event handlers that keep list resources
// consistent after writes
func NewRefreshEventHandlers(refresher DashboardRefresher, broadcaster ToastBroadcaster) *RefreshEventHandlers {
	return &RefreshEventHandlers{
		refresher:   refresher,
		broadcaster: broadcaster,
		logger:      logging.Default().WithComponent("refresh_events"),
	}
}

// RegisterHandlers registers the refresh side effects with the event bus
func (h *RefreshEventHandlers) RegisterHandlers(eventBus *SyncEventBus) {
	eventBus.OnSyncCompleted(h.handleSyncCompleted)
}

func (h *RefreshEventHandlers) handleSyncCompleted(event events.SyncCompletedEvent) {
	h.logger.Info("Refreshing dashboard after sync", "job_group_id", event.Request.GroupID)

	ctx := context.Background()
	h.refresher.RefreshJobGroups(ctx)
	h.refresher.RefreshStats(ctx)

	// Tell connected clients to re-pull the refreshed partials
	h.broadcaster.BroadcastDashboardRefresh()
}
