package events

import (
	"time"

	"jobdeck/domain/dashboard"
)

// SyncCompletedEvent represents a sync command that completed successfully
type SyncCompletedEvent struct {
	Request   dashboard.SyncRequest
	Result    *dashboard.SyncResult
	Timestamp time.Time
}

// SyncFailedEvent represents a sync command rejected by the backend
type SyncFailedEvent struct {
	Request   dashboard.SyncRequest
	Error     string
	Timestamp time.Time
}

// ReindexCompletedEvent represents a reindex command that completed successfully.
// Message is the server message, delivered to the notifier verbatim.
type ReindexCompletedEvent struct {
	GroupID   string
	Message   string
	Timestamp time.Time
}

// ReindexFailedEvent represents a reindex command rejected by the backend
type ReindexFailedEvent struct {
	GroupID   string
	Error     string
	Timestamp time.Time
}
