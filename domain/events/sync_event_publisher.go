package events

// SyncEventPublisher abstracts event publishing so the application layer
// stays decoupled from the concrete bus implementation.
type SyncEventPublisher interface {
	PublishSyncCompleted(event SyncCompletedEvent)
	PublishSyncFailed(event SyncFailedEvent)
	PublishReindexCompleted(event ReindexCompletedEvent)
	PublishReindexFailed(event ReindexFailedEvent)
}
