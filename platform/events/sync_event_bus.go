package events

import (
	"sync"

	"jobdeck/domain/events"
	"jobdeck/logging"
)

// SyncEventBus provides type-safe event publishing and subscription for
// sync and reindex lifecycle events
type SyncEventBus struct {
	mu     sync.RWMutex
	logger *logging.Logger

	// Event handler slices for each event type
	syncCompletedHandlers    []func(events.SyncCompletedEvent)
	syncFailedHandlers       []func(events.SyncFailedEvent)
	reindexCompletedHandlers []func(events.ReindexCompletedEvent)
	reindexFailedHandlers    []func(events.ReindexFailedEvent)
}

// NewSyncEventBus creates a new typed sync event bus
func NewSyncEventBus() *SyncEventBus {
	return &SyncEventBus{
		logger:                   logging.Default().WithComponent("sync_event_bus"),
		syncCompletedHandlers:    make([]func(events.SyncCompletedEvent), 0),
		syncFailedHandlers:       make([]func(events.SyncFailedEvent), 0),
		reindexCompletedHandlers: make([]func(events.ReindexCompletedEvent), 0),
		reindexFailedHandlers:    make([]func(events.ReindexFailedEvent), 0),
	}
}

// Subscribe methods for each event type

func (bus *SyncEventBus) OnSyncCompleted(handler func(events.SyncCompletedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.syncCompletedHandlers = append(bus.syncCompletedHandlers, handler)
}

func (bus *SyncEventBus) OnSyncFailed(handler func(events.SyncFailedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.syncFailedHandlers = append(bus.syncFailedHandlers, handler)
}

func (bus *SyncEventBus) OnReindexCompleted(handler func(events.ReindexCompletedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.reindexCompletedHandlers = append(bus.reindexCompletedHandlers, handler)
}

func (bus *SyncEventBus) OnReindexFailed(handler func(events.ReindexFailedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.reindexFailedHandlers = append(bus.reindexFailedHandlers, handler)
}

// Publish methods for each event type

func (bus *SyncEventBus) PublishSyncCompleted(event events.SyncCompletedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.SyncCompletedEvent), len(bus.syncCompletedHandlers))
	copy(handlers, bus.syncCompletedHandlers)
	bus.mu.RUnlock()

	// Execute handlers asynchronously to avoid blocking the publisher
	for _, handler := range handlers {
		go func(h func(events.SyncCompletedEvent)) {
			defer func() {
				if r := recover(); r != nil {
					bus.logger.Error("Event handler panicked in SyncCompleted",
						"job_group_id", event.Request.GroupID,
						"panic", r)
				}
			}()
			h(event)
		}(handler)
	}
}

func (bus *SyncEventBus) PublishSyncFailed(event events.SyncFailedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.SyncFailedEvent), len(bus.syncFailedHandlers))
	copy(handlers, bus.syncFailedHandlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		go func(h func(events.SyncFailedEvent)) {
			defer func() {
				if r := recover(); r != nil {
					bus.logger.Error("Event handler panicked in SyncFailed",
						"job_group_id", event.Request.GroupID,
						"error", event.Error,
						"panic", r)
				}
			}()
			h(event)
		}(handler)
	}
}

func (bus *SyncEventBus) PublishReindexCompleted(event events.ReindexCompletedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.ReindexCompletedEvent), len(bus.reindexCompletedHandlers))
	copy(handlers, bus.reindexCompletedHandlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		go func(h func(events.ReindexCompletedEvent)) {
			defer func() {
				if r := recover(); r != nil {
					bus.logger.Error("Event handler panicked in ReindexCompleted",
						"job_group_id", event.GroupID,
						"panic", r)
				}
			}()
			h(event)
		}(handler)
	}
}

func (bus *SyncEventBus) PublishReindexFailed(event events.ReindexFailedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.ReindexFailedEvent), len(bus.reindexFailedHandlers))
	copy(handlers, bus.reindexFailedHandlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		go func(h func(events.ReindexFailedEvent)) {
			defer func() {
				if r := recover(); r != nil {
					bus.logger.Error("Event handler panicked in ReindexFailed",
						"job_group_id", event.GroupID,
						"error", event.Error,
						"panic", r)
				}
			}()
			h(event)
		}(handler)
	}
}
