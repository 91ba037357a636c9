package application

import (
	"context"
	"sync"

	"jobdeck/domain/dashboard"
	"jobdeck/domain/events"
)

// fakeGateway lets each test script gateway behavior per operation. Unset
// operations return empty results.
type fakeGateway struct {
	listJobGroupsFn   func(ctx context.Context, params dashboard.QueryParams) ([]dashboard.JobGroupSummary, error)
	getStatsFn        func(ctx context.Context) (dashboard.StatsSnapshot, error)
	listCountriesFn   func(ctx context.Context) ([]string, error)
	listJobsByGroupFn func(ctx context.Context, groupID string) ([]dashboard.JobRecord, error)
	syncJobsFn        func(ctx context.Context, req dashboard.SyncRequest) (*dashboard.SyncResult, error)
	reindexAllFn      func(ctx context.Context, req dashboard.ReindexRequest) (string, error)
}

func (g *fakeGateway) ListJobGroups(ctx context.Context, params dashboard.QueryParams) ([]dashboard.JobGroupSummary, error) {
	if g.listJobGroupsFn != nil {
		return g.listJobGroupsFn(ctx, params)
	}
	return nil, nil
}

func (g *fakeGateway) GetStats(ctx context.Context) (dashboard.StatsSnapshot, error) {
	if g.getStatsFn != nil {
		return g.getStatsFn(ctx)
	}
	return dashboard.StatsSnapshot{}, nil
}

func (g *fakeGateway) ListCountries(ctx context.Context) ([]string, error) {
	if g.listCountriesFn != nil {
		return g.listCountriesFn(ctx)
	}
	return nil, nil
}

func (g *fakeGateway) ListJobsByGroup(ctx context.Context, groupID string) ([]dashboard.JobRecord, error) {
	if g.listJobsByGroupFn != nil {
		return g.listJobsByGroupFn(ctx, groupID)
	}
	return nil, nil
}

func (g *fakeGateway) SyncJobs(ctx context.Context, req dashboard.SyncRequest) (*dashboard.SyncResult, error) {
	if g.syncJobsFn != nil {
		return g.syncJobsFn(ctx, req)
	}
	return &dashboard.SyncResult{Success: true}, nil
}

func (g *fakeGateway) ReindexAll(ctx context.Context, req dashboard.ReindexRequest) (string, error) {
	if g.reindexAllFn != nil {
		return g.reindexAllFn(ctx, req)
	}
	return "", nil
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu               sync.Mutex
	syncCompleted    []events.SyncCompletedEvent
	syncFailed       []events.SyncFailedEvent
	reindexCompleted []events.ReindexCompletedEvent
	reindexFailed    []events.ReindexFailedEvent
}

func (p *capturingPublisher) PublishSyncCompleted(event events.SyncCompletedEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.syncCompleted = append(p.syncCompleted, event)
}

func (p *capturingPublisher) PublishSyncFailed(event events.SyncFailedEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.syncFailed = append(p.syncFailed, event)
}

func (p *capturingPublisher) PublishReindexCompleted(event events.ReindexCompletedEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reindexCompleted = append(p.reindexCompleted, event)
}

func (p *capturingPublisher) PublishReindexFailed(event events.ReindexFailedEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reindexFailed = append(p.reindexFailed, event)
}

// capturingNotifier records notifications for assertions.
type capturingNotifier struct {
	mu       sync.Mutex
	messages []string
	severity []Severity
}

func (n *capturingNotifier) Notify(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	n.severity = append(n.severity, severity)
}
