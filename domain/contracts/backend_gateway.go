// Package contracts defines the interfaces the view-state core depends on,
// keeping the application layer independent of the concrete HTTP client.
package contracts

import (
	"context"

	"jobdeck/domain/dashboard"
)

// BackendGateway abstracts the backend HTTP surface the dashboard consumes.
// The core treats every operation as a black box: reads replace view state
// wholesale, writes return an interpreted result or an error.
type BackendGateway interface {
	// Read operations.
	ListJobGroups(ctx context.Context, params dashboard.QueryParams) ([]dashboard.JobGroupSummary, error)
	GetStats(ctx context.Context) (dashboard.StatsSnapshot, error)
	ListCountries(ctx context.Context) ([]string, error)
	ListJobsByGroup(ctx context.Context, groupID string) ([]dashboard.JobRecord, error)

	// Write operations.
	SyncJobs(ctx context.Context, req dashboard.SyncRequest) (*dashboard.SyncResult, error)
	ReindexAll(ctx context.Context, req dashboard.ReindexRequest) (string, error)
}
