package application

import (
	"context"

	"jobdeck/domain/contracts"
	"jobdeck/domain/dashboard"
	"jobdeck/logging"
)

// FetchOrchestrator translates list parameters and trigger events into
// backend reads, with last-request-wins staleness protection per resource.
// Failures are resource-local: a failed read marks its own resource and
// never blocks or retries anything else.
type FetchOrchestrator struct {
	gateway contracts.BackendGateway
	state   *QueryState
	logger  *logging.Logger
}

// NewFetchOrchestrator creates an orchestrator over the given gateway and state.
func NewFetchOrchestrator(gateway contracts.BackendGateway, state *QueryState) *FetchOrchestrator {
	return &FetchOrchestrator{
		gateway: gateway,
		state:   state,
		logger:  logging.Default().WithComponent("fetch_orchestrator"),
	}
}

// State exposes the store for the presentation layer's read-only views.
func (o *FetchOrchestrator) State() *QueryState {
	return o.state
}

// Start performs the initial load: job groups, stats, and the country list.
// Countries are fetched only here; filter changes never re-fetch them.
func (o *FetchOrchestrator) Start(ctx context.Context) {
	o.RefreshJobGroups(ctx)
	o.RefreshStats(ctx)
	o.refreshCountries(ctx)
}

// RefreshJobGroups issues a job group read for the current parameters. The
// result is applied only if this is still the latest issued request for the
// resource when the response arrives; superseded responses are dropped.
func (o *FetchOrchestrator) RefreshJobGroups(ctx context.Context) View[[]dashboard.JobGroupSummary] {
	// The sequence number is issued before the params snapshot, so the request
	// holding the latest sequence always observes every patch applied before
	// any earlier request began. Reading params first would let an older
	// parameter set ride a newer sequence number and win.
	seq := o.state.JobGroups.Begin()
	params := o.state.Params()

	groups, err := o.gateway.ListJobGroups(ctx, params)
	if err != nil {
		if o.state.JobGroups.SetError(seq, err) {
			o.logger.Error("Job group refresh failed", "error", err)
		} else {
			o.logger.Debug("Dropped stale job group error", "seq", seq)
		}
		return o.state.JobGroups.View()
	}

	if !o.state.JobGroups.SetResult(seq, groups) {
		o.logger.Debug("Dropped stale job group response", "seq", seq)
	}
	return o.state.JobGroups.View()
}

// RefreshStats issues a stats read. Independent lifecycle from job groups.
func (o *FetchOrchestrator) RefreshStats(ctx context.Context) View[dashboard.StatsSnapshot] {
	seq := o.state.Stats.Begin()

	stats, err := o.gateway.GetStats(ctx)
	if err != nil {
		if o.state.Stats.SetError(seq, err) {
			o.logger.Error("Stats refresh failed", "error", err)
		}
		return o.state.Stats.View()
	}

	o.state.Stats.SetResult(seq, stats)
	return o.state.Stats.View()
}

func (o *FetchOrchestrator) refreshCountries(ctx context.Context) {
	seq := o.state.Countries.Begin()

	countries, err := o.gateway.ListCountries(ctx)
	if err != nil {
		if o.state.Countries.SetError(seq, err) {
			o.logger.Error("Country list fetch failed", "error", err)
		}
		return
	}

	o.state.Countries.SetResult(seq, countries)
}

// OpenGroupDetail loads one group's jobs for the modal. Previous modal data
// is cleared up front so the new title never sits over the old group's jobs,
// and the same last-request-wins rule applies across rapid re-opens.
func (o *FetchOrchestrator) OpenGroupDetail(ctx context.Context, groupID string) View[GroupDetail] {
	seq := o.state.Detail.BeginFresh(GroupDetail{GroupID: groupID})

	jobs, err := o.gateway.ListJobsByGroup(ctx, groupID)
	if err != nil {
		if o.state.Detail.SetError(seq, err) {
			o.logger.Error("Group detail fetch failed", "job_group_id", groupID, "error", err)
		} else {
			o.logger.Debug("Dropped stale group detail error", "job_group_id", groupID)
		}
		return o.state.Detail.View()
	}

	if !o.state.Detail.SetResult(seq, GroupDetail{GroupID: groupID, Jobs: jobs}) {
		o.logger.Debug("Dropped stale group detail response", "job_group_id", groupID)
	}
	return o.state.Detail.View()
}

// Refresh is the manual refresh intent: job groups plus stats.
func (o *FetchOrchestrator) Refresh(ctx context.Context) {
	o.RefreshJobGroups(ctx)
	o.RefreshStats(ctx)
}

// Parameter intents. Each mutation re-fetches job groups only; stats and
// countries are untouched by filter changes.

// SetStatusFilter changes the status filter and re-fetches job groups.
func (o *FetchOrchestrator) SetStatusFilter(ctx context.Context, filter dashboard.StatusFilter) View[[]dashboard.JobGroupSummary] {
	o.state.ApplyPatch(dashboard.ParamPatch{Status: &filter})
	return o.RefreshJobGroups(ctx)
}

// SetSortBy changes the sort key and re-fetches job groups.
func (o *FetchOrchestrator) SetSortBy(ctx context.Context, key dashboard.SortKey) View[[]dashboard.JobGroupSummary] {
	o.state.ApplyPatch(dashboard.ParamPatch{SortBy: &key})
	return o.RefreshJobGroups(ctx)
}

// ToggleSortOrder flips the sort direction and re-fetches job groups.
func (o *FetchOrchestrator) ToggleSortOrder(ctx context.Context) View[[]dashboard.JobGroupSummary] {
	o.state.ToggleOrder()
	return o.RefreshJobGroups(ctx)
}

// SetSearch changes the free-text search and re-fetches job groups.
func (o *FetchOrchestrator) SetSearch(ctx context.Context, search string) View[[]dashboard.JobGroupSummary] {
	o.state.ApplyPatch(dashboard.ParamPatch{Search: &search})
	return o.RefreshJobGroups(ctx)
}
