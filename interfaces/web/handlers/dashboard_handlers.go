package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"jobdeck/application"
	"jobdeck/domain/dashboard"
	"jobdeck/interfaces/web/presenters"
	"jobdeck/interfaces/web/templates/views"
	"jobdeck/logging"
)

// DashboardHandlers routes user read intents into the fetch orchestrator and
// renders the resulting view state. Handlers stay thin: state policy lives in
// the application layer, markup in templates, mapping in presenters.
type DashboardHandlers struct {
	orchestrator   *application.FetchOrchestrator
	groupPresenter *presenters.GroupPresenter
	statsPresenter *presenters.StatsPresenter
	syncPresenter  *presenters.SyncPresenter
	logger         *logging.Logger
}

// NewDashboardHandlers creates the read-side handler set.
func NewDashboardHandlers(
	orchestrator *application.FetchOrchestrator,
	groupPresenter *presenters.GroupPresenter,
	statsPresenter *presenters.StatsPresenter,
	syncPresenter *presenters.SyncPresenter,
) *DashboardHandlers {
	return &DashboardHandlers{
		orchestrator:   orchestrator,
		groupPresenter: groupPresenter,
		statsPresenter: statsPresenter,
		syncPresenter:  syncPresenter,
		logger:         logging.Default().WithComponent("dashboard_handler"),
	}
}

// pageData assembles the current view state of every resource.
func (h *DashboardHandlers) pageData() views.PageData {
	state := h.orchestrator.State()
	return views.PageData{
		Stats:  h.statsPresenter.FormatStats(state.Stats.View()),
		Groups: h.groupPresenter.FormatGroupTable(state.JobGroups.View(), state.Params()),
		SyncForm: presenters.SyncFormView{
			Countries: state.Countries.View().Data,
			InFlight:  state.SyncResult.View().Loading,
		},
		LastSync: h.syncPresenter.FormatSyncResult(state.SyncResult.View().Data),
		Reindex: presenters.ReindexFormView{
			InFlight: state.Reindex.View().Loading,
		},
	}
}

// Home renders the full dashboard page. HTMX-originated requests get just the
// body so a boosted navigation never nests a second page shell.
func (h *DashboardHandlers) Home(w http.ResponseWriter, r *http.Request) {
	if IsHTMXRequest(r) {
		RenderResponse(r.Context(), w, r, views.DashboardBody(h.pageData()))
		return
	}
	RenderResponse(r.Context(), w, r, views.DashboardPage(h.pageData()))
}

// DashboardPartial re-renders the dashboard body from current state without
// issuing any fetch. Used by SSE-triggered refreshes.
func (h *DashboardHandlers) DashboardPartial(w http.ResponseWriter, r *http.Request) {
	RenderResponse(r.Context(), w, r, views.DashboardBody(h.pageData()))
}

// Refresh is the manual refresh intent: job groups plus stats.
func (h *DashboardHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	h.orchestrator.Refresh(r.Context())
	RenderResponse(r.Context(), w, r, views.DashboardBody(h.pageData()))
}

// FilterGroups applies a status filter change and renders the table.
func (h *DashboardHandlers) FilterGroups(w http.ResponseWriter, r *http.Request) {
	filter := dashboard.StatusFilter(r.URL.Query().Get("status"))
	switch filter {
	case dashboard.StatusFilterOpen, dashboard.StatusFilterClose:
	default:
		filter = dashboard.StatusFilterAll
	}

	view := h.orchestrator.SetStatusFilter(r.Context(), filter)
	h.renderGroupTable(w, r, view)
}

// SortGroups applies a sort key change and renders the table.
func (h *DashboardHandlers) SortGroups(w http.ResponseWriter, r *http.Request) {
	key := dashboard.SortKey(r.URL.Query().Get("sort_by"))
	switch key {
	case dashboard.SortByDateCreated, dashboard.SortByStatus:
	default:
		key = dashboard.SortByDateCreated
	}

	view := h.orchestrator.SetSortBy(r.Context(), key)
	h.renderGroupTable(w, r, view)
}

// ToggleSortOrder flips the sort direction and renders the table.
func (h *DashboardHandlers) ToggleSortOrder(w http.ResponseWriter, r *http.Request) {
	view := h.orchestrator.ToggleSortOrder(r.Context())
	h.renderGroupTable(w, r, view)
}

// SearchGroups applies a search change and renders the table.
func (h *DashboardHandlers) SearchGroups(w http.ResponseWriter, r *http.Request) {
	view := h.orchestrator.SetSearch(r.Context(), r.URL.Query().Get("search"))
	h.renderGroupTable(w, r, view)
}

// GroupsPartial renders the table from current state without fetching.
func (h *DashboardHandlers) GroupsPartial(w http.ResponseWriter, r *http.Request) {
	h.renderGroupTable(w, r, h.orchestrator.State().JobGroups.View())
}

// GroupModal loads one group's jobs and renders the detail modal.
func (h *DashboardHandlers) GroupModal(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if unescaped, err := url.PathUnescape(groupID); err == nil {
		groupID = unescaped
	}
	if groupID == "" {
		http.Error(w, "missing group ID", http.StatusBadRequest)
		return
	}

	view := h.orchestrator.OpenGroupDetail(r.Context(), groupID)
	RenderResponse(r.Context(), w, r, views.GroupDetailModal(h.groupPresenter.FormatGroupDetail(view)))
}

func (h *DashboardHandlers) renderGroupTable(w http.ResponseWriter, r *http.Request, view application.View[[]dashboard.JobGroupSummary]) {
	table := h.groupPresenter.FormatGroupTable(view, h.orchestrator.State().Params())
	RenderResponse(r.Context(), w, r, views.GroupTable(table))
}
