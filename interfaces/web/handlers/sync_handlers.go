package handlers

import (
	"errors"
	"net/http"

	"jobdeck/application"
	"jobdeck/domain/contracts"
	"jobdeck/domain/dashboard"
	"jobdeck/interfaces/web/presenters"
	"jobdeck/interfaces/web/templates/views"
	"jobdeck/logging"
)

// SyncHandlers routes the two write intents into the sync command service.
type SyncHandlers struct {
	syncCommand   *application.SyncCommand
	syncPresenter *presenters.SyncPresenter
	logger        *logging.Logger
}

// NewSyncHandlers creates the write-side handler set.
func NewSyncHandlers(syncCommand *application.SyncCommand, syncPresenter *presenters.SyncPresenter) *SyncHandlers {
	return &SyncHandlers{
		syncCommand:   syncCommand,
		syncPresenter: syncPresenter,
		logger:        logging.Default().WithComponent("sync_handler"),
	}
}

// SubmitSync handles the sync form. Validation failures and backend errors
// render an error fragment; the previously shown result is only replaced on
// success.
func (h *SyncHandlers) SubmitSync(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}

	groupID := r.FormValue("job_group_id")
	status := dashboard.JobStatus(r.FormValue("status"))
	country := r.FormValue("country")

	result, err := h.syncCommand.Sync(r.Context(), groupID, status, country)
	if err != nil {
		var validationErr *dashboard.ValidationError
		message := contracts.ErrorDetail(err, "Failed to sync jobs")
		if errors.As(err, &validationErr) {
			message = "Job group ID is required"
		}
		h.logger.Error("Sync request failed", "job_group_id", groupID, "error", err)
		RenderResponse(r.Context(), w, r, views.SyncResultPanel(h.syncPresenter.FormatSyncError(message)))
		return
	}

	RenderResponse(r.Context(), w, r, views.SyncResultPanel(h.syncPresenter.FormatSyncResult(result)))
}

// SubmitReindex handles the admin reindex form. On success the inputs are
// cleared; on failure they are echoed back exactly as typed so the user can
// retry without re-typing.
func (h *SyncHandlers) SubmitReindex(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}

	secretCode := r.FormValue("secret_code")
	groupID := r.FormValue("job_group_id")

	if _, err := h.syncCommand.Reindex(r.Context(), secretCode, groupID); err != nil {
		var validationErr *dashboard.ValidationError
		message := contracts.ErrorDetail(err, "Reindex failed")
		if errors.As(err, &validationErr) {
			message = "Secret code is required"
		}
		h.logger.Error("Reindex request failed", "job_group_id", groupID, "error", err)
		form := h.syncPresenter.FormatReindexForm(secretCode, groupID, message, false)
		RenderResponse(r.Context(), w, r, views.ReindexPanel(form))
		return
	}

	RenderResponse(r.Context(), w, r, views.ReindexPanel(presenters.ReindexFormView{}))
}
