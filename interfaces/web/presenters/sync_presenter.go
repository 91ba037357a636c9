package presenters

import (
	"fmt"

	"jobdeck/domain/dashboard"
)

// SyncResultView represents the sync outcome panel. Visible only when the
// last sync succeeded and returned at least one job.
type SyncResultView struct {
	Visible      bool         `json:"visible"`
	Message      string       `json:"message,omitempty"`
	RowsAffected int          `json:"rows_affected"`
	Jobs         []JobRowView `json:"jobs,omitempty"`
	ErrorMessage string       `json:"error,omitempty"`
}

// FormatSyncError builds the panel view model for a failed or rejected sync
// attempt. The previously stored result is rendered separately and stays
// untouched.
func (p *SyncPresenter) FormatSyncError(message string) SyncResultView {
	return SyncResultView{ErrorMessage: message}
}

// SyncFormView represents the sync form with its in-flight state.
type SyncFormView struct {
	Countries    []string `json:"countries"`
	InFlight     bool     `json:"in_flight"`
	ErrorMessage string   `json:"error,omitempty"`
}

// ReindexFormView represents the admin reindex panel. Inputs are echoed back
// on failure so the user can retry without re-typing; cleared on success.
type ReindexFormView struct {
	SecretCode   string `json:"-"`
	GroupID      string `json:"job_group_id,omitempty"`
	InFlight     bool   `json:"in_flight"`
	ErrorMessage string `json:"error,omitempty"`
}

// SyncPresenter transforms sync command outcomes into view models and
// notification messages.
type SyncPresenter struct{}

// NewSyncPresenter creates a sync presenter.
func NewSyncPresenter() *SyncPresenter {
	return &SyncPresenter{}
}

// FormatSyncResult converts the stored sync result to its panel view model.
func (p *SyncPresenter) FormatSyncResult(result *dashboard.SyncResult) SyncResultView {
	if result == nil || !result.Success || len(result.Jobs) == 0 {
		return SyncResultView{}
	}
	return SyncResultView{
		Visible:      true,
		Message:      result.Message,
		RowsAffected: result.RowsAffected,
		Jobs:         FormatJobRows(result.Jobs),
	}
}

// FormatSyncSuccessMessage builds the success notification. The embeddings
// clause appears only when the backend regenerated embeddings.
func (p *SyncPresenter) FormatSyncSuccessMessage(result *dashboard.SyncResult) string {
	if result.HasEmbeddingsUpdate() {
		return fmt.Sprintf("%s (%d embeddings updated)", result.Message, *result.EmbeddingsUpdated)
	}
	return result.Message
}

// FormatReindexForm builds the reindex panel view model after an attempt.
func (p *SyncPresenter) FormatReindexForm(secretCode, groupID, errorMessage string, inFlight bool) ReindexFormView {
	return ReindexFormView{
		SecretCode:   secretCode,
		GroupID:      groupID,
		InFlight:     inFlight,
		ErrorMessage: errorMessage,
	}
}
