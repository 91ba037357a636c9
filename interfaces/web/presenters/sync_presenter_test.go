package presenters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdeck/application"
	"jobdeck/domain/dashboard"
)

func intPtr(v int) *int { return &v }

func TestFormatSyncResult(t *testing.T) {
	presenter := NewSyncPresenter()

	t.Run("visible only with a successful result carrying jobs", func(t *testing.T) {
		result := &dashboard.SyncResult{
			Success:      true,
			Message:      "Synced 2 jobs",
			RowsAffected: 2,
			Jobs: []dashboard.JobRecord{
				{GroupID: "g123", PostID: 1, Title: "Backend Dev"},
				{GroupID: "g123", PostID: 2, Title: "Frontend Dev"},
			},
		}

		view := presenter.FormatSyncResult(result)

		assert.True(t, view.Visible)
		assert.Equal(t, "Synced 2 jobs", view.Message)
		assert.Equal(t, 2, view.RowsAffected)
		require.Len(t, view.Jobs, 2)
	})

	t.Run("no result yet", func(t *testing.T) {
		view := presenter.FormatSyncResult(nil)
		assert.False(t, view.Visible)
	})

	t.Run("successful sync with zero jobs stays hidden", func(t *testing.T) {
		view := presenter.FormatSyncResult(&dashboard.SyncResult{Success: true, Message: "Nothing to sync"})
		assert.False(t, view.Visible)
	})

	t.Run("unsuccessful result stays hidden", func(t *testing.T) {
		view := presenter.FormatSyncResult(&dashboard.SyncResult{
			Success: false,
			Jobs:    []dashboard.JobRecord{{PostID: 1}},
		})
		assert.False(t, view.Visible)
	})
}

func TestFormatSyncSuccessMessage(t *testing.T) {
	presenter := NewSyncPresenter()

	t.Run("embeddings clause when updated", func(t *testing.T) {
		message := presenter.FormatSyncSuccessMessage(&dashboard.SyncResult{
			Message:           "Synced 5 jobs",
			EmbeddingsUpdated: intPtr(5),
		})
		assert.Equal(t, "Synced 5 jobs (5 embeddings updated)", message)
	})

	t.Run("no clause when absent", func(t *testing.T) {
		message := presenter.FormatSyncSuccessMessage(&dashboard.SyncResult{Message: "Synced 5 jobs"})
		assert.Equal(t, "Synced 5 jobs", message)
	})

	t.Run("no clause when zero", func(t *testing.T) {
		message := presenter.FormatSyncSuccessMessage(&dashboard.SyncResult{
			Message:           "Synced 5 jobs",
			EmbeddingsUpdated: intPtr(0),
		})
		assert.Equal(t, "Synced 5 jobs", message)
	})
}

func TestFormatReindexForm(t *testing.T) {
	presenter := NewSyncPresenter()

	t.Run("failure echoes inputs for retry", func(t *testing.T) {
		form := presenter.FormatReindexForm("s3cret", "g123", "Invalid secret code", false)

		assert.Equal(t, "s3cret", form.SecretCode)
		assert.Equal(t, "g123", form.GroupID)
		assert.Equal(t, "Invalid secret code", form.ErrorMessage)
		assert.False(t, form.InFlight)
	})

	t.Run("success clears the form", func(t *testing.T) {
		form := ReindexFormView{}

		assert.Empty(t, form.SecretCode)
		assert.Empty(t, form.GroupID)
		assert.Empty(t, form.ErrorMessage)
	})
}

func TestFormatStats(t *testing.T) {
	presenter := NewStatsPresenter()

	view := application.View[dashboard.StatsSnapshot]{
		Data: dashboard.StatsSnapshot{TotalGroups: 12, OpenGroups: 4, TotalJobs: 300, OpenJobs: 90},
	}
	stats := presenter.FormatStats(view)
	assert.Equal(t, 12, stats.TotalGroups)
	assert.Equal(t, 90, stats.OpenJobs)
	assert.Empty(t, stats.ErrorMessage)

	view.Err = errors.New("stats endpoint down")
	stats = presenter.FormatStats(view)
	assert.Equal(t, "Stats may be out of date", stats.ErrorMessage)
	assert.Equal(t, 12, stats.TotalGroups, "stale counters stay visible under the warning")
}
