package backendapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdeck/domain/contracts"
	"jobdeck/domain/dashboard"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestClient_ListJobGroups_QueryConstruction(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/job-groups", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"job_groups": [
			{"job_group_id": "g123", "status": "Open", "date_created": "2024-03-01", "job_count": 7},
			{"job_group_id": "g456", "status": null, "date_created": null, "job_count": 0}
		]}`))
	})

	params := dashboard.QueryParams{
		Status: dashboard.StatusFilterOpen,
		SortBy: dashboard.SortByDateCreated,
		Order:  dashboard.SortDesc,
		Search: "  engineer  ",
	}
	groups, err := client.ListJobGroups(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, []string{"Open"}, gotQuery["status"])
	assert.Equal(t, []string{"date_created"}, gotQuery["sort_by"])
	assert.Equal(t, []string{"desc"}, gotQuery["sort_order"])
	assert.Equal(t, []string{"engineer"}, gotQuery["search"])

	require.Len(t, groups, 2)
	assert.Equal(t, "g123", groups[0].GroupID)
	require.NotNil(t, groups[0].Status)
	assert.Equal(t, dashboard.JobStatusOpen, *groups[0].Status)
	assert.Equal(t, 7, groups[0].JobCount)
	assert.Nil(t, groups[1].Status)
	assert.Nil(t, groups[1].DateCreated)
}

func TestClient_ListJobGroups_AllStatusOmitsFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.False(t, query.Has("status"))
		assert.False(t, query.Has("search"))
		assert.True(t, query.Has("sort_by"))
		_, _ = w.Write([]byte(`{"job_groups": []}`))
	})

	_, err := client.ListJobGroups(context.Background(), dashboard.DefaultQueryParams())
	require.NoError(t, err)
}

func TestClient_GetStats_MapsTripNames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_trips": 12, "total_open_trips": 4, "total_jobs": 300, "total_open_jobs": 90}`))
	})

	stats, err := client.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dashboard.StatsSnapshot{
		TotalGroups: 12,
		OpenGroups:  4,
		TotalJobs:   300,
		OpenJobs:    90,
	}, stats)
}

func TestClient_ListJobsByGroup_EscapesGroupID(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"jobs": [
			{"job_group_id": "a/b", "job_post_id": 42, "job_title": "Data Engineer",
			 "email": "jobs@example.com", "status": "Open", "date_created": "2024-02-14"}
		]}`))
	})

	jobs, err := client.ListJobsByGroup(context.Background(), "a/b")

	require.NoError(t, err)
	assert.Equal(t, "/api/jobs/a%2Fb", gotPath)
	require.Len(t, jobs, 1)
	assert.Equal(t, int64(42), jobs[0].PostID)
	assert.Equal(t, "Data Engineer", jobs[0].Title)
	require.NotNil(t, jobs[0].Email)
	assert.Equal(t, "jobs@example.com", *jobs[0].Email)
}

func TestClient_SyncJobs_RequestBodyAndResult(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync-jobs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success": true, "message": "Synced 3 jobs", "rows_affected": 3,
			"jobs": [{"job_group_id": "g123", "job_post_id": 1, "job_title": "Backend Dev"}],
			"embeddings_updated": 3}`))
	})

	country := "Germany"
	result, err := client.SyncJobs(context.Background(), dashboard.SyncRequest{
		GroupID: "g123",
		Status:  dashboard.JobStatusOpen,
		Country: &country,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"job_group_id": "g123",
		"status":       "Open",
		"country":      "Germany",
	}, gotBody)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.RowsAffected)
	require.Len(t, result.Jobs, 1)
	assert.True(t, result.HasEmbeddingsUpdate())
}

func TestClient_SyncJobs_OmitsAbsentCountry(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "rows_affected": 0, "jobs": []}`))
	})

	result, err := client.SyncJobs(context.Background(), dashboard.SyncRequest{
		GroupID: "g123",
		Status:  dashboard.JobStatusClose,
	})

	require.NoError(t, err)
	assert.NotContains(t, gotBody, "country")
	assert.False(t, result.HasEmbeddingsUpdate(), "absent embeddings count means no update")
}

func TestClient_ReindexAll(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reindex-all", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message": "Reindexed 120 jobs"}`))
	})

	message, err := client.ReindexAll(context.Background(), dashboard.ReindexRequest{
		SecretCode: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "Reindexed 120 jobs", message)
	assert.Equal(t, map[string]any{"secret_code": "s3cret"}, gotBody)
}

func TestClient_NonSuccessStatusYieldsBackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "Invalid secret code"}`))
	})

	_, err := client.ReindexAll(context.Background(), dashboard.ReindexRequest{SecretCode: "wrong"})

	require.Error(t, err)
	var backendErr *contracts.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusForbidden, backendErr.StatusCode)
	assert.Equal(t, "Invalid secret code", backendErr.Detail)
}

func TestClient_NonJSONErrorBodyStillReportsStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream timed out"))
	})

	_, err := client.GetStats(context.Background())

	require.Error(t, err)
	var backendErr *contracts.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusBadGateway, backendErr.StatusCode)
	assert.Empty(t, backendErr.Detail)
}
