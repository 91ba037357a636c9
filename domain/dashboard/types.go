// Package dashboard holds the pure view-domain entities for the job sync
// dashboard: job records, group summaries, stats, and the command payloads
// submitted against the backend.
package dashboard

// JobStatus is the lifecycle status reported by the backend for a job or group.
type JobStatus string

const (
	JobStatusOpen  JobStatus = "Open"
	JobStatusClose JobStatus = "Close"
)

// JobRecord represents one posted job inside a job group.
// Nullable backend columns stay as pointers so an absent value renders as
// absent instead of a zero value.
type JobRecord struct {
	GroupID     string
	PostID      int64
	Title       string
	Email       *string
	ApplyLink   *string
	ImageLink   *string
	Category    *string
	Country     *string
	Status      *JobStatus
	DateCreated *string // YYYY-MM-DD as returned by the backend
}

// JobGroupSummary is the aggregate row shown in the dashboard table.
// One row per distinct group ID; JobCount is computed server-side.
type JobGroupSummary struct {
	GroupID     string
	Status      *JobStatus
	DateCreated *string
	JobCount    int
}

// StatsSnapshot holds the dashboard counter cards. Purely informational;
// nothing ties it to the currently filtered group list.
type StatsSnapshot struct {
	TotalGroups int
	OpenGroups  int
	TotalJobs   int
	OpenJobs    int
}

// SyncResult is the outcome of one sync command. It persists in view state
// until the next sync overwrites it.
type SyncResult struct {
	Success           bool
	Message           string
	RowsAffected      int
	Jobs              []JobRecord
	EmbeddingsUpdated *int
}

// HasEmbeddingsUpdate reports whether the backend regenerated any embeddings
// during the sync. Absent and zero both count as "no".
func (r *SyncResult) HasEmbeddingsUpdate() bool {
	return r.EmbeddingsUpdated != nil && *r.EmbeddingsUpdated > 0
}
