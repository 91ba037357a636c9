package backendapi

// Wire DTOs for the backend JSON surface. Field names follow the backend
// schema, which the dashboard treats as stable.

type jobGroupsResponse struct {
	JobGroups []jobGroupData `json:"job_groups"`
}

type jobGroupData struct {
	JobGroupID  string  `json:"job_group_id"`
	Status      *string `json:"status"`
	DateCreated *string `json:"date_created"`
	JobCount    int     `json:"job_count"`
}

// Stats counters. The backend calls groups "trips".
type statsResponse struct {
	TotalTrips     int `json:"total_trips"`
	TotalOpenTrips int `json:"total_open_trips"`
	TotalJobs      int `json:"total_jobs"`
	TotalOpenJobs  int `json:"total_open_jobs"`
}

type countriesResponse struct {
	Countries []string `json:"countries"`
}

type jobsResponse struct {
	Jobs []jobData `json:"jobs"`
}

type jobData struct {
	JobGroupID  string  `json:"job_group_id"`
	JobPostID   int64   `json:"job_post_id"`
	JobTitle    string  `json:"job_title"`
	Email       *string `json:"email"`
	ApplyLink   *string `json:"apply_link"`
	ImageLink   *string `json:"image_link"`
	Category    *string `json:"category"`
	Country     *string `json:"country"`
	Status      *string `json:"status"`
	DateCreated *string `json:"date_created"`
}

type syncJobsRequest struct {
	JobGroupID string  `json:"job_group_id"`
	Status     string  `json:"status"`
	Country    *string `json:"country,omitempty"`
}

type syncJobsResponse struct {
	Success           bool      `json:"success"`
	Message           string    `json:"message"`
	RowsAffected      int       `json:"rows_affected"`
	Jobs              []jobData `json:"jobs"`
	EmbeddingsUpdated *int      `json:"embeddings_updated,omitempty"`
}

type reindexRequest struct {
	SecretCode string `json:"secret_code"`
	JobGroupID string `json:"job_group_id,omitempty"`
}

type reindexResponse struct {
	Message string `json:"message"`
}

// Non-2xx bodies carry a single detail message.
type errorResponse struct {
	Detail string `json:"detail"`
}
