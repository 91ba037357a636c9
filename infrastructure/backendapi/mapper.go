package backendapi

import (
	"jobdeck/domain/dashboard"
)

// Mapping from wire DTOs to domain entities. Nullable columns stay nil rather
// than being coerced to zero values.

func mapJobGroup(data jobGroupData) dashboard.JobGroupSummary {
	return dashboard.JobGroupSummary{
		GroupID:     data.JobGroupID,
		Status:      mapStatus(data.Status),
		DateCreated: data.DateCreated,
		JobCount:    data.JobCount,
	}
}

func mapJobGroups(data []jobGroupData) []dashboard.JobGroupSummary {
	groups := make([]dashboard.JobGroupSummary, 0, len(data))
	for _, g := range data {
		groups = append(groups, mapJobGroup(g))
	}
	return groups
}

func mapJob(data jobData) dashboard.JobRecord {
	return dashboard.JobRecord{
		GroupID:     data.JobGroupID,
		PostID:      data.JobPostID,
		Title:       data.JobTitle,
		Email:       data.Email,
		ApplyLink:   data.ApplyLink,
		ImageLink:   data.ImageLink,
		Category:    data.Category,
		Country:     data.Country,
		Status:      mapStatus(data.Status),
		DateCreated: data.DateCreated,
	}
}

func mapJobs(data []jobData) []dashboard.JobRecord {
	jobs := make([]dashboard.JobRecord, 0, len(data))
	for _, j := range data {
		jobs = append(jobs, mapJob(j))
	}
	return jobs
}

func mapStats(data statsResponse) dashboard.StatsSnapshot {
	return dashboard.StatsSnapshot{
		TotalGroups: data.TotalTrips,
		OpenGroups:  data.TotalOpenTrips,
		TotalJobs:   data.TotalJobs,
		OpenJobs:    data.TotalOpenJobs,
	}
}

func mapSyncResult(data syncJobsResponse) *dashboard.SyncResult {
	return &dashboard.SyncResult{
		Success:           data.Success,
		Message:           data.Message,
		RowsAffected:      data.RowsAffected,
		Jobs:              mapJobs(data.Jobs),
		EmbeddingsUpdated: data.EmbeddingsUpdated,
	}
}

func mapStatus(status *string) *dashboard.JobStatus {
	if status == nil || *status == "" {
		return nil
	}
	s := dashboard.JobStatus(*status)
	return &s
}
