package presenters

import (
	"strconv"

	"jobdeck/application"
	"jobdeck/domain/dashboard"
)

// Job group view data structures

// JobGroupRowView represents one table row.
type JobGroupRowView struct {
	GroupID     string `json:"job_group_id"`
	Status      string `json:"status"`
	StatusClass string `json:"-"`
	DateCreated string `json:"date_created"`
	JobCount    int    `json:"job_count"`
}

// JobGroupTableView represents the job group table with its current filter
// configuration, stale-data warning, and empty state.
type JobGroupTableView struct {
	Rows         []JobGroupRowView `json:"job_groups"`
	Loading      bool              `json:"loading"`
	ErrorMessage string            `json:"error,omitempty"`
	Empty        bool              `json:"empty"`

	StatusFilter string `json:"status_filter"`
	SortBy       string `json:"sort_by"`
	SortOrder    string `json:"sort_order"`
	Search       string `json:"search"`
}

// GroupPresenter transforms job group domain data into UI-ready formats.
type GroupPresenter struct{}

// NewGroupPresenter creates a group presenter.
func NewGroupPresenter() *GroupPresenter {
	return &GroupPresenter{}
}

// FormatGroupTable converts the job groups view and its params to a table view model.
func (p *GroupPresenter) FormatGroupTable(
	view application.View[[]dashboard.JobGroupSummary],
	params dashboard.QueryParams,
) JobGroupTableView {
	rows := make([]JobGroupRowView, 0, len(view.Data))
	for _, group := range view.Data {
		rows = append(rows, JobGroupRowView{
			GroupID:     group.GroupID,
			Status:      formatStatus(group.Status),
			StatusClass: statusClass(group.Status),
			DateCreated: formatDate(group.DateCreated),
			JobCount:    group.JobCount,
		})
	}

	table := JobGroupTableView{
		Rows:         rows,
		Loading:      view.Loading,
		Empty:        len(rows) == 0 && view.Err == nil && !view.Loading,
		StatusFilter: string(params.Status),
		SortBy:       string(params.SortBy),
		SortOrder:    string(params.Order),
		Search:       params.Search,
	}
	if view.Err != nil {
		table.ErrorMessage = "Failed to load job groups, showing last known data"
	}
	return table
}

// JobRowView represents one job inside the detail modal or sync result.
type JobRowView struct {
	PostID      string `json:"job_post_id"`
	Title       string `json:"job_title"`
	Email       string `json:"email,omitempty"`
	ApplyLink   string `json:"apply_link,omitempty"`
	ImageLink   string `json:"image_link,omitempty"`
	Category    string `json:"category,omitempty"`
	Country     string `json:"country,omitempty"`
	Status      string `json:"status,omitempty"`
	StatusClass string `json:"-"`
	DateCreated string `json:"date_created,omitempty"`
}

// GroupDetailView represents the modal for one group.
type GroupDetailView struct {
	GroupID      string       `json:"job_group_id"`
	Jobs         []JobRowView `json:"jobs"`
	Loading      bool         `json:"loading"`
	ErrorMessage string       `json:"error,omitempty"`
	Empty        bool         `json:"empty"`
}

// FormatGroupDetail converts the modal view to its view model.
func (p *GroupPresenter) FormatGroupDetail(view application.View[application.GroupDetail]) GroupDetailView {
	detail := GroupDetailView{
		GroupID: view.Data.GroupID,
		Jobs:    FormatJobRows(view.Data.Jobs),
		Loading: view.Loading,
	}
	detail.Empty = len(detail.Jobs) == 0 && view.Err == nil && !view.Loading
	if view.Err != nil {
		detail.ErrorMessage = "Failed to load jobs for this group"
	}
	return detail
}

// FormatJobRows converts job records to row view models.
func FormatJobRows(jobs []dashboard.JobRecord) []JobRowView {
	rows := make([]JobRowView, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, JobRowView{
			PostID:      strconv.FormatInt(job.PostID, 10),
			Title:       job.Title,
			Email:       strOrEmpty(job.Email),
			ApplyLink:   strOrEmpty(job.ApplyLink),
			ImageLink:   strOrEmpty(job.ImageLink),
			Category:    strOrEmpty(job.Category),
			Country:     strOrEmpty(job.Country),
			Status:      formatStatus(job.Status),
			StatusClass: statusClass(job.Status),
			DateCreated: formatDate(job.DateCreated),
		})
	}
	return rows
}

// Shared formatting helpers for nullable backend fields.

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatStatus(status *dashboard.JobStatus) string {
	if status == nil {
		return "Unknown"
	}
	return string(*status)
}

func statusClass(status *dashboard.JobStatus) string {
	if status == nil {
		return "badge-unknown"
	}
	switch *status {
	case dashboard.JobStatusOpen:
		return "badge-open"
	case dashboard.JobStatusClose:
		return "badge-close"
	default:
		return "badge-unknown"
	}
}

func formatDate(date *string) string {
	if date == nil || *date == "" {
		return "-"
	}
	return *date
}
