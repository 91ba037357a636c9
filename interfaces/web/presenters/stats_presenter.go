package presenters

import (
	"jobdeck/application"
	"jobdeck/domain/dashboard"
)

// StatsView represents the dashboard counter cards.
type StatsView struct {
	TotalGroups  int    `json:"total_trips"`
	OpenGroups   int    `json:"total_open_trips"`
	TotalJobs    int    `json:"total_jobs"`
	OpenJobs     int    `json:"total_open_jobs"`
	Loading      bool   `json:"loading"`
	ErrorMessage string `json:"error,omitempty"`
}

// StatsPresenter transforms stats snapshots into the card view model.
type StatsPresenter struct{}

// NewStatsPresenter creates a stats presenter.
func NewStatsPresenter() *StatsPresenter {
	return &StatsPresenter{}
}

// FormatStats converts the stats view to its view model.
func (p *StatsPresenter) FormatStats(view application.View[dashboard.StatsSnapshot]) StatsView {
	stats := StatsView{
		TotalGroups: view.Data.TotalGroups,
		OpenGroups:  view.Data.OpenGroups,
		TotalJobs:   view.Data.TotalJobs,
		OpenJobs:    view.Data.OpenJobs,
		Loading:     view.Loading,
	}
	if view.Err != nil {
		stats.ErrorMessage = "Stats may be out of date"
	}
	return stats
}
