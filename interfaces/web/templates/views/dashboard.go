// Package views holds the dashboard page and its HTMX partial components.
// Components are plain templ.ComponentFunc builders; every dynamic value is
// escaped before it reaches the writer.
package views

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"jobdeck/interfaces/web/presenters"
)

func esc(s string) string { return templ.EscapeString(s) }

func component(render func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(w)
	})
}

// PageData bundles everything the full dashboard page needs on first render.
type PageData struct {
	Stats    presenters.StatsView
	Groups   presenters.JobGroupTableView
	SyncForm presenters.SyncFormView
	LastSync presenters.SyncResultView
	Reindex  presenters.ReindexFormView
}

// DashboardPage renders the full page shell with all sections inline.
// Subsequent updates arrive as HTMX partial swaps.
func DashboardPage(data PageData) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString(`<title>Job Sync Dashboard</title>`)
		b.WriteString(`<link rel="stylesheet" href="/assets/app.css"/>`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/sse.js"></script>`)
		b.WriteString(`</head><body hx-ext="sse" sse-connect="/events">`)
		b.WriteString(`<div id="toasts" sse-swap="toast" hx-swap="afterbegin"></div>`)
		b.WriteString(`<header class="topbar"><h1>Job Sync Dashboard</h1>`)
		b.WriteString(`<button class="btn" hx-post="/refresh" hx-target="#dashboard" hx-swap="innerHTML">Refresh</button>`)
		b.WriteString(`</header>`)
		b.WriteString(`<main id="dashboard" hx-get="/partials/dashboard" hx-trigger="sse:dashboard-updated">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := renderDashboardBody(context.Background(), w, data); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// DashboardBody renders the swappable inner content of the dashboard.
func DashboardBody(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderDashboardBody(ctx, w, data)
	})
}

func renderDashboardBody(ctx context.Context, w io.Writer, data PageData) error {
	for _, c := range []templ.Component{
		StatsCards(data.Stats),
		SyncForm(data.SyncForm),
		SyncResultPanel(data.LastSync),
		GroupTable(data.Groups),
		ReindexPanel(data.Reindex),
		// Empty modal slot; openGroupDetail swaps the populated modal in.
		component(func(w io.Writer) error {
			_, err := io.WriteString(w, `<div id="group-modal"></div>`)
			return err
		}),
	} {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// StatsCards renders the four counter cards.
func StatsCards(stats presenters.StatsView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section id="stats" class="stats">`)
		if stats.ErrorMessage != "" {
			fmt.Fprintf(&b, `<p class="warning">%s</p>`, esc(stats.ErrorMessage))
		}
		writeStatCard(&b, "Total Groups", stats.TotalGroups)
		writeStatCard(&b, "Open Groups", stats.OpenGroups)
		writeStatCard(&b, "Total Jobs", stats.TotalJobs)
		writeStatCard(&b, "Open Jobs", stats.OpenJobs)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeStatCard(b *strings.Builder, label string, value int) {
	fmt.Fprintf(b, `<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">%s</span></div>`, value, esc(label))
}

// GroupTable renders the job group table with its filter controls.
func GroupTable(table presenters.JobGroupTableView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section id="groups" class="groups">`)

		// Filter bar: every control targets the table section itself.
		b.WriteString(`<div class="filter-bar">`)
		b.WriteString(`<select name="status" hx-get="/partials/groups/filter" hx-target="#groups" hx-swap="outerHTML">`)
		for _, status := range []string{"all", "Open", "Close"} {
			selected := ""
			if table.StatusFilter == status {
				selected = ` selected`
			}
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, esc(status), selected, esc(status))
		}
		b.WriteString(`</select>`)
		fmt.Fprintf(&b,
			`<input type="search" name="search" value="%s" placeholder="Search job groups" `+
				`hx-get="/partials/groups/search" hx-target="#groups" hx-swap="outerHTML" `+
				`hx-trigger="keyup changed delay:300ms, search"/>`,
			esc(table.Search))
		b.WriteString(`</div>`)

		if table.ErrorMessage != "" {
			fmt.Fprintf(&b, `<p class="warning">%s</p>`, esc(table.ErrorMessage))
		}
		if table.Loading {
			b.WriteString(`<p class="loading">Loading…</p>`)
		}

		b.WriteString(`<table><thead><tr>`)
		b.WriteString(`<th>Job Group</th>`)
		writeSortHeader(&b, "Status", "status", table)
		writeSortHeader(&b, "Created", "date_created", table)
		b.WriteString(`<th>Jobs</th></tr></thead><tbody>`)

		if table.Empty {
			b.WriteString(`<tr><td colspan="4" class="empty">No job groups found</td></tr>`)
		}
		for _, row := range table.Rows {
			fmt.Fprintf(&b,
				`<tr hx-get="/groups/%s/modal" hx-target="#group-modal" hx-swap="innerHTML">`+
					`<td>%s</td><td><span class="badge %s">%s</span></td><td>%s</td><td>%d</td></tr>`,
				esc(url.PathEscape(row.GroupID)), esc(row.GroupID), esc(row.StatusClass),
				esc(row.Status), esc(row.DateCreated), row.JobCount)
		}
		b.WriteString(`</tbody></table></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeSortHeader(b *strings.Builder, label, key string, table presenters.JobGroupTableView) {
	indicator := ""
	endpoint := fmt.Sprintf("/partials/groups/sort?sort_by=%s", key)
	if table.SortBy == key {
		// Clicking the active column toggles direction.
		endpoint = "/partials/groups/order/toggle"
		if table.SortOrder == "asc" {
			indicator = " &#9650;"
		} else {
			indicator = " &#9660;"
		}
	}
	fmt.Fprintf(b, `<th><a hx-get="%s" hx-target="#groups" hx-swap="outerHTML">%s%s</a></th>`,
		endpoint, esc(label), indicator)
}

// GroupDetailModal renders the jobs of one group.
func GroupDetailModal(detail presenters.GroupDetailView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="modal-backdrop"><div class="modal">`)
		fmt.Fprintf(&b, `<header><h2>%s</h2>`, esc(detail.GroupID))
		b.WriteString(`<button class="btn-close" onclick="document.getElementById('group-modal').innerHTML=''">&times;</button></header>`)
		if detail.Loading {
			b.WriteString(`<p class="loading">Loading…</p>`)
		}
		if detail.ErrorMessage != "" {
			fmt.Fprintf(&b, `<p class="warning">%s</p>`, esc(detail.ErrorMessage))
		}
		if detail.Empty {
			b.WriteString(`<p class="empty">No jobs in this group</p>`)
		}
		if len(detail.Jobs) > 0 {
			writeJobTable(&b, detail.Jobs)
		}
		b.WriteString(`</div></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeJobTable(b *strings.Builder, jobs []presenters.JobRowView) {
	b.WriteString(`<table><thead><tr><th>Post</th><th>Title</th><th>Email</th><th>Category</th><th>Country</th><th>Status</th><th>Created</th></tr></thead><tbody>`)
	for _, job := range jobs {
		title := esc(job.Title)
		if job.ApplyLink != "" {
			title = fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`,
				esc(job.ApplyLink), esc(job.Title))
		}
		fmt.Fprintf(b,
			`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
				`<td><span class="badge %s">%s</span></td><td>%s</td></tr>`,
			esc(job.PostID), title, esc(job.Email), esc(job.Category), esc(job.Country),
			esc(job.StatusClass), esc(job.Status), esc(job.DateCreated))
	}
	b.WriteString(`</tbody></table>`)
}

// SyncForm renders the job group sync form.
func SyncForm(form presenters.SyncFormView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section id="sync" class="sync">`)
		b.WriteString(`<form hx-post="/sync" hx-target="#sync-result" hx-swap="outerHTML">`)
		b.WriteString(`<input type="text" name="job_group_id" placeholder="Job group ID" required/>`)
		b.WriteString(`<select name="status"><option value="Open">Open</option><option value="Close">Close</option></select>`)
		b.WriteString(`<select name="country"><option value="">Any country</option>`)
		for _, country := range form.Countries {
			fmt.Fprintf(&b, `<option value="%s">%s</option>`, esc(country), esc(country))
		}
		b.WriteString(`</select>`)
		disabled := ""
		if form.InFlight {
			disabled = ` disabled`
		}
		fmt.Fprintf(&b, `<button class="btn" type="submit"%s>Sync</button>`, disabled)
		if form.ErrorMessage != "" {
			fmt.Fprintf(&b, `<p class="warning">%s</p>`, esc(form.ErrorMessage))
		}
		b.WriteString(`</form></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// SyncResultPanel renders the outcome of the last successful sync. Hidden
// unless the sync succeeded with a non-empty job list.
func SyncResultPanel(result presenters.SyncResultView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section id="sync-result" class="sync-result">`)
		if result.ErrorMessage != "" {
			fmt.Fprintf(&b, `<p class="warning">%s</p>`, esc(result.ErrorMessage))
		}
		if result.Visible {
			fmt.Fprintf(&b, `<p class="success">%s (%d rows)</p>`, esc(result.Message), result.RowsAffected)
			writeJobTable(&b, result.Jobs)
		}
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ReindexPanel renders the secret-code-gated admin panel. Inputs are echoed
// back after a failed attempt and cleared after a successful one.
func ReindexPanel(form presenters.ReindexFormView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section id="reindex" class="reindex"><h2>Admin</h2>`)
		b.WriteString(`<form hx-post="/reindex" hx-target="#reindex" hx-swap="outerHTML">`)
		fmt.Fprintf(&b, `<input type="password" name="secret_code" value="%s" placeholder="Secret code" required/>`, esc(form.SecretCode))
		fmt.Fprintf(&b, `<input type="text" name="job_group_id" value="%s" placeholder="Job group ID (optional)"/>`, esc(form.GroupID))
		disabled := ""
		if form.InFlight {
			disabled = ` disabled`
		}
		fmt.Fprintf(&b, `<button class="btn" type="submit"%s>Reindex</button>`, disabled)
		if form.ErrorMessage != "" {
			fmt.Fprintf(&b, `<p class="warning">%s</p>`, esc(form.ErrorMessage))
		}
		b.WriteString(`</form></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
