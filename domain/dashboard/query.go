package dashboard

import (
	"net/url"
	"strings"
)

// StatusFilter narrows the job group list by status. "all" disables the filter.
type StatusFilter string

const (
	StatusFilterAll   StatusFilter = "all"
	StatusFilterOpen  StatusFilter = "Open"
	StatusFilterClose StatusFilter = "Close"
)

// SortKey selects the column the job group list is ordered by.
type SortKey string

const (
	SortByDateCreated SortKey = "date_created"
	SortByStatus      SortKey = "status"
)

// SortOrder is the direction of the current sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Toggle returns the opposite sort order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// QueryParams is the current job group list view configuration.
// Mutated only by user filter/search/sort intents.
type QueryParams struct {
	Status StatusFilter
	SortBy SortKey
	Order  SortOrder
	Search string
}

// DefaultQueryParams returns the initial list view configuration.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		Status: StatusFilterAll,
		SortBy: SortByDateCreated,
		Order:  SortDesc,
		Search: "",
	}
}

// Values encodes the params for the job-groups backend query. The status
// filter is omitted when "all", sort key and order are always included, and
// the search term is included only if non-empty after trimming.
func (p QueryParams) Values() url.Values {
	v := url.Values{}
	if p.Status != StatusFilterAll && p.Status != "" {
		v.Set("status", string(p.Status))
	}
	v.Set("sort_by", string(p.SortBy))
	v.Set("sort_order", string(p.Order))
	if search := strings.TrimSpace(p.Search); search != "" {
		v.Set("search", search)
	}
	return v
}

// ParamPatch is a partial parameter change. Nil fields are left untouched.
type ParamPatch struct {
	Status *StatusFilter
	SortBy *SortKey
	Order  *SortOrder
	Search *string
}

// Apply merges the patch into a copy of the params.
func (p QueryParams) Apply(patch ParamPatch) QueryParams {
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.SortBy != nil {
		p.SortBy = *patch.SortBy
	}
	if patch.Order != nil {
		p.Order = *patch.Order
	}
	if patch.Search != nil {
		p.Search = *patch.Search
	}
	return p
}
