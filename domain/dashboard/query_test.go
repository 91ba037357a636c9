package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_Values(t *testing.T) {
	tests := []struct {
		name     string
		params   QueryParams
		expected map[string]string
		absent   []string
	}{
		{
			name:   "defaults omit status and search",
			params: DefaultQueryParams(),
			expected: map[string]string{
				"sort_by":    "date_created",
				"sort_order": "desc",
			},
			absent: []string{"status", "search"},
		},
		{
			name: "status filter included when not all",
			params: QueryParams{
				Status: StatusFilterOpen,
				SortBy: SortByStatus,
				Order:  SortAsc,
			},
			expected: map[string]string{
				"status":     "Open",
				"sort_by":    "status",
				"sort_order": "asc",
			},
			absent: []string{"search"},
		},
		{
			name: "search trimmed before inclusion",
			params: QueryParams{
				Status: StatusFilterAll,
				SortBy: SortByDateCreated,
				Order:  SortDesc,
				Search: "  group-42  ",
			},
			expected: map[string]string{
				"search": "group-42",
			},
		},
		{
			name: "whitespace-only search omitted",
			params: QueryParams{
				Status: StatusFilterAll,
				SortBy: SortByDateCreated,
				Order:  SortDesc,
				Search: "   ",
			},
			absent: []string{"search"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tt.params.Values()
			for key, want := range tt.expected {
				assert.Equal(t, want, values.Get(key))
			}
			for _, key := range tt.absent {
				assert.False(t, values.Has(key), "expected %q to be absent", key)
			}
		})
	}
}

func TestQueryParams_Apply(t *testing.T) {
	params := DefaultQueryParams()

	status := StatusFilterClose
	patched := params.Apply(ParamPatch{Status: &status})

	assert.Equal(t, StatusFilterClose, patched.Status)
	// Untouched fields carry over
	assert.Equal(t, SortByDateCreated, patched.SortBy)
	assert.Equal(t, SortDesc, patched.Order)
	// Original is unchanged
	assert.Equal(t, StatusFilterAll, params.Status)
}

func TestSortOrder_Toggle(t *testing.T) {
	assert.Equal(t, SortAsc, SortDesc.Toggle())
	assert.Equal(t, SortDesc, SortAsc.Toggle())
	assert.Equal(t, SortDesc, SortDesc.Toggle().Toggle())
}
