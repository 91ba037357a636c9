package application

import (
	"sync"

	"jobdeck/domain/dashboard"
)

// View is a read-only snapshot of one resource's state, handed to the
// presentation layer. Err may be set alongside Data: a failed refresh keeps
// the last good data so the UI can show stale content with a warning.
type View[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Resource holds one remote resource's {data, loading, error} tuple together
// with the sequence number of the latest issued request for it. The sequence
// number is the only ordering discipline the dashboard needs: a response is
// applied only if it belongs to the latest issued request, so a slow stale
// response can never clobber a fresh one.
type Resource[T any] struct {
	mu      sync.Mutex
	data    T
	loading bool
	err     error
	seq     uint64
}

// Begin issues a new request sequence number and marks the resource loading.
// Existing data is kept so the UI can render stale content under a spinner.
func (r *Resource[T]) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.loading = true
	return r.seq
}

// BeginFresh issues a new request sequence number and resets the data to
// fresh, discarding previous content. Used by the group detail modal so a
// rapid double-open never shows the previous group's jobs under a new title.
func (r *Resource[T]) BeginFresh(fresh T) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.loading = true
	r.data = fresh
	r.err = nil
	return r.seq
}

// SetResult applies the response for request seq, replacing data wholesale
// and clearing any error. A stale response (a newer request was issued in
// the meantime) is dropped silently and the method reports false.
func (r *Resource[T]) SetResult(seq uint64, data T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.seq {
		return false
	}
	r.data = data
	r.err = nil
	r.loading = false
	return true
}

// SetError records a failed request for seq. Last good data is preserved and
// the error surfaced alongside it. Stale errors are dropped like stale results.
func (r *Resource[T]) SetError(seq uint64, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.seq {
		return false
	}
	r.err = err
	r.loading = false
	return true
}

// Finish clears the loading flag for request seq without touching data or
// error. Used by write commands whose failures must leave the previously
// stored result untouched.
func (r *Resource[T]) Finish(seq uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.seq {
		return false
	}
	r.loading = false
	return true
}

// View returns a snapshot of the resource state.
func (r *Resource[T]) View() View[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return View[T]{Data: r.data, Loading: r.loading, Err: r.err}
}

// GroupDetail is the modal resource: one group's jobs keyed by the group ID
// they were requested for.
type GroupDetail struct {
	GroupID string
	Jobs    []dashboard.JobRecord
}

// QueryState is the single source of truth for every remote resource's view
// tuple plus the current job group list parameters. Pure state container;
// it performs no I/O and triggers no fetches.
type QueryState struct {
	JobGroups Resource[[]dashboard.JobGroupSummary]
	Stats     Resource[dashboard.StatsSnapshot]
	Countries Resource[[]string]
	Detail    Resource[GroupDetail]

	// Write-side state. SyncResult persists until the next sync overwrites
	// it; Reindex holds the last server message. Their loading flags are the
	// independent in-flight flags of the two commands.
	SyncResult Resource[*dashboard.SyncResult]
	Reindex    Resource[string]

	paramsMu sync.Mutex
	params   dashboard.QueryParams
}

// NewQueryState creates a state store with default list parameters.
func NewQueryState() *QueryState {
	return &QueryState{params: dashboard.DefaultQueryParams()}
}

// Params returns the current job group list parameters.
func (s *QueryState) Params() dashboard.QueryParams {
	s.paramsMu.Lock()
	defer s.paramsMu.Unlock()
	return s.params
}

// ApplyPatch merges a partial parameter change and returns the new params.
// It does not itself fetch; the orchestrator decides what to refresh.
func (s *QueryState) ApplyPatch(patch dashboard.ParamPatch) dashboard.QueryParams {
	s.paramsMu.Lock()
	defer s.paramsMu.Unlock()
	s.params = s.params.Apply(patch)
	return s.params
}

// ToggleOrder flips the sort direction atomically and returns the new params.
func (s *QueryState) ToggleOrder() dashboard.QueryParams {
	s.paramsMu.Lock()
	defer s.paramsMu.Unlock()
	s.params.Order = s.params.Order.Toggle()
	return s.params
}
