package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdeck/application"
)

func TestSSEManager_BroadcastToast(t *testing.T) {
	manager := NewSSEManager(context.Background())
	recorder := httptest.NewRecorder()

	client := manager.AddClient("client_1", recorder)
	require.NotNil(t, client)

	manager.BroadcastToast("Synced 5 jobs", "success")

	body := recorder.Body.String()
	assert.Contains(t, body, "event: toast\n")
	assert.Contains(t, body, `class="toast toast-success"`)
	assert.Contains(t, body, "Synced 5 jobs")
}

func TestSSEManager_BroadcastDashboardRefresh(t *testing.T) {
	manager := NewSSEManager(context.Background())
	recorder := httptest.NewRecorder()
	require.NotNil(t, manager.AddClient("client_1", recorder))

	manager.BroadcastDashboardRefresh()

	body := recorder.Body.String()
	assert.Contains(t, body, "event: dashboard-updated\n")
	assert.Contains(t, body, `"action": "refresh"`)
}

func TestSSEManager_RemovedClientReceivesNothing(t *testing.T) {
	manager := NewSSEManager(context.Background())
	recorder := httptest.NewRecorder()
	require.NotNil(t, manager.AddClient("client_1", recorder))

	manager.RemoveClient("client_1")
	manager.BroadcastToast("after disconnect", "success")

	assert.NotContains(t, recorder.Body.String(), "after disconnect")
}

func TestSSEManager_MessageEscapedInToastMarkup(t *testing.T) {
	manager := NewSSEManager(context.Background())
	recorder := httptest.NewRecorder()
	require.NotNil(t, manager.AddClient("client_1", recorder))

	manager.BroadcastToast(`<script>alert("x")</script>`, "error")

	body := recorder.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestSSEManager_ConcurrentBroadcastsKeepFramesIntact(t *testing.T) {
	// A completed sync fans out to the notification handler and the refresh
	// handler as separate goroutines, so one client routinely receives toast
	// and dashboard-updated broadcasts concurrently. Frames must come out
	// whole, never interleaved.
	manager := NewSSEManager(context.Background())
	recorder := httptest.NewRecorder()
	require.NotNil(t, manager.AddClient("client_1", recorder))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			manager.BroadcastToast("Synced 5 jobs", "success")
		}()
		go func() {
			defer wg.Done()
			manager.BroadcastDashboardRefresh()
		}()
	}
	wg.Wait()

	frames := strings.Split(strings.TrimSuffix(recorder.Body.String(), "\n\n"), "\n\n")
	require.Len(t, frames, 40)
	for _, frame := range frames {
		lines := strings.SplitN(frame, "\n", 2)
		require.Len(t, lines, 2, "frame missing its data line: %q", frame)
		assert.True(t, strings.HasPrefix(lines[0], "event: "), "malformed frame: %q", frame)
		assert.True(t, strings.HasPrefix(lines[1], "data: "), "malformed frame: %q", frame)
	}
}

func TestSSEManager_NotifyMapsSeverityToToastType(t *testing.T) {
	manager := NewSSEManager(context.Background())
	recorder := httptest.NewRecorder()
	require.NotNil(t, manager.AddClient("client_1", recorder))

	manager.Notify("Job group ID is required", application.SeverityError)

	body := recorder.Body.String()
	assert.Contains(t, body, `class="toast toast-error"`)
	assert.Contains(t, body, "Job group ID is required")
}
