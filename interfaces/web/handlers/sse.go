package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"jobdeck/application"
	"jobdeck/interfaces/web/presenters"
	"jobdeck/logging"
)

// SSEClient represents a connected Server-Sent Events client. Broadcasts fan
// out from independent event handler goroutines, so all writes to the shared
// response writer go through the per-client mutex.
type SSEClient struct {
	id      string
	writer  http.ResponseWriter
	flusher http.Flusher
	done    chan struct{}

	mu       sync.Mutex
	lastSent time.Time
}

// SSEManager manages Server-Sent Events connections and real-time
// broadcasting: toast notifications and dashboard refresh triggers.
type SSEManager struct {
	clients        map[string]*SSEClient
	mu             sync.RWMutex
	appCtx         context.Context
	logger         *logging.Logger
	toastPresenter *presenters.ToastPresenter
}

// NewSSEManager creates a new SSE connection manager with cleanup routines.
func NewSSEManager(appCtx context.Context) *SSEManager {
	manager := &SSEManager{
		clients:        make(map[string]*SSEClient),
		appCtx:         appCtx,
		logger:         logging.Default().WithComponent("sse_manager"),
		toastPresenter: presenters.NewToastPresenter(),
	}

	// Start cleanup routine for stale connections
	go manager.cleanupRoutine()

	return manager
}

// AddClient adds a new SSE client connection
func (s *SSEManager) AddClient(clientID string, w http.ResponseWriter) *SSEClient {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.logger.Error("Response writer does not support flushing")
		return nil
	}

	// Immediate flush to establish connection
	flusher.Flush()

	client := &SSEClient{
		id:       clientID,
		writer:   w,
		flusher:  flusher,
		done:     make(chan struct{}),
		lastSent: time.Now(),
	}

	s.mu.Lock()
	s.clients[clientID] = client
	s.mu.Unlock()

	s.logger.Info("SSE client connected", "client_id", clientID)
	return client
}

// RemoveClient removes an SSE client connection
func (s *SSEManager) RemoveClient(clientID string) {
	s.mu.Lock()
	client, exists := s.clients[clientID]
	if exists {
		delete(s.clients, clientID)
	}
	s.mu.Unlock()

	if exists {
		// Close channel outside of lock to prevent double-close panic
		select {
		case <-client.done:
			// Already closed
		default:
			close(client.done)
		}
		s.logger.Info("SSE client disconnected", "client_id", clientID)
	}
}

// BroadcastToast broadcasts a toast notification to all connected clients
func (s *SSEManager) BroadcastToast(message, toastType string) {
	clientList := s.snapshotClients()
	if len(clientList) == 0 {
		s.logger.Debug("No SSE clients connected, skipping toast broadcast")
		return
	}

	toastHTML, err := s.toastPresenter.FormatToastNotification(message, toastType)
	if err != nil {
		s.logger.Error("Failed to format toast notification", "error", err, "message", message)
		return
	}

	failedClients := []string{}
	for clientID, client := range clientList {
		if err := s.sendToClient(client, "toast", toastHTML); err != nil {
			s.logger.Warn("Failed to send toast to client", "client_id", clientID, "error", err)
			failedClients = append(failedClients, clientID)
		}
	}
	for _, clientID := range failedClients {
		s.RemoveClient(clientID)
	}
}

// BroadcastDashboardRefresh tells all connected clients to re-pull the
// job group table and stats partials
func (s *SSEManager) BroadcastDashboardRefresh() {
	clientList := s.snapshotClients()
	if len(clientList) == 0 {
		s.logger.Debug("No SSE clients connected, skipping refresh broadcast")
		return
	}

	message := `{"action": "refresh", "timestamp": "` + time.Now().Format(time.RFC3339) + `"}`
	failedClients := []string{}
	for clientID, client := range clientList {
		if err := s.sendToClient(client, "dashboard-updated", message); err != nil {
			s.logger.Warn("Failed to send refresh to client", "client_id", clientID, "error", err)
			failedClients = append(failedClients, clientID)
		}
	}
	for _, clientID := range failedClients {
		s.RemoveClient(clientID)
	}
}

// Notify implements application.Notifier so client-local validation errors
// surface through the same toast channel as backend outcomes.
func (s *SSEManager) Notify(message string, severity application.Severity) {
	s.BroadcastToast(message, string(severity))
}

// HandleSSEConnection handles the SSE endpoint
func (s *SSEManager) HandleSSEConnection(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		clientID = fmt.Sprintf("client_%d", time.Now().UnixNano())
	}

	client := s.AddClient(clientID, w)
	if client == nil {
		http.Error(w, "Failed to establish SSE connection", http.StatusInternalServerError)
		return
	}

	// Send initial keep-alive immediately
	if err := s.sendToClient(client, "keepalive", fmt.Sprintf("Connection established at %s", time.Now().Format(time.RFC3339))); err != nil {
		s.logger.Error("Failed to send initial keep-alive", "client_id", clientID, "error", err)
		s.RemoveClient(clientID)
		return
	}

	// Keep connection open until the client or the app goes away
	select {
	case <-r.Context().Done():
		s.RemoveClient(clientID)
	case <-s.appCtx.Done():
		s.RemoveClient(clientID)
	case <-client.done:
	}
}

// CloseAll closes every client connection, used during shutdown
func (s *SSEManager) CloseAll() {
	s.mu.Lock()
	clients := make([]*SSEClient, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, client)
	}
	s.clients = make(map[string]*SSEClient)
	s.mu.Unlock()

	for _, client := range clients {
		select {
		case <-client.done:
		default:
			close(client.done)
		}
	}
	s.logger.Info("Closed all SSE connections", "count", len(clients))
}

func (s *SSEManager) snapshotClients() map[string]*SSEClient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clientList := make(map[string]*SSEClient, len(s.clients))
	for id, client := range s.clients {
		clientList[id] = client
	}
	return clientList
}

func (s *SSEManager) sendToClient(client *SSEClient, event, data string) error {
	select {
	case <-client.done:
		return fmt.Errorf("client %s disconnected", client.id)
	default:
	}

	client.mu.Lock()
	defer client.mu.Unlock()

	if _, err := fmt.Fprintf(client.writer, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	client.flusher.Flush()
	client.lastSent = time.Now()
	return nil
}

// cleanupRoutine sends periodic keep-alives and drops dead connections.
func (s *SSEManager) cleanupRoutine() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.appCtx.Done():
			return
		case <-ticker.C:
			clientList := s.snapshotClients()
			for clientID, client := range clientList {
				client.mu.Lock()
				idle := time.Since(client.lastSent) >= 25*time.Second
				client.mu.Unlock()
				if !idle {
					continue
				}
				if err := s.sendToClient(client, "keepalive", "ping"); err != nil {
					s.RemoveClient(clientID)
				}
			}
		}
	}
}
