package application

import (
	"context"
	"log/slog"
	"time"

	"jobdeck/domain/contracts"
	"jobdeck/domain/dashboard"
	"jobdeck/domain/events"
	"jobdeck/logging"
)

// SyncCommand validates and submits the two write operations against the
// backend and interprets their responses. Sync and reindex are independent
// in-flight operations; neither blocks the other, and every outcome returns
// the command to idle.
type SyncCommand struct {
	gateway   contracts.BackendGateway
	state     *QueryState
	publisher events.SyncEventPublisher
	notifier  Notifier
	logger    *logging.Logger
}

// NewSyncCommand creates the write-side command service.
func NewSyncCommand(
	gateway contracts.BackendGateway,
	state *QueryState,
	publisher events.SyncEventPublisher,
	notifier Notifier,
) *SyncCommand {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &SyncCommand{
		gateway:   gateway,
		state:     state,
		publisher: publisher,
		notifier:  notifier,
		logger:    logging.Default().WithComponent("sync_command"),
	}
}

// Sync submits a job group sync. Validation failures never reach the network
// and mutate no state. On success the result is stored and a SyncCompleted
// event published; on backend failure the previously stored result stays
// untouched and a SyncFailed event carries the server detail message.
func (c *SyncCommand) Sync(ctx context.Context, groupID string, status dashboard.JobStatus, country string) (*dashboard.SyncResult, error) {
	req, err := dashboard.NewSyncRequest(groupID, status, country)
	if err != nil {
		c.notifier.Notify("Job group ID is required", SeverityError)
		return nil, err
	}

	seq := c.state.SyncResult.Begin()
	c.logger.Sync("Sync submitted", req.GroupID)

	result, err := c.gateway.SyncJobs(ctx, req)
	if err != nil {
		c.state.SyncResult.Finish(seq)
		detail := contracts.ErrorDetail(err, "Failed to sync jobs")
		c.logger.Error("Sync failed", "job_group_id", req.GroupID, "error", err)
		c.publisher.PublishSyncFailed(events.SyncFailedEvent{
			Request:   req,
			Error:     detail,
			Timestamp: time.Now(),
		})
		return nil, err
	}

	c.state.SyncResult.SetResult(seq, result)
	c.logger.Sync("Sync completed", req.GroupID,
		slog.Int("rows_affected", result.RowsAffected))
	c.publisher.PublishSyncCompleted(events.SyncCompletedEvent{
		Request:   req,
		Result:    result,
		Timestamp: time.Now(),
	})
	return result, nil
}

// Reindex submits the secret-code-gated re-embedding job. An empty group ID
// means "reindex everything". The server message is returned verbatim so the
// presentation layer can clear its inputs on success and keep them on failure.
func (c *SyncCommand) Reindex(ctx context.Context, secretCode, groupID string) (string, error) {
	req, err := dashboard.NewReindexRequest(secretCode, groupID)
	if err != nil {
		c.notifier.Notify("Secret code is required", SeverityError)
		return "", err
	}

	seq := c.state.Reindex.Begin()

	message, err := c.gateway.ReindexAll(ctx, req)
	if err != nil {
		c.state.Reindex.Finish(seq)
		detail := contracts.ErrorDetail(err, "Reindex failed")
		c.logger.Error("Reindex failed", "job_group_id", req.GroupID, "error", err)
		c.publisher.PublishReindexFailed(events.ReindexFailedEvent{
			GroupID:   req.GroupID,
			Error:     detail,
			Timestamp: time.Now(),
		})
		return "", err
	}

	c.state.Reindex.SetResult(seq, message)
	c.publisher.PublishReindexCompleted(events.ReindexCompletedEvent{
		GroupID:   req.GroupID,
		Message:   message,
		Timestamp: time.Now(),
	})
	return message, nil
}
