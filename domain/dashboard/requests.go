package dashboard

import (
	"fmt"
	"strings"
)

// ValidationError reports a command payload rejected before dispatch.
// It never reaches the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SyncRequest carries the arguments of one sync command.
type SyncRequest struct {
	GroupID string
	Status  JobStatus
	Country *string
}

// NewSyncRequest validates and builds a sync request. The group ID is
// trimmed; an empty result is rejected client-side.
func NewSyncRequest(groupID string, status JobStatus, country string) (SyncRequest, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return SyncRequest{}, &ValidationError{Field: "job_group_id", Reason: "must not be empty"}
	}

	req := SyncRequest{GroupID: groupID, Status: status}
	if country = strings.TrimSpace(country); country != "" {
		req.Country = &country
	}
	return req, nil
}

// ReindexRequest carries the arguments of the admin reindex command.
// An empty GroupID means "reindex everything".
type ReindexRequest struct {
	SecretCode string
	GroupID    string
}

// NewReindexRequest validates and builds a reindex request. The secret code
// is trimmed; an empty result is rejected client-side regardless of GroupID.
func NewReindexRequest(secretCode, groupID string) (ReindexRequest, error) {
	secretCode = strings.TrimSpace(secretCode)
	if secretCode == "" {
		return ReindexRequest{}, &ValidationError{Field: "secret_code", Reason: "must not be empty"}
	}

	return ReindexRequest{
		SecretCode: secretCode,
		GroupID:    strings.TrimSpace(groupID),
	}, nil
}
