package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MatchProgressEvent is pushed once per processed resume during a bulk run.
type MatchProgressEvent struct {
	Type         string    `json:"type"`
	JobID        uuid.UUID `json:"jobId"`
	Processed    int       `json:"processed"`
	Total        int       `json:"total"`
	MatchesFound int       `json:"matchesFound"`
	ErrorCount   int       `json:"errorCount"`
	Timestamp    string    `json:"timestamp"`
}

// Notifier is what the matching flow sees; the hub is one implementation and
// tests substitute their own.
type Notifier interface {
	NotifyMatchProgress(jobID uuid.UUID, processed, total, matchesFound, errorCount int)
}

type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyMatchProgress(jobID uuid.UUID, processed, total, matchesFound, errorCount int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchProgressEvent{
		Type:         "match_progress",
		JobID:        jobID,
		Processed:    processed,
		Total:        total,
		MatchesFound: matchesFound,
		ErrorCount:   errorCount,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
