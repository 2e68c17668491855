package ws

import (
	"encoding/json"
	"time"
)

type MatchCompletedEvent struct {
	Type            string  `json:"type"`
	CandidateID     int64   `json:"candidate_id"`
	RoleID          int64   `json:"role_id"`
	MatchPercentage float64 `json:"match_percentage"`
	Timestamp       string  `json:"timestamp"`
}

// Notifier pushes match events onto the hub. Broadcast is buffered and
// drops on overflow, so callers never block.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyMatchCompleted(candidateID, roleID int64, matchPercentage float64) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchCompletedEvent{
		Type:            "match_completed",
		CandidateID:     candidateID,
		RoleID:          roleID,
		MatchPercentage: matchPercentage,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
