package events

import (
	"encoding/json"
	"time"
)

// Event types.
const (
	TypeResumeProcessed = "resume.processed"
	TypeResumeDeleted   = "resume.deleted"
)

// Event is the payload sent to downstream consumers.
type Event struct {
	Type       string `json:"type"`
	UserID     string `json:"userId"`
	ResumeID   string `json:"resumeId"`
	RequestID  string `json:"requestId,omitempty"`
	OccurredAt string `json:"occurredAt"`
	Version    int    `json:"version"`

	OverallScore int `json:"overallScore,omitempty"`
	SkillCount   int `json:"skillCount,omitempty"`
	MatchCount   int `json:"matchCount,omitempty"`
}

// New stamps an event of the given type with the current time and version 1.
func New(eventType, userID, resumeID, requestID string, now time.Time) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		ResumeID:   resumeID,
		RequestID:  requestID,
		OccurredAt: now.UTC().Format(time.RFC3339),
		Version:    1,
	}
}

// Encode returns the JSON representation of an event.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses a JSON payload into an Event.
func Decode(payload []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(payload, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}
