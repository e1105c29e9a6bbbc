package models

import "time"

type EventType string

const (
	EventStageChange EventType = "stage_change"
	EventNoteAdded   EventType = "note_added"
)

// EventData is the variant payload of a timeline event: From/To are set for
// stage_change, Content for note_added.
type EventData struct {
	From    Stage  `json:"from,omitempty"`
	To      Stage  `json:"to,omitempty"`
	Content string `json:"content,omitempty"`
}

// TimelineEvent records pipeline history for a candidate. Events are
// append-only and live only in the local store; the backend does not track
// them.
type TimelineEvent struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Type        EventType `json:"type"`
	Date        time.Time `json:"date"`
	Data        EventData `json:"data"`
}
