package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SEARCH_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by all publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published by the search pipeline.
const (
	TypeSearchCompleted = "SEARCH_COMPLETED"
)

// NewSearchCompleted builds the event emitted after every assembled search
// response, cached or not.
func NewSearchCompleted(kind, term, source string, resultCount int, cached bool) BaseEvent {
	return BaseEvent{
		Type: TypeSearchCompleted,
		Data: map[string]interface{}{
			"kind":         kind,
			"term":         term,
			"source":       source,
			"result_count": resultCount,
			"cached":       cached,
		},
		OccurredAt: time.Now(),
	}
}
