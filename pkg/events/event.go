package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

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

// Event codes used across the app.
const (
	TypeUserLogin            = "USER_LOGIN"
	TypeUserRegistered       = "USER_REGISTERED"
	TypeReportCreated        = "REPORT_CREATED"
	TypeReleaseNotePublished = "RELEASE_NOTE_PUBLISHED"
)

func NewUserLoginEvent(uid, device string) BaseEvent {
	now := time.Now()
	return BaseEvent{
		Type: TypeUserLogin,
		Data: map[string]interface{}{
			"user_id": uid,
			"device":  device,
			"time":    now.Format(time.RFC822),
		},
		OccurredAt: now,
	}
}

func NewUserRegisteredEvent(uid, email string) BaseEvent {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": uid,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewReportCreatedEvent(id, uid, title string) BaseEvent {
	return BaseEvent{
		Type: TypeReportCreated,
		Data: map[string]interface{}{
			"report_id": id,
			"user_id":   uid,
			"title":     title,
		},
		OccurredAt: time.Now(),
	}
}

func NewReleaseNotePublishedEvent(id, title, description string) BaseEvent {
	return BaseEvent{
		Type: TypeReleaseNotePublished,
		Data: map[string]interface{}{
			"release_note_id": id,
			"title":           title,
			"description":     description,
		},
		OccurredAt: time.Now(),
	}
}
