package model

import (
	"time"
)

type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationCancelled EventType = "reservation.cancelled"
	EventReservationCompleted EventType = "reservation.completed"
	EventLibrarianAssigned    EventType = "librarian.assigned"
	EventLibrarianRevoked     EventType = "librarian.revoked"
)

type Event struct {
	Type        EventType    `json:"type"`
	OccurredAt  time.Time    `json:"occurredAt"`
	ActorID     string       `json:"actorId,omitempty"`
	UserID      string       `json:"userId,omitempty"`
	LibraryID   string       `json:"libraryId,omitempty"`
	Reservation *Reservation `json:"reservation,omitempty"`
	Count       int64        `json:"count,omitempty"`
}
