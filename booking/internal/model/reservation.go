package model

import (
	"time"
)

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "ACTIVE"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationActive, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

type Reservation struct {
	ID        string            `json:"id" db:"id"`
	UserID    string            `json:"userId" db:"user_id"`
	SeatID    string            `json:"seatId" db:"seat_id"`
	StartTime time.Time         `json:"startTime" db:"start_time"`
	EndTime   time.Time         `json:"endTime" db:"end_time"`
	Status    ReservationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
}

type CreateReservationRequest struct {
	SeatID    string    `json:"seatId" validate:"required,uuid"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
}

type ReservationFilter struct {
	UserID    string
	SeatID    string
	LibraryID string
	Status    ReservationStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// Normalize drops a half-specified date range: the range applies only when both ends are set.
func (f ReservationFilter) Normalize() ReservationFilter {
	if f.StartDate == nil || f.EndDate == nil {
		f.StartDate, f.EndDate = nil, nil
	}
	return f
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
