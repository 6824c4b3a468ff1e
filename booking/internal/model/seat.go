package model

import (
	"time"
)

type SeatStatus string

const (
	SeatAvailable    SeatStatus = "AVAILABLE"
	SeatReserved     SeatStatus = "RESERVED"
	SeatOutOfService SeatStatus = "OUT_OF_SERVICE"
)

type Seat struct {
	ID        string     `json:"id" db:"id"`
	Code      string     `json:"code" db:"code"`
	Floor     string     `json:"floor" db:"floor"`
	Area      string     `json:"area" db:"area"`
	Status    SeatStatus `json:"status" db:"status"`
	LibraryID string     `json:"libraryId" db:"library_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

type SeatRequest struct {
	Code   string     `json:"code" validate:"required"`
	Floor  string     `json:"floor" validate:"required"`
	Area   string     `json:"area" validate:"required"`
	Status SeatStatus `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED OUT_OF_SERVICE"`
}

func (r SeatRequest) Seat(libraryID string) Seat {
	status := r.Status
	if status == "" {
		status = SeatAvailable
	}
	return Seat{
		Code:      r.Code,
		Floor:     r.Floor,
		Area:      r.Area,
		Status:    status,
		LibraryID: libraryID,
	}
}

type SeatPatch struct {
	Code   *string     `json:"code" validate:"omitempty,min=1"`
	Floor  *string     `json:"floor" validate:"omitempty,min=1"`
	Area   *string     `json:"area" validate:"omitempty,min=1"`
	Status *SeatStatus `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED OUT_OF_SERVICE"`
}

func (p SeatPatch) Apply(s *Seat) {
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.Floor != nil {
		s.Floor = *p.Floor
	}
	if p.Area != nil {
		s.Area = *p.Area
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}

type SeatFilter struct {
	LibraryID string
	Floor     string
	Area      string
}
