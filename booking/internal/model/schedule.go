package model

import (
	"time"
)

// OperatingHours holds "HH:mm" wall-clock bounds; close is exclusive.
type OperatingHours struct {
	Open  string `json:"open" validate:"required,hhmm"`
	Close string `json:"close" validate:"required,hhmm"`
}

type WeeklySchedule struct {
	Monday    OperatingHours  `json:"monday" validate:"required"`
	Tuesday   OperatingHours  `json:"tuesday" validate:"required"`
	Wednesday OperatingHours  `json:"wednesday" validate:"required"`
	Thursday  OperatingHours  `json:"thursday" validate:"required"`
	Friday    OperatingHours  `json:"friday" validate:"required"`
	Saturday  *OperatingHours `json:"saturday,omitempty"`
	Sunday    *OperatingHours `json:"sunday,omitempty"`
}

func (w WeeklySchedule) Hours(day time.Weekday) *OperatingHours {
	switch day {
	case time.Monday:
		return &w.Monday
	case time.Tuesday:
		return &w.Tuesday
	case time.Wednesday:
		return &w.Wednesday
	case time.Thursday:
		return &w.Thursday
	case time.Friday:
		return &w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	}
	return nil
}

type Schedule struct {
	ID        string         `json:"id" db:"id"`
	LibraryID string         `json:"libraryId" db:"library_id"`
	Week      WeeklySchedule `json:"schedule" db:"schedule"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
}

// IsOpenAt reports whether t falls inside the opening hours of its weekday.
func (s Schedule) IsOpenAt(t time.Time) bool {
	h := s.Week.Hours(t.Weekday())
	if h == nil {
		return false
	}
	hm := t.Format("15:04")
	return h.Open <= hm && hm < h.Close
}

type ScheduleRequest struct {
	Schedule *WeeklySchedule `json:"schedule" validate:"required"`
}

type ScheduleView struct {
	Schedule
	IsOpen bool `json:"isOpen"`
}
