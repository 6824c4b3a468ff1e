package model

import (
	"strings"
	"time"
)

type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type Library struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Code         string    `json:"libraryCode" db:"code"`
	Address      Address   `json:"address" db:"address"`
	ContactPhone string    `json:"contactPhone" db:"contact_phone"`
	ContactEmail string    `json:"contactEmail" db:"contact_email"`
	TotalSeats   int       `json:"totalSeats" db:"total_seats"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	Librarians   []string  `json:"librarians" db:"librarians"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type LibraryRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Code         string  `json:"libraryCode" validate:"required,max=10"`
	Address      Address `json:"address" validate:"required"`
	ContactPhone string  `json:"contactPhone" validate:"required,phone"`
	ContactEmail string  `json:"contactEmail" validate:"required,email"`
	TotalSeats   int     `json:"totalSeats" validate:"required,gt=0"`
	IsActive     *bool   `json:"isActive"`
}

// Library builds a new library; codes are stored upper-cased, emails lower-cased.
func (r LibraryRequest) Library() Library {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return Library{
		Name:         strings.TrimSpace(r.Name),
		Code:         NormalizeCode(r.Code),
		Address:      r.Address,
		ContactPhone: r.ContactPhone,
		ContactEmail: strings.ToLower(r.ContactEmail),
		TotalSeats:   r.TotalSeats,
		IsActive:     active,
		Librarians:   []string{},
	}
}

type LibraryPatch struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Code         *string  `json:"libraryCode" validate:"omitempty,min=1,max=10"`
	Address      *Address `json:"address" validate:"omitempty"`
	ContactPhone *string  `json:"contactPhone" validate:"omitempty,phone"`
	ContactEmail *string  `json:"contactEmail" validate:"omitempty,email"`
	TotalSeats   *int     `json:"totalSeats" validate:"omitempty,gt=0"`
	IsActive     *bool    `json:"isActive"`
}

func (p LibraryPatch) Apply(l *Library) {
	if p.Name != nil {
		l.Name = strings.TrimSpace(*p.Name)
	}
	if p.Code != nil {
		l.Code = NormalizeCode(*p.Code)
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.ContactPhone != nil {
		l.ContactPhone = *p.ContactPhone
	}
	if p.ContactEmail != nil {
		l.ContactEmail = strings.ToLower(*p.ContactEmail)
	}
	if p.TotalSeats != nil {
		l.TotalSeats = *p.TotalSeats
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
}

type LibraryStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type LibraryFilter struct {
	IncludeInactive bool
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
