package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/pkg/auth"
)

const msgNotLibraryStaff = "you are not authorized to manage this library"

// AuthorizeLibrary passes admins and librarians assigned to the library.
func (s *Service) AuthorizeLibrary(ctx context.Context, p auth.Principal, libraryID string) error {
	lib, err := s.repo.GetLibrary(ctx, libraryID)
	if err != nil {
		return errors.Wrap(err, "GetLibrary")
	}
	if !auth.CanManage(p, lib.Librarians) {
		return errs.Forbidden(msgNotLibraryStaff)
	}
	return nil
}

// AuthorizeSeat resolves the seat's library and authorizes against it.
func (s *Service) AuthorizeSeat(ctx context.Context, p auth.Principal, seatID string) error {
	seat, err := s.repo.GetSeat(ctx, seatID)
	if err != nil {
		return errors.Wrap(err, "GetSeat")
	}
	return s.AuthorizeLibrary(ctx, p, seat.LibraryID)
}
