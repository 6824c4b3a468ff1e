package service

import (
	"context"
	"slices"

	"github.com/pkg/errors"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/auth"
	"github.com/Astemirdum/seat-booking/pkg/metrics"
)

const (
	opAssign = "assign"
	opRevoke = "revoke"
)

// AssignLibrarian promotes the user to LIBRARIAN and adds them to the library.
// A failed membership write restores the previous role.
func (s *Service) AssignLibrarian(ctx context.Context, userID, libraryID string) (model.User, error) {
	unlock, err := s.locker.Lock(ctx, "user:"+userID)
	if err != nil {
		return model.User{}, errors.Wrap(err, "lock user")
	}
	defer unlock()

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, errors.Wrap(err, "GetUser")
	}
	if user.Role == auth.RoleLibrarian {
		metrics.LibrarianAssignments.WithLabelValues(opAssign, metrics.ResultConflict).Inc()
		return model.User{}, errs.Conflict("user is already a librarian")
	}
	lib, err := s.repo.GetLibrary(ctx, libraryID)
	if err != nil {
		return model.User{}, errors.Wrap(err, "GetLibrary")
	}
	if slices.Contains(lib.Librarians, userID) {
		metrics.LibrarianAssignments.WithLabelValues(opAssign, metrics.ResultConflict).Inc()
		return model.User{}, errs.Conflict("user is already assigned to this library")
	}

	prev := user.Role
	err = s.twoStep(ctx, opAssign,
		func(ctx context.Context) error { return s.repo.SetUserRole(ctx, userID, auth.RoleLibrarian) },
		func(ctx context.Context) error { return s.repo.AddLibrarian(ctx, libraryID, userID) },
		func(ctx context.Context) error { return s.repo.SetUserRole(ctx, userID, prev) },
	)
	if err != nil {
		metrics.LibrarianAssignments.WithLabelValues(opAssign, metrics.ResultError).Inc()
		return model.User{}, errors.Wrap(err, "assign librarian")
	}
	metrics.LibrarianAssignments.WithLabelValues(opAssign, metrics.ResultOK).Inc()

	user.Role = auth.RoleLibrarian
	s.publish(ctx, userID, model.Event{Type: model.EventLibrarianAssigned, UserID: userID, LibraryID: libraryID})
	return user, nil
}

// RevokeLibrarian removes the user from the library and demotes them to USER.
// A failed role write re-adds the membership.
func (s *Service) RevokeLibrarian(ctx context.Context, userID, libraryID string) (model.User, error) {
	unlock, err := s.locker.Lock(ctx, "user:"+userID)
	if err != nil {
		return model.User{}, errors.Wrap(err, "lock user")
	}
	defer unlock()

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, errors.Wrap(err, "GetUser")
	}
	if user.Role != auth.RoleLibrarian {
		return model.User{}, errs.Business("user is not a librarian")
	}
	lib, err := s.repo.GetLibrary(ctx, libraryID)
	if err != nil {
		return model.User{}, errors.Wrap(err, "GetLibrary")
	}
	if !slices.Contains(lib.Librarians, userID) {
		return model.User{}, errs.Business("user is not assigned to this library")
	}

	err = s.twoStep(ctx, opRevoke,
		func(ctx context.Context) error { return s.repo.RemoveLibrarian(ctx, libraryID, userID) },
		func(ctx context.Context) error { return s.repo.SetUserRole(ctx, userID, auth.RoleUser) },
		func(ctx context.Context) error { return s.repo.AddLibrarian(ctx, libraryID, userID) },
	)
	if err != nil {
		metrics.LibrarianAssignments.WithLabelValues(opRevoke, metrics.ResultError).Inc()
		return model.User{}, errors.Wrap(err, "revoke librarian")
	}
	metrics.LibrarianAssignments.WithLabelValues(opRevoke, metrics.ResultOK).Inc()

	user.Role = auth.RoleUser
	s.publish(ctx, userID, model.Event{Type: model.EventLibrarianRevoked, UserID: userID, LibraryID: libraryID})
	return user, nil
}
