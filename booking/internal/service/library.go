package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

func (s *Service) CreateLibrary(ctx context.Context, req model.LibraryRequest) (model.Library, error) {
	lib, err := s.repo.CreateLibrary(ctx, req.Library())
	if err != nil {
		return model.Library{}, errors.Wrap(err, "CreateLibrary")
	}
	return lib, nil
}

func (s *Service) GetLibrary(ctx context.Context, id string) (model.Library, error) {
	lib, err := s.repo.GetLibrary(ctx, id)
	if err != nil {
		return model.Library{}, errors.Wrap(err, "GetLibrary")
	}
	return lib, nil
}

func (s *Service) GetLibraryByCode(ctx context.Context, code string) (model.Library, error) {
	lib, err := s.repo.GetLibraryByCode(ctx, code)
	if err != nil {
		return model.Library{}, errors.Wrap(err, "GetLibraryByCode")
	}
	return lib, nil
}

func (s *Service) ListLibraries(ctx context.Context, f model.LibraryFilter) ([]model.Library, error) {
	libs, err := s.repo.ListLibraries(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "ListLibraries")
	}
	return libs, nil
}

func (s *Service) UpdateLibrary(ctx context.Context, id string, patch model.LibraryPatch) (model.Library, error) {
	lib, err := s.repo.GetLibrary(ctx, id)
	if err != nil {
		return model.Library{}, errors.Wrap(err, "GetLibrary")
	}
	patch.Apply(&lib)
	lib, err = s.repo.UpdateLibrary(ctx, lib)
	if err != nil {
		return model.Library{}, errors.Wrap(err, "UpdateLibrary")
	}
	return lib, nil
}

func (s *Service) SetLibraryStatus(ctx context.Context, id string, active bool) (model.Library, error) {
	return s.UpdateLibrary(ctx, id, model.LibraryPatch{IsActive: &active})
}

func (s *Service) DeleteLibrary(ctx context.Context, id string) error {
	if err := s.repo.DeleteLibrary(ctx, id); err != nil {
		return errors.Wrap(err, "DeleteLibrary")
	}
	return nil
}
