package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type step func(ctx context.Context) error

// twoStep runs first and then second. When second fails, undo reverts first and the
// error of second is returned, joined with the undo error if compensation failed too.
func (s *Service) twoStep(ctx context.Context, op string, first, second, undo step) error {
	if err := first(ctx); err != nil {
		return err
	}
	err := second(ctx)
	if err == nil {
		return nil
	}
	if cerr := undo(context.WithoutCancel(ctx)); cerr != nil {
		s.log.Error("compensation failed", zap.String("op", op), zap.NamedError("cause", err), zap.Error(cerr))
		return multierr.Append(err, errors.Wrap(cerr, op+": compensate"))
	}
	s.log.Warn("compensated", zap.String("op", op), zap.Error(err))
	return err
}
