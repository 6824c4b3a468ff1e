package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy(t *testing.T) {
	t.Parallel()

	err := errors.Wrap(NotFound("seat"), "GetSeat")
	require.True(t, IsNotFound(err))
	require.False(t, IsConflict(err))
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "seat not found", nf.Error())

	err = errors.Wrap(Conflict("seat is already reserved for this time slot"), "CreateReservation")
	require.True(t, IsConflict(err))

	var be *BusinessError
	require.True(t, errors.As(Forbidden("no"), &be))
	require.True(t, be.Forbidden)
	require.True(t, errors.As(Business("no"), &be))
	require.False(t, be.Forbidden)
}
