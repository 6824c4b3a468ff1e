package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	errBroker := errors.New("broker down")
	ok := func() error { return nil }
	fail := func() error { return errBroker }

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	cb := New(10, 2*time.Second, 0.3, 3).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	// 3 failures out of a window of 10 hit the 0.3 threshold
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(fail), errBroker)
	}
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(ok), ErrOpenCB)

	now = now.Add(3 * time.Second)
	require.ErrorIs(t, cb.Call(fail), errBroker)
	require.Equal(t, Open, cb.State(), "failure while half-open reopens")

	now = now.Add(3 * time.Second)
	for i := 0; i < 2; i++ {
		require.NoError(t, cb.Call(ok))
		require.Equal(t, HalfOpen, cb.State())
	}
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	t.Parallel()
	cb := New(2, time.Minute, 0.5, 1)
	_ = cb.Call(func() error { return errors.New("x") })
	require.Equal(t, Open, cb.State())
	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
