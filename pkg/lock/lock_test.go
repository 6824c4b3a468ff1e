package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyed_Exclusive(t *testing.T) {
	t.Parallel()
	l := NewKeyed()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		holders int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, "seat:1")
			require.NoError(t, err)
			mu.Lock()
			holders++
			if holders > maxSeen {
				maxSeen = holders
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, maxSeen)
	require.Zero(t, l.size())
}

func TestKeyed_IndependentKeys(t *testing.T) {
	t.Parallel()
	l := NewKeyed()
	ctx := context.Background()

	unlockA, err := l.Lock(ctx, "seat:a")
	require.NoError(t, err)
	unlockB, err := l.Lock(ctx, "seat:b")
	require.NoError(t, err)
	require.Equal(t, 2, l.size())

	unlockA()
	unlockB()
	require.Zero(t, l.size())
}

func TestKeyed_ContextDone(t *testing.T) {
	t.Parallel()
	l := NewKeyed()

	unlock, err := l.Lock(context.Background(), "user:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "user:1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	require.Zero(t, l.size())

	unlock, err = l.Lock(context.Background(), "user:1")
	require.NoError(t, err)
	unlock()
}
