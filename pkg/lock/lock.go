package lock

import (
	"context"
	"sync"
)

type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned func releases the key.
	Lock(ctx context.Context, key string) (unlock func(), err error)
	Close() error
}

type keyed struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

// NewKeyed returns an in-process locker holding one mutex per key.
func NewKeyed() *keyed {
	return &keyed{locks: make(map[string]*entry)}
}

func (k *keyed) Lock(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		k.release(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			k.release(key, e)
		})
	}, nil
}

func (k *keyed) release(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}

func (k *keyed) Close() error { return nil }

func (k *keyed) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
