/*
Package store keeps renderings of decision trees under a name so they can
be shown later.
*/
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/pbanos/id3/tree"
)

// ErrNotFound is returned when no tree is stored under a name.
var ErrNotFound = errors.New("store: tree not found")

/*
Store is an interface to manage a store where tree renderings can be put,
retrieved and deleted by name.

All its methods take a context that may allow cancelling the operation
(thus forcing the return of an error) if the implementation allows it.
*/
type Store interface {
	// Put takes a name and a tree and stores the tree rendering under
	// the name, replacing any previous one. It returns an error if the
	// rendering cannot be stored.
	Put(ctx context.Context, name string, n *tree.Node) error
	// Get takes a name and returns the rendering stored under it, an
	// error wrapping ErrNotFound if there is none, or another error if
	// the store cannot be queried.
	Get(ctx context.Context, name string) (string, error)
	// Delete takes a name and removes the rendering stored under it.
	// Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
	// Close closes the store, freeing any resources in use.
	Close(ctx context.Context) error
}

type memoryStore struct {
	renderings map[string]string
	lock       *sync.RWMutex
}

// NewMemoryStore returns an implementation of Store with the process
// memory space as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{
		renderings: make(map[string]string),
		lock:       &sync.RWMutex{},
	}
}

func (ms *memoryStore) Put(ctx context.Context, name string, n *tree.Node) error {
	rendering := n.String()
	return ms.withLock(ctx, func(ctx context.Context) error {
		ms.renderings[name] = rendering
		return nil
	})
}

func (ms *memoryStore) Get(ctx context.Context, name string) (string, error) {
	var rendering string
	var ok bool
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		rendering, ok = ms.renderings[name]
		return nil
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotFound
	}
	return rendering, nil
}

func (ms *memoryStore) Delete(ctx context.Context, name string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.renderings, name)
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
