package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafTree(label string) *tree.Node {
	return &tree.Node{Attribute: "a", Branches: []tree.Branch{tree.LeafBranch("x", label)}}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	defer s.Close(ctx)

	_, err := s.Get(ctx, "regar")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Put(ctx, "regar", leafTree("Yes")))
	rendering, err := s.Get(ctx, "regar")
	require.NoError(t, err)
	assert.Equal(t, leafTree("Yes").String(), rendering)

	require.NoError(t, s.Put(ctx, "regar", leafTree("No")))
	rendering, err = s.Get(ctx, "regar")
	require.NoError(t, err)
	assert.Equal(t, leafTree("No").String(), rendering)

	require.NoError(t, s.Delete(ctx, "regar"))
	_, err = s.Get(ctx, "regar")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, s.Delete(ctx, "regar"))
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := store.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Put(ctx, "regar", leafTree("Yes")), context.Canceled)
	_, err := s.Get(ctx, "regar")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Put(ctx, "regar", leafTree("Yes")))
			_, err := s.Get(ctx, "regar")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
