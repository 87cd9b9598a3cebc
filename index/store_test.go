package index_test

import (
	"sync"
	"testing"

	"github.com/cdpsupport/cdpchat"
	"github.com/cdpsupport/cdpchat/index"
	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("returns the initial snapshot", func(t *testing.T) {
		t.Parallel()

		snap := index.Build(testChunks(), testNormalizer())
		store := index.NewStore(snap)

		assert.Same(t, snap, store.Snapshot())
	})

	t.Run("publish replaces the snapshot", func(t *testing.T) {
		t.Parallel()

		store := index.NewStore(index.Build(nil, testNormalizer()))
		next := index.Build(testChunks(), testNormalizer())

		store.Publish(next)
		assert.Same(t, next, store.Snapshot())
	})

	t.Run("concurrent readers see a consistent snapshot", func(t *testing.T) {
		t.Parallel()

		store := index.NewStore(index.Build(testChunks(), testNormalizer()))

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					snap := store.Snapshot()
					// Each snapshot is internally consistent regardless of swaps.
					n := snap.ChunkCount(cdpchat.PlatformSegment)
					assert.True(t, n == 0 || n == 3)
				}
			}()
		}
		for range 100 {
			store.Publish(index.Build(testChunks(), testNormalizer()))
		}
		wg.Wait()
	})
}
