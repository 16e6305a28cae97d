package pulse

import "testing"

func TestNewPipelineCacheAcceptsAnySize(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 8} {
		cache := NewPipelineCache[trianglePipeline](&Context{}, size)

		if cache.Len() != 0 {
			t.Fatalf("new cache of size %d has %d entries", size, cache.Len())
		}

		// purging an empty cache releases nothing
		cache.Release()
	}
}
