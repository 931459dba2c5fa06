package stats

import (
	"sync"
	"testing"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_AddAndDrain(t *testing.T) {
	b := NewBuffer(0)

	assert.True(t, b.Add(domain.Hit{URI: "/a"}))
	assert.True(t, b.Add(domain.Hit{URI: "/b"}))

	hits := b.Drain()
	require.Len(t, hits, 2)
	assert.Equal(t, "/a", hits[0].URI)
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Drain())
}

func TestBuffer_Limit(t *testing.T) {
	b := NewBuffer(2)

	assert.True(t, b.Add(domain.Hit{URI: "/a"}))
	assert.True(t, b.Add(domain.Hit{URI: "/b"}))
	assert.False(t, b.Add(domain.Hit{URI: "/c"}))
	assert.Equal(t, 2, b.Len())
}

func TestBuffer_RequeueKeepsOrder(t *testing.T) {
	b := NewBuffer(0)
	b.Add(domain.Hit{URI: "/a"})
	drained := b.Drain()
	b.Add(domain.Hit{URI: "/b"})

	dropped := b.Requeue(drained)

	assert.Zero(t, dropped)
	hits := b.Drain()
	require.Len(t, hits, 2)
	assert.Equal(t, "/a", hits[0].URI)
	assert.Equal(t, "/b", hits[1].URI)
}

func TestBuffer_RequeueDropsOldest(t *testing.T) {
	b := NewBuffer(2)
	b.Add(domain.Hit{URI: "/a"})
	b.Add(domain.Hit{URI: "/b"})
	drained := b.Drain()
	b.Add(domain.Hit{URI: "/c"})

	dropped := b.Requeue(drained)

	assert.Equal(t, 1, dropped)
	hits := b.Drain()
	require.Len(t, hits, 2)
	assert.Equal(t, "/b", hits[0].URI)
	assert.Equal(t, "/c", hits[1].URI)
}

func TestBuffer_ConcurrentAdd(t *testing.T) {
	b := NewBuffer(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Add(domain.Hit{URI: "/x"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, b.Len())
}
