package pool_test

import (
	"sync"
	"testing"

	"github.com/jroosing/eqrng/internal/pool"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Pool Basic Operations Tests
// =============================================================================

func TestPool_GetAndPut(t *testing.T) {
	p := pool.New(func() []int {
		return make([]int, 0, 16)
	})

	buf := p.Get()
	assert.NotNil(t, buf)
	assert.Equal(t, 16, cap(buf))

	p.Put(buf)

	buf2 := p.Get()
	assert.NotNil(t, buf2)
}

func TestPool_ConstructorCalled(t *testing.T) {
	callCount := 0
	p := pool.New(func() int {
		callCount++
		return callCount
	})

	v1 := p.Get()
	assert.Equal(t, 1, v1)

	v2 := p.Get()
	assert.Equal(t, 2, v2)
	assert.Equal(t, 2, callCount)
}

func TestPool_ResetAppliedOnPut(t *testing.T) {
	var resets int
	p := pool.NewWithReset(
		func() *[]int { s := make([]int, 0, 4); return &s },
		func(s *[]int) *[]int { resets++; *s = (*s)[:0]; return s },
	)

	s := p.Get()
	*s = append(*s, 1, 2, 3)
	p.Put(s)

	assert.Equal(t, 1, resets)
	assert.Empty(t, *s, "reset must truncate the buffer before it is pooled")
}

// =============================================================================
// Index Buffer Tests
// =============================================================================

func TestIndexBuffers_ComeBackEmpty(t *testing.T) {
	p := pool.IndexBuffers(8)

	buf := p.Get()
	assert.Empty(t, *buf)
	*buf = append(*buf, 4, 5, 6)
	p.Put(buf)

	assert.Empty(t, *buf)
}

func TestIndexBuffers_OversizedBufferReplaced(t *testing.T) {
	p := pool.IndexBuffers(8)

	buf := p.Get()
	*buf = make([]int, 0, 1<<15)
	p.Put(buf)

	again := p.Get()
	assert.LessOrEqual(t, cap(*again), 1<<14)
}

// =============================================================================
// Pool Concurrency Tests
// =============================================================================

func TestIndexBuffers_ConcurrentAccess(t *testing.T) {
	p := pool.IndexBuffers(32)

	var wg sync.WaitGroup
	const goroutines = 50
	const iterations = 500

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				buf := p.Get()
				if len(*buf) != 0 {
					t.Errorf("got dirty buffer of len %d", len(*buf))
				}
				*buf = append(*buf, j)
				p.Put(buf)
			}
		}()
	}

	wg.Wait()
}

func BenchmarkIndexBuffers_GetPut(b *testing.B) {
	p := pool.IndexBuffers(64)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := p.Get()
			*buf = append(*buf, 1)
			p.Put(buf)
		}
	})
}
