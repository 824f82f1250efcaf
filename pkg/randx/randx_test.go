package randx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_FixedSeedIsReproducible(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Int63n(1000), b.Int63n(1000))
	}
}

func TestNew_ZeroSeedStillProduces(t *testing.T) {
	l := New(0)

	v := l.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestLocked_ConcurrentDraws(t *testing.T) {
	l := New(7)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = l.Float64()
				_ = l.Int63n(10)
			}
		}()
	}
	wg.Wait()
}
