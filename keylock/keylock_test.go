package keylock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLock_MutualExclusion(t *testing.T) {
	l := New()

	const workers = 32
	var inSection, max int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(context.Background(), "order-1")
			require.NoError(t, err)
			defer release()

			mu.Lock()
			inSection++
			if inSection > max {
				max = inSection
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inSection--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, max)
	assert.Equal(t, 0, l.Len(), "entries must be reclaimed once uncontended")
}

func TestKeyLock_UnrelatedKeysDoNotBlock(t *testing.T) {
	l := New()

	releaseA, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer releaseA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	releaseB, err := l.Lock(ctx, "b")
	require.NoError(t, err)
	releaseB()
}

func TestKeyLock_CancelledAcquire(t *testing.T) {
	l := New()

	release, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "a")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	assert.Equal(t, 0, l.Len())
}

func TestKeyLock_DoubleReleaseIsNoop(t *testing.T) {
	l := New()

	release, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)
	release()
	release()

	release2, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)
	release2()
	assert.Equal(t, 0, l.Len())
}
