package memlock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/infrastructure/memlock"
)

func TestAcquire_ExclusionMutua(t *testing.T) {
	r := memlock.New(5 * time.Second)
	ctx := context.Background()

	var mu sync.Mutex
	dentro := 0
	maxDentro := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := r.Acquire(ctx, 1, 100)
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			mu.Lock()
			dentro++
			if dentro > maxDentro {
				maxDentro = dentro
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			dentro--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxDentro, "nunca debe haber más de un poseedor del candado")
}

func TestAcquire_EsperaAgotada(t *testing.T) {
	r := memlock.New(50 * time.Millisecond)
	ctx := context.Background()

	release, err := r.Acquire(ctx, 1, 100)
	require.NoError(t, err)
	defer release()

	_, err = r.Acquire(ctx, 1, 100)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
}

func TestAcquire_ContextoCancelado(t *testing.T) {
	r := memlock.New(5 * time.Second)

	release, err := r.Acquire(context.Background(), 1, 100)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Acquire(ctx, 1, 100)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
}

func TestAcquire_ClavesIndependientes(t *testing.T) {
	r := memlock.New(50 * time.Millisecond)
	ctx := context.Background()

	release, err := r.Acquire(ctx, 1, 100)
	require.NoError(t, err)
	defer release()

	// Otro producto de la misma cuenta no espera.
	rel2, err := r.Acquire(ctx, 1, 200)
	require.NoError(t, err)
	rel2()

	// El mismo producto en otra cuenta tampoco.
	rel3, err := r.Acquire(ctx, 2, 100)
	require.NoError(t, err)
	rel3()
}

func TestAcquire_LiberarPermiteElSiguiente(t *testing.T) {
	r := memlock.New(time.Second)
	ctx := context.Background()

	release, err := r.Acquire(ctx, 1, 100)
	require.NoError(t, err)
	release()

	rel2, err := r.Acquire(ctx, 1, 100)
	require.NoError(t, err)
	rel2()
}
