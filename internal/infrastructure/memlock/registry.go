// Package memlock implementa el alcance de ordenamiento exclusivo por
// (cuenta, producto) como un recurso explícito: un registro de candados en
// memoria con espera acotada. Complementa al bloqueo de fila de la base de
// datos; movimientos sobre productos distintos nunca se bloquean entre sí.
package memlock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain"
)

type key struct {
	accountID int64
	productID int64
}

// entrada: semáforo de capacidad 1 con conteo de referencias para poder
// retirar la clave cuando nadie la espera.
type entry struct {
	ch   chan struct{}
	refs int
}

// Registry registro de candados por (cuenta, producto).
type Registry struct {
	mu      sync.Mutex
	entries map[key]*entry
	timeout time.Duration
}

// New construye el registro. timeout es la espera máxima por el candado;
// agotarla falla la operación con domain.ErrConcurrentModification en lugar de
// quedar bloqueada.
func New(timeout time.Duration) *Registry {
	return &Registry{
		entries: make(map[key]*entry),
		timeout: timeout,
	}
}

// Acquire toma el candado del producto dentro de la cuenta. Devuelve la
// función de liberación; el caller debe invocarla exactamente una vez.
func (r *Registry) Acquire(ctx context.Context, accountID, productID int64) (func(), error) {
	k := key{accountID: accountID, productID: productID}

	r.mu.Lock()
	e := r.entries[k]
	if e == nil {
		e = &entry{ch: make(chan struct{}, 1)}
		r.entries[k] = e
	}
	e.refs++
	r.mu.Unlock()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case e.ch <- struct{}{}:
		release := func() {
			<-e.ch
			r.drop(k, e)
		}
		return release, nil
	case <-ctx.Done():
		r.drop(k, e)
		return nil, fmt.Errorf("%w: %v", domain.ErrConcurrentModification, ctx.Err())
	case <-timer.C:
		r.drop(k, e)
		return nil, fmt.Errorf("%w: espera por el candado agotada", domain.ErrConcurrentModification)
	}
}

func (r *Registry) drop(k key, e *entry) {
	r.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(r.entries, k)
	}
	r.mu.Unlock()
}
