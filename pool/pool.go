// pool.go implements a generic object pool with finalizers.

// Package pool provides a generic object pool with finalizers.
package pool

import (
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

var ReuseMemory = true

type Pool[T any] struct {
	sync.Pool
	ResetFunc func(*T)

	allocated atomic.Uint64
	gotten    atomic.Uint64
	returned  atomic.Uint64
}

type Stats struct {
	Allocated uint64
	Gotten    uint64
	Returned  uint64
}

func NewPool[T any](
	allocFunc func() *T,
	resetFunc func(*T),
	freeFunc func(*T),
) *Pool[T] {
	p := &Pool[T]{
		ResetFunc: resetFunc,
	}
	p.Pool.New = func() any {
		p.allocated.Inc()
		v := allocFunc()
		if freeFunc != nil {
			runtime.SetFinalizer(v, func(v *T) {
				freeFunc(v)
			})
		}
		return v
	}
	return p
}

func (p *Pool[T]) Get() *T {
	p.gotten.Inc()
	return p.Pool.Get().(*T)
}

func (p *Pool[T]) Put(items ...*T) {
	if !ReuseMemory {
		return
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		p.returned.Inc()
		if p.ResetFunc != nil {
			p.ResetFunc(item)
		}
		p.Pool.Put(item)
	}
}

func (p *Pool[T]) Stats() Stats {
	return Stats{
		Allocated: p.allocated.Load(),
		Gotten:    p.gotten.Load(),
		Returned:  p.returned.Load(),
	}
}
