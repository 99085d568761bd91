package gensync

import (
	"sync"

	"github.com/Invicton-Labs/go-pigudf/constraints"
)

// AtomicNumeric is a number that can be safely read and modified
// from multiple goroutines.
type AtomicNumeric[T constraints.Numeric] struct {
	l sync.Mutex
	v T
}

func NewAtomicNumeric[T constraints.Numeric](val T) *AtomicNumeric[T] {
	return &AtomicNumeric[T]{
		v: val,
	}
}

func (a *AtomicNumeric[T]) Load() T {
	a.l.Lock()
	defer a.l.Unlock()
	return a.v
}

func (a *AtomicNumeric[T]) Store(val T) {
	a.l.Lock()
	defer a.l.Unlock()
	a.v = val
}

func (a *AtomicNumeric[T]) Add(delta T) (new T) {
	a.l.Lock()
	defer a.l.Unlock()
	a.v += delta
	return a.v
}
