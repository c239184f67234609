package sync

import (
	"context"
	"sync"
)

// CriticalSection serializes executions sharing the same name within
// a single process.
type CriticalSection interface {
	Execute(ctx context.Context, name string, fn func() error) error
}

type keyedCriticalSection struct {
	mutexes *sync.Map
}

func NewCriticalSection() CriticalSection {
	return keyedCriticalSection{mutexes: &sync.Map{}}
}

func (cs keyedCriticalSection) Execute(_ context.Context, name string, fn func() error) error {
	mutex, _ := cs.mutexes.LoadOrStore(name, &sync.Mutex{})
	mutex.(*sync.Mutex).Lock()
	defer mutex.(*sync.Mutex).Unlock()

	return fn()
}
