package lock

import (
	"context"
	"sync"
)

// Local - блокировки в памяти процесса. Подходит для одной реплики
type Local struct {
	mtx  sync.Mutex
	held map[string]struct{}
}

func NewLocal() *Local {
	return &Local{held: make(map[string]struct{})}
}

func (l *Local) TryLock(_ context.Context, key string) (func(), error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, ErrLocked
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mtx.Lock()
			delete(l.held, key)
			l.mtx.Unlock()
		})
	}, nil
}
