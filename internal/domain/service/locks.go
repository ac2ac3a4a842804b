package service

import "sync"

// rotationLocks serializes mutations to a single rotation definition. The
// scheduling cycle and the skip engine both hold the rotation's lock while
// touching its cursor or creating assignments, so a skip can never race a
// concurrent cycle pass on the same rotation.
type rotationLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newRotationLocks() *rotationLocks {
	return &rotationLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *rotationLocks) Get(rotationID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[rotationID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[rotationID] = m
	}
	return m
}
