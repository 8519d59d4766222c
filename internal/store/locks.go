package store

import (
	"sync"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// ownerLocks hands out one mutex per owner. Every read and write of an owner
// file happens under it, so two vaults of the same owner never interleave at
// the file level.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[models.OwnerID]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[models.OwnerID]*sync.Mutex)}
}

// lock blocks until owner's mutex is held and returns its unlock function.
func (l *ownerLocks) lock(owner models.OwnerID) func() {
	l.mu.Lock()
	m, ok := l.locks[owner]
	if !ok {
		m = new(sync.Mutex)
		l.locks[owner] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
