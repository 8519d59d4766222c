package service

import (
	"sync"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// saveGuard holds the SaveState of every session. Absent sessions are idle.
type saveGuard struct {
	mu      sync.Mutex
	pending map[models.SessionID]struct{}
	// forget marks pending sessions that disconnected during their save.
	forget map[models.SessionID]struct{}
}

func newSaveGuard() *saveGuard {
	return &saveGuard{
		pending: make(map[models.SessionID]struct{}),
		forget:  make(map[models.SessionID]struct{}),
	}
}

// begin moves session to SaveStateSavePending. It returns false when the
// session already was pending.
func (g *saveGuard) begin(session models.SessionID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.pending[session]; ok {
		return false
	}
	g.pending[session] = struct{}{}
	return true
}

// end moves session back to SaveStateIdle and reports whether the session
// must be forgotten now.
func (g *saveGuard) end(session models.SessionID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.pending, session)
	_, forget := g.forget[session]
	delete(g.forget, session)
	return forget
}

// forgetOnEnd marks a pending session to be forgotten by the end of its save.
// It returns false when no save of session is pending.
func (g *saveGuard) forgetOnEnd(session models.SessionID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.pending[session]; !ok {
		return false
	}
	g.forget[session] = struct{}{}
	return true
}

func (g *saveGuard) state(session models.SessionID) SaveState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.pending[session]; ok {
		return SaveStateSavePending
	}
	return SaveStateIdle
}

// whileIdle runs fn with the guard held if session is idle, so no save of
// session can start until fn returns. It reports whether fn ran.
func (g *saveGuard) whileIdle(session models.SessionID, fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.pending[session]; ok {
		return false
	}
	fn()
	return true
}
