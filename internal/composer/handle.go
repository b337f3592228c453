package composer

import (
	"sync"

	"github.com/google/uuid"
)

// Handle is a revocable reference the renderer uses to display a payload
// without holding the bytes itself.
type Handle string

// HandleStore allocates and revokes preview handles.
//
// Revoke on an unknown or already-revoked handle must return false and do
// nothing else.
type HandleStore interface {
	Allocate(p Payload) Handle
	Resolve(h Handle) (Payload, bool)
	Revoke(h Handle) bool
	Outstanding() int
}

// ArenaStats counts allocations over the arena's lifetime.
type ArenaStats struct {
	Allocated int
	Revoked   int
}

// HandleArena is the default HandleStore. Resolve may be called from any
// goroutine; Allocate and Revoke are expected on the composer's goroutine
// but are locked anyway so the renderer never sees a torn map.
type HandleArena struct {
	mu    sync.RWMutex
	live  map[Handle]Payload
	stats ArenaStats
}

// NewHandleArena creates an empty arena.
func NewHandleArena() *HandleArena {
	return &HandleArena{live: make(map[Handle]Payload)}
}

// Allocate registers p and returns a fresh handle for it.
func (a *HandleArena) Allocate(p Payload) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	h := Handle("preview:" + uuid.NewString())
	a.live[h] = p
	a.stats.Allocated++
	return h
}

// Resolve returns the payload behind h if it is still live.
func (a *HandleArena) Resolve(h Handle) (Payload, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	p, ok := a.live[h]
	return p, ok
}

// Revoke releases h. Returns false if h was unknown or already revoked.
func (a *HandleArena) Revoke(h Handle) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.live[h]; !ok {
		return false
	}
	delete(a.live, h)
	a.stats.Revoked++
	return true
}

// Outstanding returns the number of live handles.
func (a *HandleArena) Outstanding() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.live)
}

// Stats returns lifetime allocation counters.
func (a *HandleArena) Stats() ArenaStats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stats
}
