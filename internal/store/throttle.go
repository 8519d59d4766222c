package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// throttleClock remembers the last accepted save of every vault and rejects
// saves that come sooner than interval after it.
type throttleClock struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	last     map[models.VaultIdentity]time.Time
}

func newThrottleClock(interval time.Duration, now func() time.Time) *throttleClock {
	return &throttleClock{
		interval: interval,
		now:      now,
		last:     make(map[models.VaultIdentity]time.Time),
	}
}

// throttleStamp is one accepted save, kept until its persist is queued.
type throttleStamp struct {
	vault   models.VaultIdentity
	at      time.Time
	prev    time.Time
	hadPrev bool
}

// acquire stamps vault with the current time and returns the stamp, or
// returns false when the previous stamp is inside the window.
func (c *throttleClock) acquire(vault models.VaultIdentity) (throttleStamp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	last, hadPrev := c.last[vault]
	if hadPrev && now.Sub(last) < c.interval {
		return throttleStamp{}, false
	}
	c.last[vault] = now
	return throttleStamp{vault: vault, at: now, prev: last, hadPrev: hadPrev}, true
}

// release takes back a stamp whose save never reached the queue. A newer
// stamp of the same vault is left alone.
func (c *throttleClock) release(stamp throttleStamp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if last, ok := c.last[stamp.vault]; !ok || !last.Equal(stamp.at) {
		return
	}
	if stamp.hadPrev {
		c.last[stamp.vault] = stamp.prev
		return
	}
	delete(c.last, stamp.vault)
}

// forgetOwner drops every stamp of owner.
func (c *throttleClock) forgetOwner(owner models.OwnerID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for vault := range c.last {
		if vault.Owner == owner {
			delete(c.last, vault)
		}
	}
}
