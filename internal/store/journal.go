package store

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// Persist stages reported in the failure journal.
const (
	StageSerialize = "serialize"
	StageWrite     = "write"
	StageEmpty     = "empty-check"
	StageBackup    = "backup"
	StageRename    = "rename"
	StageVerify    = "verify"
	StageEnqueue   = "enqueue"
	StageDelete    = "delete"
)

// FailureJournal keeps the most recent persist failures for operators. It is
// bounded: once full, the oldest entry is overwritten.
type FailureJournal struct {
	mu      sync.Mutex
	entries []models.SaveFailure
	next    int
	full    bool
	now     func() time.Time
}

// NewFailureJournal returns a journal holding at most size entries.
func NewFailureJournal(size int, now func() time.Time) *FailureJournal {
	if size <= 0 {
		size = 1
	}
	return &FailureJournal{
		entries: make([]models.SaveFailure, size),
		now:     now,
	}
}

// Record appends a failure and returns the stored entry.
func (j *FailureJournal) Record(owner models.OwnerID, stage string, structural bool, err error) models.SaveFailure {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	f := models.SaveFailure{
		ID:         ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Owner:      owner,
		Stage:      stage,
		Structural: structural,
		Error:      err.Error(),
		OccurredAt: now,
	}

	j.entries[j.next] = f
	j.next = (j.next + 1) % len(j.entries)
	if j.next == 0 {
		j.full = true
	}

	return f
}

// List returns the recorded failures, newest first.
func (j *FailureJournal) List() []models.SaveFailure {
	j.mu.Lock()
	defer j.mu.Unlock()

	n := j.next
	if j.full {
		n = len(j.entries)
	}

	out := make([]models.SaveFailure, 0, n)
	for i := 1; i <= n; i++ {
		idx := (j.next - i + len(j.entries)) % len(j.entries)
		out = append(out, j.entries[idx])
	}
	return out
}
