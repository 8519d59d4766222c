package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ── helpers ───────────────────────────────────────────────────────────────────

const (
	testDataDir   = "/vaults"
	testBackupDir = "/backups"
)

func testConfig(dataDir, backupDir string) (config.Storage, config.Vaults) {
	return config.Storage{
			Files: config.Files{DataDir: dataDir, BackupDir: backupDir},
		}, config.Vaults{
			SaveThrottle:       config.DefaultSaveThrottle,
			RenameRetryDelay:   time.Millisecond,
			FailureJournalSize: 8,
		}
}

// inlineQueue runs every job synchronously inside Submit.
type inlineQueue struct{}

func (inlineQueue) Submit(ctx context.Context, job workers.Job) error {
	job(ctx)
	return nil
}

// failingQueue rejects the first fails submissions and runs the rest inline.
type failingQueue struct {
	mu    sync.Mutex
	fails int
}

func (q *failingQueue) Submit(ctx context.Context, job workers.Job) error {
	q.mu.Lock()
	if q.fails > 0 {
		q.fails--
		q.mu.Unlock()
		return errQueueFull
	}
	q.mu.Unlock()

	job(ctx)
	return nil
}

var errQueueFull = errors.New("queue full")

// holdingQueue keeps jobs until the test runs them.
type holdingQueue struct {
	mu   sync.Mutex
	jobs []workers.Job
}

func (q *holdingQueue) Submit(_ context.Context, job workers.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *holdingQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

func (q *holdingQueue) runAll() {
	q.mu.Lock()
	jobs := q.jobs
	q.jobs = nil
	q.mu.Unlock()

	for _, job := range jobs {
		job(context.Background())
	}
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// faultyFs injects failures into an in-memory filesystem.
type faultyFs struct {
	afero.Fs

	mu             sync.Mutex
	renameFailures int
	renameNoop     bool
	discardTemp    bool
}

func newFaultyFs() *faultyFs {
	return &faultyFs{Fs: afero.NewMemMapFs()}
}

func (f *faultyFs) Rename(oldname, newname string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.renameFailures > 0 {
		f.renameFailures--
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: os.ErrPermission}
	}
	if f.renameNoop {
		return nil
	}
	return f.Fs.Rename(oldname, newname)
}

func (f *faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	discard := f.discardTemp && strings.HasSuffix(name, tempFileExt)
	f.mu.Unlock()

	if discard {
		return discardFile{file}, nil
	}
	return file, nil
}

// discardFile pretends to write.
type discardFile struct {
	afero.File
}

func (discardFile) Write(p []byte) (int, error) {
	return len(p), nil
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func ownerFile(owner string) string {
	return filepath.Join(testDataDir, owner+ownerFileExt)
}
